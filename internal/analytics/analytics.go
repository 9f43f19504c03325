// Package analytics runs the full account analysis pipeline: fetch a
// profile's recent posts, aggregate activity statistics, and attach an
// optional AI summary.
package analytics

//go:generate go run go.uber.org/mock/mockgen -source=analytics.go -destination=mocks/mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"github.com/badlogic/skystats-v2/internal/domain"
)

// ErrEmptyHandle is returned when normalization leaves nothing of the input.
var ErrEmptyHandle = errors.New("empty handle")

// DefaultWindowDays is used when a query does not name a window.
const DefaultWindowDays = 30

// Query describes one analysis run.
type Query struct {
	Handle     string
	WindowDays int
	Language   string
	Tone       string
}

// Result bundles the fetched snapshot with its aggregated statistics.
type Result struct {
	Data  *domain.ProfileData
	Stats *domain.Stats
}

type Client interface {
	Run(ctx context.Context, q Query) (*Result, error)
}

// isInvisible reports zero-width and directional characters that show up
// when handles are copy-pasted out of chat clients.
func isInvisible(r rune) bool {
	switch {
	case r >= '\u200b' && r <= '\u200f':
		return true
	case r >= '\u202a' && r <= '\u202e':
		return true
	case r == '\ufeff':
		return true
	}
	return false
}

// NormalizeHandle cleans up a user-supplied handle: invisible characters
// and a leading '@' are stripped, and bare names get the default domain
// appended ("alice" becomes "alice.bsky.social").
func NormalizeHandle(raw, defaultDomain string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if isInvisible(r) {
			return -1
		}
		return r
	}, raw)

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimPrefix(cleaned, "@")
	if cleaned == "" {
		return "", ErrEmptyHandle
	}
	if !strings.Contains(cleaned, ".") && defaultDomain != "" {
		cleaned = cleaned + "." + defaultDomain
	}
	return cleaned, nil
}
