package ingest

import (
	"context"
	"errors"

	"github.com/badlogic/skystats-v2/internal/domain"
)

var (
	// ErrProfileNotFound means the handle could not be resolved to a profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrFeedFetchFailed means a feed page request failed mid-scan. No
	// partial feed is ever returned.
	ErrFeedFetchFailed = errors.New("feed fetch failed")
)

//go:generate go run go.uber.org/mock/mockgen -source=ingest.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// FetchRecentPosts pages through the account's feed and returns every
	// post authored by handle within the trailing windowDays. The feed API
	// has no server-side date filter, so the window boundary is detected
	// client-side and stops pagination early.
	FetchRecentPosts(ctx context.Context, handle string, windowDays int) (*domain.ProfileData, error)
}
