package bluesky

import (
	"context"

	"github.com/badlogic/skystats-v2/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=bluesky.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// GetProfile resolves a handle or DID to a profile snapshot.
	GetProfile(ctx context.Context, actor string) (*domain.Profile, error)

	// GetAuthorFeed fetches one page of the actor's "posts with replies"
	// feed. Pass the previous page's cursor to resume; an empty cursor
	// starts from the newest post.
	GetAuthorFeed(ctx context.Context, actor string, cursor string) (*domain.FeedPage, error)
}
