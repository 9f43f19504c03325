package ingestimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/badlogic/skystats-v2/internal/bluesky"
	"github.com/badlogic/skystats-v2/internal/domain"
	"github.com/badlogic/skystats-v2/internal/ingest"
	"github.com/badlogic/skystats-v2/pkg/logger"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Bluesky bluesky.Client
	Logger  logger.Logger
}

type IngestImpl struct {
	Bluesky bluesky.Client
	Logger  logger.Logger
	Clock   clockwork.Clock
}

func New(opts Opts) *IngestImpl {
	return &IngestImpl{
		Bluesky: opts.Bluesky,
		Logger:  opts.Logger.WithComponent("Ingestor"),
		Clock:   clockwork.NewRealClock(),
	}
}

var _ ingest.Client = (*IngestImpl)(nil)

func (i *IngestImpl) FetchRecentPosts(ctx context.Context, handle string, windowDays int) (*domain.ProfileData, error) {
	profile, err := i.Bluesky.GetProfile(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("could not fetch profile %s: %w", handle, errors.Join(ingest.ErrProfileNotFound, err))
	}

	window := time.Duration(windowDays) * 24 * time.Hour
	now := i.Clock.Now()

	var posts []*domain.Post
	cursor := ""
	pages := 0

	// The feed is reverse-chronological and pages are monotonically
	// non-increasing in time, so the first post past the window is a valid
	// stopping point: drop the cursor and stop scanning.
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("could not fetch posts by profile %s: %w", handle, errors.Join(ingest.ErrFeedFetchFailed, err))
		}

		page, err := i.Bluesky.GetAuthorFeed(ctx, profile.DID, cursor)
		if err != nil {
			return nil, fmt.Errorf("could not fetch posts by profile %s: %w", handle, errors.Join(ingest.ErrFeedFetchFailed, err))
		}
		pages++
		cursor = page.Cursor

		for _, post := range page.Posts {
			// Reposts and quote-surfacing artifacts carry other authors;
			// only posts by the requested handle count.
			if post.Author.Handle != handle {
				continue
			}
			if now.Sub(post.IndexedAt) > window {
				cursor = ""
				break
			}
			posts = append(posts, post)
		}

		if cursor == "" {
			break
		}
	}

	i.Logger.Info("Feed scan complete", "handle", handle, "window_days", windowDays, "pages", pages, "posts", len(posts))

	return &domain.ProfileData{Profile: *profile, Posts: posts}, nil
}
