package blueskyimpl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/badlogic/skystats-v2/internal/domain"
	"github.com/badlogic/skystats-v2/pkg/config"
	apperrors "github.com/badlogic/skystats-v2/pkg/errors"
	"github.com/badlogic/skystats-v2/pkg/logger"
)

func newTestClient(t *testing.T, host string) *BskyImpl {
	t.Helper()
	cfg := &config.Config{}
	cfg.Bluesky.APIHost = host
	cfg.Bluesky.PagesPerSecond = 1000
	return New(Opts{Config: cfg, Logger: logger.New(logger.Opts{})})
}

func TestGetProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/xrpc/app.bsky.actor.getProfile" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("actor"); got != "alice.bsky.social" {
			t.Errorf("actor = %q", got)
		}
		w.Write([]byte(`{
			"did": "did:plc:alice",
			"handle": "alice.bsky.social",
			"displayName": "Alice",
			"avatar": "https://cdn.example/alice.jpg",
			"description": "hi",
			"followersCount": 120,
			"followsCount": 80,
			"postsCount": 456
		}`))
	}))
	defer srv.Close()

	profile, err := newTestClient(t, srv.URL).GetProfile(context.Background(), "alice.bsky.social")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.DID != "did:plc:alice" || profile.Handle != "alice.bsky.social" {
		t.Errorf("profile identity = %q / %q", profile.DID, profile.Handle)
	}
	if profile.FollowersCount != 120 || profile.PostsCount != 456 {
		t.Errorf("counts = %d / %d", profile.FollowersCount, profile.PostsCount)
	}
}

func TestGetAuthorFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("filter"); got != "posts_with_replies" {
			t.Errorf("filter = %q", got)
		}
		if got := q.Get("limit"); got != "100" {
			t.Errorf("limit = %q", got)
		}
		if got := q.Get("cursor"); got != "page2" {
			t.Errorf("cursor = %q", got)
		}
		w.Write([]byte(`{
			"cursor": "page3",
			"feed": [
				{
					"post": {
						"uri": "at://did:plc:alice/app.bsky.feed.post/1",
						"cid": "bafy1",
						"author": {"did": "did:plc:alice", "handle": "alice.bsky.social"},
						"record": {"$type": "app.bsky.feed.post", "text": "hello world", "createdAt": "2024-06-01T10:00:00Z", "langs": ["en"]},
						"likeCount": 3, "repostCount": 1, "quoteCount": 0, "replyCount": 2,
						"indexedAt": "2024-06-01T10:00:05Z"
					},
					"reply": {
						"parent": {
							"$type": "app.bsky.feed.defs#postView",
							"uri": "at://did:plc:bob/app.bsky.feed.post/9",
							"author": {"did": "did:plc:bob", "handle": "bob.test", "displayName": "Bob"}
						}
					}
				},
				{
					"post": {
						"uri": "at://did:plc:alice/app.bsky.feed.post/2",
						"author": {"did": "did:plc:alice", "handle": "alice.bsky.social"},
						"record": {"$type": "app.bsky.feed.repost", "createdAt": "2024-06-01T09:00:00Z"},
						"indexedAt": "2024-06-01T09:00:05Z"
					}
				},
				{
					"post": {
						"uri": "at://did:plc:alice/app.bsky.feed.post/3",
						"author": {"did": "did:plc:alice", "handle": "alice.bsky.social"},
						"record": {"$type": "app.bsky.feed.post", "text": "quoting", "createdAt": "2024-06-01T08:00:00Z"},
						"embed": {
							"$type": "app.bsky.embed.record#view",
							"record": {"$type": "app.bsky.embed.record#viewNotFound", "uri": "at://gone"}
						},
						"indexedAt": "2024-06-01T08:00:05Z"
					}
				}
			]
		}`))
	}))
	defer srv.Close()

	page, err := newTestClient(t, srv.URL).GetAuthorFeed(context.Background(), "did:plc:alice", "page2")
	if err != nil {
		t.Fatalf("GetAuthorFeed: %v", err)
	}
	if page.Cursor != "page3" {
		t.Errorf("cursor = %q", page.Cursor)
	}
	if len(page.Posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(page.Posts))
	}

	first := page.Posts[0]
	if first.Record.Kind != domain.RecordText || first.Record.Text != "hello world" {
		t.Errorf("first record = %+v", first.Record)
	}
	if first.Record.CreatedAt.IsZero() {
		t.Error("createdAt must be parsed")
	}
	if first.LikeCount != 3 || first.ReplyCount != 2 {
		t.Errorf("counts = %d / %d", first.LikeCount, first.ReplyCount)
	}
	if first.Reply == nil || first.Reply.Parent.Kind != domain.RecordText {
		t.Fatalf("reply parent = %+v", first.Reply)
	}
	if first.Reply.Parent.Author == nil || first.Reply.Parent.Author.Handle != "bob.test" {
		t.Errorf("parent author = %+v", first.Reply.Parent.Author)
	}

	// Unknown record types degrade instead of failing the page.
	if page.Posts[1].Record.Kind != domain.RecordUnknown {
		t.Errorf("second record kind = %v", page.Posts[1].Record.Kind)
	}

	third := page.Posts[2]
	if third.Embed == nil || third.Embed.Kind != domain.RecordNotFound || third.Embed.URI != "at://gone" {
		t.Errorf("embed = %+v", third.Embed)
	}
}

func TestGetAuthorFeed_MalformedTimestampDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"feed": [{"post": {
			"uri": "at://x",
			"author": {"did": "d", "handle": "h"},
			"record": {"$type": "app.bsky.feed.post", "text": "t", "createdAt": "not-a-time"},
			"indexedAt": "2024-06-01T08:00:05Z"
		}}]}`))
	}))
	defer srv.Close()

	page, err := newTestClient(t, srv.URL).GetAuthorFeed(context.Background(), "d", "")
	if err != nil {
		t.Fatalf("GetAuthorFeed: %v", err)
	}
	if page.Posts[0].Record.Kind != domain.RecordUnknown {
		t.Errorf("record kind = %v, want RecordUnknown", page.Posts[0].Record.Kind)
	}
}

func TestGetProfile_UnknownActorIsPermanent(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":"InvalidRequest","message":"Profile not found"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).GetProfile(context.Background(), "nobody.bsky.social")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound in the chain", err)
	}
	if calls != 1 {
		t.Errorf("client error was retried %d times, want a single attempt", calls)
	}
}

func TestGetProfile_RetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "upstream briefly down", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"did": "did:plc:alice", "handle": "alice.bsky.social"}`))
	}))
	defer srv.Close()

	profile, err := newTestClient(t, srv.URL).GetProfile(context.Background(), "alice.bsky.social")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.DID != "did:plc:alice" {
		t.Errorf("profile = %+v", profile)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}
