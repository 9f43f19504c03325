package blueskyimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/badlogic/skystats-v2/internal/domain"
	apperrors "github.com/badlogic/skystats-v2/pkg/errors"
	"github.com/badlogic/skystats-v2/pkg/retry"
	"github.com/cenkalti/backoff/v4"
)

const (
	getProfileEndpoint    = "/xrpc/app.bsky.actor.getProfile"
	getAuthorFeedEndpoint = "/xrpc/app.bsky.feed.getAuthorFeed"

	// The API orders author feeds by recency only; the ingestor cuts the
	// window client-side, so we always request the largest page.
	feedPageLimit = 100
)

func (b *BskyImpl) GetProfile(ctx context.Context, actor string) (*domain.Profile, error) {
	params := url.Values{}
	params.Set("actor", actor)

	var wire profileView
	if err := b.getJSON(ctx, getProfileEndpoint, params, &wire); err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", actor, err)
	}

	return &domain.Profile{
		DID:            wire.DID,
		Handle:         wire.Handle,
		DisplayName:    wire.DisplayName,
		AvatarURL:      wire.Avatar,
		Description:    wire.Description,
		FollowersCount: wire.FollowersCount,
		FollowsCount:   wire.FollowsCount,
		PostsCount:     wire.PostsCount,
	}, nil
}

func (b *BskyImpl) GetAuthorFeed(ctx context.Context, actor string, cursor string) (*domain.FeedPage, error) {
	params := url.Values{}
	params.Set("actor", actor)
	params.Set("filter", "posts_with_replies")
	params.Set("limit", fmt.Sprintf("%d", feedPageLimit))
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	var wire authorFeedResponse
	if err := b.getJSON(ctx, getAuthorFeedEndpoint, params, &wire); err != nil {
		return nil, fmt.Errorf("failed to get author feed for %s: %w", actor, err)
	}

	page := &domain.FeedPage{Cursor: wire.Cursor}
	for _, item := range wire.Feed {
		page.Posts = append(page.Posts, item.toDomain())
	}
	return page, nil
}

func (b *BskyImpl) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return err
	}

	requestURL := b.host + endpoint + "?" + params.Encode()

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return err
		}

		resp, err := b.http.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return classifyStatus(resp.StatusCode, endpoint)
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	if err := retry.Do(ctx, b.logger, endpoint, operation, retry.DefaultConfig()); err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}

// classifyStatus maps a non-200 response to an error the retry loop can act
// on. Unknown actors surface as HTTP 400 InvalidRequest, so client errors
// are permanent; overload and server errors stay retryable.
func classifyStatus(status int, endpoint string) error {
	msg := fmt.Sprintf("bluesky API returned HTTP %d for %s", status, endpoint)
	switch {
	case status == http.StatusBadRequest || status == http.StatusNotFound:
		return backoff.Permanent(apperrors.WrapWithCode(apperrors.ErrNotFound, strconv.Itoa(status), msg))
	case status == http.StatusTooManyRequests || status >= 500:
		return apperrors.WrapWithCode(apperrors.ErrServiceUnavailable, strconv.Itoa(status), msg)
	default:
		return backoff.Permanent(apperrors.New(msg))
	}
}

// Wire types mirror the AppView JSON. Record payloads and reply parents are
// polymorphic on "$type", so they arrive as raw messages and are classified
// during mapping; unparsable shapes degrade to RecordUnknown instead of
// failing the page.

type profileView struct {
	DID            string `json:"did"`
	Handle         string `json:"handle"`
	DisplayName    string `json:"displayName"`
	Avatar         string `json:"avatar"`
	Description    string `json:"description"`
	FollowersCount int    `json:"followersCount"`
	FollowsCount   int    `json:"followsCount"`
	PostsCount     int    `json:"postsCount"`
}

type authorFeedResponse struct {
	Cursor string         `json:"cursor"`
	Feed   []feedViewPost `json:"feed"`
}

type feedViewPost struct {
	Post  postView  `json:"post"`
	Reply *replyRef `json:"reply"`
}

type postView struct {
	URI         string          `json:"uri"`
	CID         string          `json:"cid"`
	Author      actorBasic      `json:"author"`
	Record      json.RawMessage `json:"record"`
	Embed       json.RawMessage `json:"embed"`
	ReplyCount  int             `json:"replyCount"`
	RepostCount int             `json:"repostCount"`
	LikeCount   int             `json:"likeCount"`
	QuoteCount  int             `json:"quoteCount"`
	IndexedAt   time.Time       `json:"indexedAt"`
}

type actorBasic struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
}

type replyRef struct {
	Parent json.RawMessage `json:"parent"`
}

type postRecord struct {
	Type      string   `json:"$type"`
	Text      string   `json:"text"`
	CreatedAt string   `json:"createdAt"`
	Langs     []string `json:"langs"`
}

type parentView struct {
	Type   string     `json:"$type"`
	URI    string     `json:"uri"`
	Author actorBasic `json:"author"`
}

type embedView struct {
	Type   string `json:"$type"`
	Record *struct {
		Type string `json:"$type"`
		URI  string `json:"uri"`
	} `json:"record"`
}

func (a actorBasic) toDomain() domain.Author {
	return domain.Author{
		DID:         a.DID,
		Handle:      a.Handle,
		DisplayName: a.DisplayName,
		AvatarURL:   a.Avatar,
	}
}

func (f feedViewPost) toDomain() *domain.Post {
	post := &domain.Post{
		URI:         f.Post.URI,
		CID:         f.Post.CID,
		Author:      f.Post.Author.toDomain(),
		Record:      decodeRecord(f.Post.Record),
		IndexedAt:   f.Post.IndexedAt,
		LikeCount:   f.Post.LikeCount,
		RepostCount: f.Post.RepostCount,
		QuoteCount:  f.Post.QuoteCount,
		ReplyCount:  f.Post.ReplyCount,
		Embed:       decodeEmbed(f.Post.Embed),
	}

	if f.Reply != nil && len(f.Reply.Parent) > 0 {
		post.Reply = &domain.ReplyRef{Parent: decodeParent(f.Reply.Parent)}
	}

	return post
}

func decodeRecord(raw json.RawMessage) domain.Record {
	if len(raw) == 0 {
		return domain.Record{Kind: domain.RecordUnknown}
	}

	var rec postRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Record{Kind: domain.RecordUnknown}
	}
	if rec.Type != "app.bsky.feed.post" {
		return domain.Record{Kind: domain.RecordUnknown}
	}

	createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
	if err != nil {
		// A text record without a usable timestamp cannot be bucketed.
		return domain.Record{Kind: domain.RecordUnknown}
	}

	return domain.Record{
		Kind:      domain.RecordText,
		Text:      rec.Text,
		CreatedAt: createdAt,
		Langs:     rec.Langs,
	}
}

func decodeParent(raw json.RawMessage) domain.ParentRef {
	var parent parentView
	if err := json.Unmarshal(raw, &parent); err != nil {
		return domain.ParentRef{Kind: domain.RecordUnknown}
	}

	switch parent.Type {
	case "app.bsky.feed.defs#postView":
		author := parent.Author.toDomain()
		return domain.ParentRef{Kind: domain.RecordText, URI: parent.URI, Author: &author}
	case "app.bsky.feed.defs#notFoundPost":
		return domain.ParentRef{Kind: domain.RecordNotFound, URI: parent.URI}
	case "app.bsky.feed.defs#blockedPost":
		return domain.ParentRef{Kind: domain.RecordBlocked, URI: parent.URI}
	default:
		return domain.ParentRef{Kind: domain.RecordUnknown, URI: parent.URI}
	}
}

func decodeEmbed(raw json.RawMessage) *domain.EmbedRef {
	if len(raw) == 0 {
		return nil
	}

	var embed embedView
	if err := json.Unmarshal(raw, &embed); err != nil || embed.Record == nil {
		return nil
	}

	kind := domain.RecordUnknown
	switch embed.Record.Type {
	case "app.bsky.embed.record#viewRecord":
		kind = domain.RecordText
	case "app.bsky.embed.record#viewNotFound":
		kind = domain.RecordNotFound
	case "app.bsky.embed.record#viewBlocked":
		kind = domain.RecordBlocked
	case "app.bsky.embed.record#viewDetached":
		kind = domain.RecordDetached
	case "app.bsky.feed.defs#generatorView":
		kind = domain.RecordGenerator
	case "app.bsky.graph.defs#listView":
		kind = domain.RecordList
	case "app.bsky.labeler.defs#labelerView":
		kind = domain.RecordLabeler
	case "app.bsky.graph.defs#starterPackViewBasic":
		kind = domain.RecordStarterPack
	}

	return &domain.EmbedRef{Kind: kind, URI: embed.Record.URI}
}
