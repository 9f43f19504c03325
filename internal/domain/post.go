package domain

import "time"

// RecordKind identifies the shape of a post record or of a reply parent.
// The feed is third-party data of uncertain shape, so the set is closed and
// anything unrecognized maps to RecordUnknown. Consumers match on RecordText
// and ignore every other kind.
type RecordKind int

const (
	RecordUnknown RecordKind = iota
	RecordText
	RecordNotFound
	RecordBlocked
	RecordDetached
	RecordGenerator
	RecordList
	RecordLabeler
	RecordStarterPack
)

// Record is the payload of a post. Text, CreatedAt and Langs are only
// meaningful when Kind == RecordText.
type Record struct {
	Kind      RecordKind
	Text      string
	CreatedAt time.Time
	Langs     []string
}

// Author is the basic identity attached to a post or a reply parent.
type Author struct {
	DID         string
	Handle      string
	DisplayName string
	AvatarURL   string
}

// ParentRef describes the immediate parent of a reply. Author is set only
// when the parent resolved to an actual post (Kind == RecordText); tombstone
// and blocked placeholders carry just the kind and URI.
type ParentRef struct {
	Kind   RecordKind
	URI    string
	Author *Author
}

// ReplyRef marks a post as a reply.
type ReplyRef struct {
	Parent ParentRef
}

// EmbedRef points at embedded media or a quoted post. It is carried through
// for completeness but never aggregated.
type EmbedRef struct {
	Kind RecordKind
	URI  string
}

// Post is a single entry of an author feed. Engagement counters default to
// zero when the feed omits them.
type Post struct {
	URI       string
	CID       string
	Author    Author
	Record    Record
	IndexedAt time.Time

	LikeCount   int
	RepostCount int
	QuoteCount  int
	ReplyCount  int

	Reply *ReplyRef
	Embed *EmbedRef
}

// FeedPage is one page of an author feed. An empty cursor means the feed is
// exhausted.
type FeedPage struct {
	Posts  []*Post
	Cursor string
}
