package domain

// Interaction counts how often the account replied to one partner. Profile
// is the partner snapshot from the first encountered reply parent.
type Interaction struct {
	DID     string
	Count   int
	Profile *Author
}

// Word is a normalized token and its frequency across the window.
type Word struct {
	Text  string
	Count int
}

// Stats is derived read-only from one ProfileData snapshot. The bucket maps
// hold only keys with at least one post; the three dimensions are
// independent views of the same post set.
type Stats struct {
	PostsPerDate      map[string][]*Post
	PostsPerTimeOfDay map[string][]*Post
	PostsPerWeekday   map[string][]*Post

	LikesPerDate   map[string]int
	RepostsPerDate map[string]int
	QuotesPerDate  map[string]int
	RepliesPerDate map[string]int

	Interactions []Interaction
	Words        []Word

	ReceivedLikes   int
	ReceivedReposts int
	ReceivedQuotes  int
	ReceivedReplies int

	// Summary is filled in by the summarization collaborator; it stays empty
	// when the call was skipped or failed.
	Summary string
}

// SummaryRequest is the payload handed to the summarization service: post
// texts in priority order plus the URI of the top post, which the service
// uses as a cache key.
type SummaryRequest struct {
	SourceKey string
	Texts     []string
}
