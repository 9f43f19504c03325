package domain

// Profile is an immutable account snapshot, fetched once per run.
type Profile struct {
	DID            string
	Handle         string
	DisplayName    string
	AvatarURL      string
	Description    string
	FollowersCount int
	FollowsCount   int
	PostsCount     int
}

// ProfileData is the aggregate root of a single analytics run: the profile
// plus its posts in reverse-chronological fetch order. It is owned by the
// caller of the ingestor and never mutated after construction.
type ProfileData struct {
	Profile Profile
	Posts   []*Post
}
