package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/badlogic/skystats-v2/internal/domain"
)

func utcOptions() Options {
	return Options{Location: time.UTC}
}

func textPost(uri string, createdAt time.Time, text string) *domain.Post {
	return &domain.Post{
		URI:    uri,
		Author: domain.Author{DID: "did:plc:owner", Handle: "a.test"},
		Record: domain.Record{
			Kind:      domain.RecordText,
			Text:      text,
			CreatedAt: createdAt,
		},
	}
}

func replyTo(post *domain.Post, parentAuthor domain.Author) *domain.Post {
	post.Reply = &domain.ReplyRef{
		Parent: domain.ParentRef{
			Kind:   domain.RecordText,
			URI:    "at://" + parentAuthor.DID + "/app.bsky.feed.post/x",
			Author: &parentAuthor,
		},
	}
	return post
}

func TestAggregate_DateBuckets(t *testing.T) {
	data := &domain.ProfileData{
		Profile: domain.Profile{DID: "did:plc:owner", Handle: "a.test"},
		Posts: []*domain.Post{
			textPost("at://1", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), "one"),
			textPost("at://2", time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC), "two"),
			textPost("at://3", time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC), "three"),
		},
	}

	st := Aggregate(data, utcOptions())

	if got := len(st.PostsPerDate["2024-01-01"]); got != 2 {
		t.Errorf("2024-01-01 should hold 2 posts, got %d", got)
	}
	if got := len(st.PostsPerDate["2024-01-02"]); got != 1 {
		t.Errorf("2024-01-02 should hold 1 post, got %d", got)
	}
	if got := len(st.PostsPerDate); got != 2 {
		t.Errorf("only dates with posts may appear, got %d keys", got)
	}

	// 2024-01-01 was a Monday.
	if got := len(st.PostsPerWeekday["MON"]); got != 2 {
		t.Errorf("MON should hold 2 posts, got %d", got)
	}
	if got := len(st.PostsPerWeekday["TUE"]); got != 1 {
		t.Errorf("TUE should hold 1 post, got %d", got)
	}

	if got := len(st.PostsPerTimeOfDay["10:00"]); got != 2 {
		t.Errorf("10:00 should hold 2 posts, got %d", got)
	}
	if got := len(st.PostsPerTimeOfDay["23:00"]); got != 1 {
		t.Errorf("23:00 should hold 1 post, got %d", got)
	}
}

func TestAggregate_BucketCoverage(t *testing.T) {
	data := &domain.ProfileData{
		Profile: domain.Profile{DID: "did:plc:owner"},
		Posts: []*domain.Post{
			textPost("at://1", time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC), "alpha"),
			textPost("at://2", time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), "beta"),
			{URI: "at://malformed", Record: domain.Record{Kind: domain.RecordUnknown}},
			textPost("at://3", time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC), "gamma"),
		},
	}

	st := Aggregate(data, utcOptions())

	count := func(buckets map[string][]*domain.Post) int {
		total := 0
		for _, posts := range buckets {
			total += len(posts)
		}
		return total
	}

	wellFormed := 3
	if got := count(st.PostsPerDate); got != wellFormed {
		t.Errorf("date buckets hold %d posts, want %d", got, wellFormed)
	}
	if got := count(st.PostsPerWeekday); got != wellFormed {
		t.Errorf("weekday buckets hold %d posts, want %d", got, wellFormed)
	}
	if got := count(st.PostsPerTimeOfDay); got != wellFormed {
		t.Errorf("hour buckets hold %d posts, want %d", got, wellFormed)
	}
}

func TestAggregate_EngagementTotalsIncludeMalformedPosts(t *testing.T) {
	data := &domain.ProfileData{
		Profile: domain.Profile{DID: "did:plc:owner"},
		Posts: []*domain.Post{
			{
				URI:         "at://malformed",
				Record:      domain.Record{Kind: domain.RecordNotFound},
				LikeCount:   3,
				RepostCount: 2,
				QuoteCount:  1,
				ReplyCount:  4,
			},
			func() *domain.Post {
				p := textPost("at://1", time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC), "hi there")
				p.LikeCount = 7
				return p
			}(),
		},
	}

	st := Aggregate(data, utcOptions())

	if st.ReceivedLikes != 10 {
		t.Errorf("ReceivedLikes = %d, want 10", st.ReceivedLikes)
	}
	if st.ReceivedReposts != 2 || st.ReceivedQuotes != 1 || st.ReceivedReplies != 4 {
		t.Errorf("totals = %d/%d/%d, want 2/1/4",
			st.ReceivedReposts, st.ReceivedQuotes, st.ReceivedReplies)
	}

	// Per-date engagement only accumulates for bucketable posts.
	if got := st.LikesPerDate["2024-03-04"]; got != 7 {
		t.Errorf("LikesPerDate = %d, want 7", got)
	}
}

func TestAggregate_InteractionRanking(t *testing.T) {
	bob := domain.Author{DID: "did:plc:bob", Handle: "bob.test", DisplayName: "Bob"}
	carol := domain.Author{DID: "did:plc:carol", Handle: "carol.test"}
	owner := domain.Author{DID: "did:plc:owner", Handle: "a.test"}

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	posts := []*domain.Post{
		replyTo(textPost("at://1", base, "x"), carol),
		replyTo(textPost("at://2", base, "x"), bob),
		replyTo(textPost("at://3", base, "x"), bob),
		// Self-replies never count as interactions.
		replyTo(textPost("at://4", base, "x"), owner),
	}
	// A tombstoned parent is not a resolvable partner.
	tombstone := textPost("at://5", base, "x")
	tombstone.Reply = &domain.ReplyRef{Parent: domain.ParentRef{Kind: domain.RecordNotFound}}
	posts = append(posts, tombstone)

	data := &domain.ProfileData{Profile: domain.Profile{DID: owner.DID, Handle: owner.Handle}, Posts: posts}
	st := Aggregate(data, utcOptions())

	if len(st.Interactions) != 2 {
		t.Fatalf("expected 2 interaction partners, got %d", len(st.Interactions))
	}
	if st.Interactions[0].DID != bob.DID || st.Interactions[0].Count != 2 {
		t.Errorf("top partner = %s (%d), want bob (2)", st.Interactions[0].DID, st.Interactions[0].Count)
	}
	if st.Interactions[1].DID != carol.DID || st.Interactions[1].Count != 1 {
		t.Errorf("second partner = %s (%d), want carol (1)", st.Interactions[1].DID, st.Interactions[1].Count)
	}
	if st.Interactions[0].Profile == nil || st.Interactions[0].Profile.DisplayName != "Bob" {
		t.Error("partner profile snapshot missing")
	}
}

func TestAggregate_RankingStability(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data := &domain.ProfileData{
		Profile: domain.Profile{DID: "did:plc:owner"},
		Posts: []*domain.Post{
			textPost("at://1", base, "zebra apple zebra"),
			textPost("at://2", base, "mango apple"),
		},
	}

	st := Aggregate(data, utcOptions())

	// zebra and apple both count 2; zebra was seen first.
	if len(st.Words) != 3 {
		t.Fatalf("expected 3 words, got %v", st.Words)
	}
	if st.Words[0].Text != "zebra" || st.Words[1].Text != "apple" || st.Words[2].Text != "mango" {
		t.Errorf("tie order must follow first occurrence, got %v", st.Words)
	}
}

func TestAggregate_Idempotence(t *testing.T) {
	bob := domain.Author{DID: "did:plc:bob", Handle: "bob.test"}
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data := &domain.ProfileData{
		Profile: domain.Profile{DID: "did:plc:owner"},
		Posts: []*domain.Post{
			replyTo(textPost("at://1", base, "shipping the analyzer today"), bob),
			textPost("at://2", base.Add(26*time.Hour), "still shipping"),
		},
	}

	first := Aggregate(data, utcOptions())
	second := Aggregate(data, utcOptions())

	if !reflect.DeepEqual(first, second) {
		t.Error("aggregation of the same snapshot must be deterministic")
	}
}

func TestAggregate_EmptyFeed(t *testing.T) {
	data := &domain.ProfileData{Profile: domain.Profile{DID: "did:plc:owner"}}

	st := Aggregate(data, utcOptions())

	if len(st.PostsPerDate) != 0 || len(st.PostsPerTimeOfDay) != 0 || len(st.PostsPerWeekday) != 0 {
		t.Error("bucket maps must be empty for an empty feed")
	}
	if len(st.Interactions) != 0 || len(st.Words) != 0 {
		t.Error("rankings must be empty for an empty feed")
	}
	if st.ReceivedLikes != 0 || st.ReceivedReposts != 0 || st.ReceivedQuotes != 0 || st.ReceivedReplies != 0 {
		t.Error("totals must be zero for an empty feed")
	}
	if st.Summary != "" {
		t.Error("summary must stay empty")
	}
}

func TestAggregate_TimezoneShiftsBucketKeys(t *testing.T) {
	// 23:30 UTC on Jan 1 is already Jan 2 in Vienna (UTC+1).
	vienna := time.FixedZone("CET", 3600)
	data := &domain.ProfileData{
		Profile: domain.Profile{DID: "did:plc:owner"},
		Posts: []*domain.Post{
			textPost("at://1", time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC), "late"),
		},
	}

	st := Aggregate(data, Options{Location: vienna})

	if got := len(st.PostsPerDate["2024-01-02"]); got != 1 {
		t.Fatalf("expected the post bucketed on 2024-01-02, keys: %v", keys(st.PostsPerDate))
	}
	if got := len(st.PostsPerTimeOfDay["00:00"]); got != 1 {
		t.Errorf("expected the post in the 00:00 bucket, keys: %v", keys(st.PostsPerTimeOfDay))
	}
}

func keys(m map[string][]*domain.Post) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestAggregate_WordCounts(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data := &domain.ProfileData{
		Profile: domain.Profile{DID: "did:plc:owner"},
		Posts: []*domain.Post{
			textPost("at://1", base, "Gophers love gophers."),
			textPost("at://2", base, "gophers!"),
		},
	}

	st := Aggregate(data, utcOptions())

	want := []domain.Word{{Text: "gophers", Count: 3}, {Text: "love", Count: 1}}
	if !reflect.DeepEqual(st.Words, want) {
		t.Errorf("Words = %v, want %v", st.Words, want)
	}
}

func TestAggregate_ZeroTokenPostStillBucketed(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	post := textPost("at://1", base, "a 1 @x")
	post.LikeCount = 5
	data := &domain.ProfileData{
		Profile: domain.Profile{DID: "did:plc:owner"},
		Posts:   []*domain.Post{post},
	}

	st := Aggregate(data, utcOptions())

	if len(st.Words) != 0 {
		t.Errorf("expected no words, got %v", st.Words)
	}
	if len(st.PostsPerDate["2024-05-01"]) != 1 {
		t.Error("post with zero tokens must still land in its date bucket")
	}
	if st.ReceivedLikes != 5 {
		t.Errorf("ReceivedLikes = %d, want 5", st.ReceivedLikes)
	}
}
