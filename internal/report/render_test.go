package report

import (
	"strings"
	"testing"

	"github.com/badlogic/skystats-v2/internal/domain"
)

func sampleStats() *domain.Stats {
	post := &domain.Post{}
	return &domain.Stats{
		PostsPerDate: map[string][]*domain.Post{
			"2024-01-01": {post, post},
			"2024-01-02": {post},
		},
		PostsPerTimeOfDay: map[string][]*domain.Post{
			"10:00": {post, post},
			"23:00": {post},
		},
		PostsPerWeekday: map[string][]*domain.Post{
			"MON": {post, post},
			"TUE": {post},
		},
		Interactions: []domain.Interaction{
			{DID: "did:plc:bob", Count: 4, Profile: &domain.Author{DID: "did:plc:bob", Handle: "bob.test"}},
			{DID: "did:plc:anon", Count: 1},
		},
		Words: []domain.Word{
			{Text: "shipping", Count: 7},
			{Text: "gophers", Count: 3},
		},
		ReceivedLikes:   1234,
		ReceivedReposts: 56,
		ReceivedQuotes:  7,
		ReceivedReplies: 89,
		Summary:         "Busy week.>>>Mostly shipping.",
	}
}

func TestRender(t *testing.T) {
	out := Render("alice.bsky.social", 7, sampleStats())

	for _, want := range []string{
		"@alice\\.bsky\\.social",
		"over the last 7 days",
		"Posts: *3*",
		"1\\.2K", // compact likes, dot escaped for MarkdownV2
		"Busiest day: 2024\\-01\\-01",
		"Most active hour: 10:00",
		"@bob\\.test",
		"did:plc:anon", // partners without a profile fall back to the DID
		"shipping \\(7\\)",
		"Busy week\\.",
		"Mostly shipping\\.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q\n%s", want, out)
		}
	}

	if strings.Contains(out, ">>>") {
		t.Error("summary delimiter must not leak into the report")
	}
}

func TestRender_EmptyStats(t *testing.T) {
	out := Render("alice.bsky.social", 30, &domain.Stats{})

	if !strings.Contains(out, "Posts: *0*") {
		t.Errorf("empty stats should render zero posts\n%s", out)
	}
	for _, absent := range []string{"Top conversation partners", "Top words", "Summary", "Busiest day"} {
		if strings.Contains(out, absent) {
			t.Errorf("empty stats must not render %q\n%s", absent, out)
		}
	}
}

func TestRender_CapsLists(t *testing.T) {
	st := &domain.Stats{}
	for i := 0; i < 20; i++ {
		st.Interactions = append(st.Interactions, domain.Interaction{DID: "did:plc:x", Count: 20 - i})
		st.Words = append(st.Words, domain.Word{Text: "word", Count: 20 - i})
	}

	out := Render("alice.bsky.social", 7, st)

	if got := strings.Count(out, "did:plc:x"); got != maxRenderedPartners {
		t.Errorf("rendered %d partners, want %d", got, maxRenderedPartners)
	}
	if got := strings.Count(out, "word \\("); got != maxRenderedWords {
		t.Errorf("rendered %d words, want %d", got, maxRenderedWords)
	}
}
