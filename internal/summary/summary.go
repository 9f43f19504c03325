// Package summary prepares material for the summarization service and
// post-processes what comes back.
package summary

import (
	"regexp"
	"sort"
	"strings"

	"github.com/badlogic/skystats-v2/internal/domain"
)

// DefaultMaxSourcePosts caps how many posts feed a single summary request.
const DefaultMaxSourcePosts = 100

var sectionDelimiter = regexp.MustCompile(`>{3,}`)

// BuildRequest picks the most engaging posts from a snapshot and packages
// them for the summarizer. The returned request is nil when the snapshot
// holds no posts.
func BuildRequest(data *domain.ProfileData, maxSourcePosts int) *domain.SummaryRequest {
	if data == nil || len(data.Posts) == 0 {
		return nil
	}
	if maxSourcePosts <= 0 {
		maxSourcePosts = DefaultMaxSourcePosts
	}

	ranked := make([]*domain.Post, len(data.Posts))
	copy(ranked, data.Posts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})

	if len(ranked) > maxSourcePosts {
		ranked = ranked[:maxSourcePosts]
	}

	texts := make([]string, len(ranked))
	for i, post := range ranked {
		if post.Record.Kind == domain.RecordText {
			texts[i] = post.Record.Text
		}
	}

	return &domain.SummaryRequest{
		SourceKey: ranked[0].URI,
		Texts:     texts,
	}
}

func score(post *domain.Post) int {
	return post.RepostCount + post.LikeCount + post.QuoteCount
}

// SplitSummary breaks a summary into its sections. The service separates
// sections with runs of three or more '>' characters; stray '>' runs at
// the edges of a section are trimmed away with the surrounding whitespace.
func SplitSummary(s string) []string {
	parts := sectionDelimiter.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(part, "> \t\r\n")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
