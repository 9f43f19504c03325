package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/badlogic/skystats-v2/internal/domain"
	"github.com/badlogic/skystats-v2/internal/summary"
	"github.com/badlogic/skystats-v2/pkg/formatter"
)

const (
	maxRenderedPartners = 5
	maxRenderedWords    = 10
)

// Render turns an aggregated snapshot into a MarkdownV2 message ready for
// Telegram. All dynamic content is escaped here.
func Render(handle string, windowDays int, st *domain.Stats) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📊 *%s* over the last %d days\n\n",
		formatter.EscapeMarkdownV2("@"+handle), windowDays)

	postCount := 0
	for _, posts := range st.PostsPerDate {
		postCount += len(posts)
	}

	fmt.Fprintf(&sb, "Posts: *%s*\n", escapedCompact(postCount))
	fmt.Fprintf(&sb, "Likes: *%s*  Reposts: *%s*  Quotes: *%s*  Replies: *%s*\n",
		escapedCompact(st.ReceivedLikes),
		escapedCompact(st.ReceivedReposts),
		escapedCompact(st.ReceivedQuotes),
		escapedCompact(st.ReceivedReplies))

	if date, count := busiestBucket(st.PostsPerDate); date != "" {
		fmt.Fprintf(&sb, "Busiest day: %s \\(%d posts\\)\n",
			formatter.EscapeMarkdownV2(date), count)
	}
	if hour, _ := busiestBucket(st.PostsPerTimeOfDay); hour != "" {
		fmt.Fprintf(&sb, "Most active hour: %s\n", formatter.EscapeMarkdownV2(hour))
	}

	if len(st.Interactions) > 0 {
		sb.WriteString("\n*Top conversation partners*\n")
		for i, in := range st.Interactions {
			if i == maxRenderedPartners {
				break
			}
			name := in.DID
			if in.Profile != nil && in.Profile.Handle != "" {
				name = "@" + in.Profile.Handle
			}
			fmt.Fprintf(&sb, "%d\\. %s \\(%d\\)\n", i+1, formatter.EscapeMarkdownV2(name), in.Count)
		}
	}

	if len(st.Words) > 0 {
		sb.WriteString("\n*Top words*\n")
		parts := make([]string, 0, maxRenderedWords)
		for i, w := range st.Words {
			if i == maxRenderedWords {
				break
			}
			parts = append(parts, fmt.Sprintf("%s \\(%d\\)", formatter.EscapeMarkdownV2(w.Text), w.Count))
		}
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}

	if st.Summary != "" {
		sb.WriteString("\n*Summary*\n")
		for _, section := range summary.SplitSummary(st.Summary) {
			sb.WriteString(formatter.EscapeMarkdownV2(section))
			sb.WriteString("\n\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func escapedCompact(n int) string {
	return formatter.EscapeMarkdownV2(formatter.FormatCompact(n))
}

// busiestBucket returns the key with the most posts. Ties resolve to the
// lexicographically smallest key so the output is stable.
func busiestBucket(buckets map[string][]*domain.Post) (string, int) {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best, bestCount := "", 0
	for _, k := range keys {
		if len(buckets[k]) > bestCount {
			best, bestCount = k, len(buckets[k])
		}
	}
	return best, bestCount
}
