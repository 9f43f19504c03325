// Package stats derives aggregate analytics from one ProfileData snapshot in
// a single pass over the posts. The result depends only on the snapshot and
// the options, never on the wall clock.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/badlogic/skystats-v2/internal/domain"
)

// Options configures one aggregation run. The zero value is usable: local
// time zone, built-in stop words, the bsky.social noise domain.
type Options struct {
	// Location is the time zone used to derive date, hour and weekday
	// bucket keys from post creation timestamps.
	Location *time.Location

	StopWords   map[string]struct{}
	NoiseDomain string
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.StopWords == nil {
		o.StopWords = DefaultStopWords()
	}
	if o.NoiseDomain == "" {
		o.NoiseDomain = "bsky.social"
	}
	return o
}

// Aggregate walks data.Posts once and fills every Stats dimension. Posts
// whose record is not a well-formed text post contribute to no bucket; the
// scalar engagement totals are summed over all posts regardless.
func Aggregate(data *domain.ProfileData, opts Options) *domain.Stats {
	opts = opts.withDefaults()

	result := &domain.Stats{
		PostsPerDate:      map[string][]*domain.Post{},
		PostsPerTimeOfDay: map[string][]*domain.Post{},
		PostsPerWeekday:   map[string][]*domain.Post{},
		LikesPerDate:      map[string]int{},
		RepostsPerDate:    map[string]int{},
		QuotesPerDate:     map[string]int{},
		RepliesPerDate:    map[string]int{},
	}

	interactions := map[string]*domain.Interaction{}
	var interactionOrder []string
	words := map[string]*domain.Word{}
	var wordOrder []string

	for _, post := range data.Posts {
		if post.Record.Kind != domain.RecordText {
			continue
		}

		createdAt := post.Record.CreatedAt.In(opts.Location)
		dateKey := createdAt.Format("2006-01-02")
		hourKey := createdAt.Format("15") + ":00"
		weekdayKey := strings.ToUpper(createdAt.Weekday().String()[:3])

		result.PostsPerDate[dateKey] = append(result.PostsPerDate[dateKey], post)
		result.PostsPerTimeOfDay[hourKey] = append(result.PostsPerTimeOfDay[hourKey], post)
		result.PostsPerWeekday[weekdayKey] = append(result.PostsPerWeekday[weekdayKey], post)

		result.LikesPerDate[dateKey] += post.LikeCount
		result.RepostsPerDate[dateKey] += post.RepostCount
		result.QuotesPerDate[dateKey] += post.QuoteCount
		result.RepliesPerDate[dateKey] += post.ReplyCount

		if post.Reply != nil && post.Reply.Parent.Kind == domain.RecordText && post.Reply.Parent.Author != nil {
			partner := post.Reply.Parent.Author
			if partner.DID != data.Profile.DID {
				interaction, ok := interactions[partner.DID]
				if !ok {
					// First occurrence wins the profile snapshot.
					interaction = &domain.Interaction{DID: partner.DID, Profile: partner}
					interactions[partner.DID] = interaction
					interactionOrder = append(interactionOrder, partner.DID)
				}
				interaction.Count++
			}
		}

		for _, token := range Tokenize(post.Record.Text, opts.StopWords, opts.NoiseDomain) {
			word, ok := words[token]
			if !ok {
				word = &domain.Word{Text: token}
				words[token] = word
				wordOrder = append(wordOrder, token)
			}
			word.Count++
		}
	}

	// Ranking ties keep first-occurrence order, hence the stable sort over
	// the insertion-ordered slices.
	result.Interactions = make([]domain.Interaction, 0, len(interactionOrder))
	for _, did := range interactionOrder {
		result.Interactions = append(result.Interactions, *interactions[did])
	}
	sort.SliceStable(result.Interactions, func(i, j int) bool {
		return result.Interactions[i].Count > result.Interactions[j].Count
	})

	result.Words = make([]domain.Word, 0, len(wordOrder))
	for _, token := range wordOrder {
		result.Words = append(result.Words, *words[token])
	}
	sort.SliceStable(result.Words, func(i, j int) bool {
		return result.Words[i].Count > result.Words[j].Count
	})

	for _, post := range data.Posts {
		result.ReceivedLikes += post.LikeCount
		result.ReceivedReposts += post.RepostCount
		result.ReceivedQuotes += post.QuoteCount
		result.ReceivedReplies += post.ReplyCount
	}

	return result
}
