// Command analyze runs a single analysis from the command line and prints
// the result, without the bot or the scheduler.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/badlogic/skystats-v2/internal/analytics"
	"github.com/badlogic/skystats-v2/internal/analytics/analyticsimpl"
	"github.com/badlogic/skystats-v2/internal/bluesky/blueskyimpl"
	"github.com/badlogic/skystats-v2/internal/domain"
	"github.com/badlogic/skystats-v2/internal/ingest/ingestimpl"
	"github.com/badlogic/skystats-v2/internal/summarizer/summarizerimpl"
	"github.com/badlogic/skystats-v2/pkg/config"
	"github.com/badlogic/skystats-v2/pkg/formatter"
	"github.com/badlogic/skystats-v2/pkg/logger"
)

func main() {
	handle := flag.String("handle", "", "account handle to analyze (required)")
	days := flag.Int("days", analytics.DefaultWindowDays, "trailing window in days")
	language := flag.String("language", "", "summary language (defaults to SUMMARIZER_LANGUAGE)")
	tone := flag.String("tone", "", "summary tone, e.g. neutral or brutal")
	flag.Parse()

	if *handle == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	lg := logger.New(logger.Opts{Env: cfg.App.Env})

	bsky := blueskyimpl.New(blueskyimpl.Opts{Config: cfg, Logger: lg})
	ing := ingestimpl.New(ingestimpl.Opts{Bluesky: bsky, Logger: lg})
	sum := summarizerimpl.New(summarizerimpl.Opts{Config: cfg, Logger: lg})
	an := analyticsimpl.New(analyticsimpl.Opts{
		Config:     cfg,
		Logger:     lg,
		Ingest:     ing,
		Summarizer: sum,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := an.Run(ctx, analytics.Query{
		Handle:     *handle,
		WindowDays: *days,
		Language:   *language,
		Tone:       *tone,
	})
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	printReport(res, *days)
}

func printReport(res *analytics.Result, days int) {
	st := res.Stats
	profile := res.Data.Profile

	fmt.Printf("@%s (%s) over the last %d days\n", profile.Handle, profile.DID, days)
	fmt.Printf("Posts analyzed: %s\n", formatter.FormatNumber(len(res.Data.Posts)))
	fmt.Printf("Likes: %s  Reposts: %s  Quotes: %s  Replies: %s\n",
		formatter.FormatCompact(st.ReceivedLikes),
		formatter.FormatCompact(st.ReceivedReposts),
		formatter.FormatCompact(st.ReceivedQuotes),
		formatter.FormatCompact(st.ReceivedReplies))

	fmt.Println("\nPosts per date:")
	printBuckets(st.PostsPerDate)
	fmt.Println("\nPosts per weekday:")
	printBuckets(st.PostsPerWeekday)
	fmt.Println("\nPosts per hour:")
	printBuckets(st.PostsPerTimeOfDay)

	if len(st.Interactions) > 0 {
		fmt.Println("\nTop conversation partners:")
		for i, in := range st.Interactions {
			if i == 10 {
				break
			}
			name := in.DID
			if in.Profile != nil && in.Profile.Handle != "" {
				name = "@" + in.Profile.Handle
			}
			fmt.Printf("  %2d. %s (%d)\n", i+1, name, in.Count)
		}
	}

	if len(st.Words) > 0 {
		fmt.Println("\nTop words:")
		for i, w := range st.Words {
			if i == 20 {
				break
			}
			fmt.Printf("  %2d. %s (%d)\n", i+1, w.Text, w.Count)
		}
	}

	if st.Summary != "" {
		fmt.Println("\nSummary:")
		fmt.Println(st.Summary)
	}
}

func printBuckets(buckets map[string][]*domain.Post) {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %d\n", k, len(buckets[k]))
	}
}
