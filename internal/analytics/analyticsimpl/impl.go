package analyticsimpl

import (
	"context"
	"fmt"

	"github.com/badlogic/skystats-v2/internal/analytics"
	"github.com/badlogic/skystats-v2/internal/ingest"
	"github.com/badlogic/skystats-v2/internal/stats"
	"github.com/badlogic/skystats-v2/internal/summarizer"
	"github.com/badlogic/skystats-v2/internal/summary"
	"github.com/badlogic/skystats-v2/pkg/config"
	"github.com/badlogic/skystats-v2/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Ingest     ingest.Client
	Summarizer summarizer.Client
}

type AnalyticsImpl struct {
	config     *config.Config
	logger     logger.Logger
	ingest     ingest.Client
	summarizer summarizer.Client
}

func New(opts Opts) *AnalyticsImpl {
	return &AnalyticsImpl{
		config:     opts.Config,
		logger:     opts.Logger.WithComponent("Analytics"),
		ingest:     opts.Ingest,
		summarizer: opts.Summarizer,
	}
}

var _ analytics.Client = (*AnalyticsImpl)(nil)

func (a *AnalyticsImpl) Run(ctx context.Context, q analytics.Query) (*analytics.Result, error) {
	handle, err := analytics.NormalizeHandle(q.Handle, a.config.Bluesky.DefaultDomain)
	if err != nil {
		return nil, fmt.Errorf("normalize handle %q: %w", q.Handle, err)
	}

	windowDays := q.WindowDays
	if windowDays <= 0 {
		windowDays = analytics.DefaultWindowDays
	}

	a.logger.Info("Running analysis", "handle", handle, "window_days", windowDays)

	data, err := a.ingest.FetchRecentPosts(ctx, handle, windowDays)
	if err != nil {
		return nil, err
	}

	st := stats.Aggregate(data, stats.Options{
		NoiseDomain: a.config.Bluesky.DefaultDomain,
	})

	if req := summary.BuildRequest(data, summary.DefaultMaxSourcePosts); req != nil {
		text, err := a.summarizer.Summarize(ctx, req, a.summaryOptions(q))
		if err != nil {
			// A missing summary should not sink the whole analysis.
			a.logger.Warn("Summarization failed", "handle", handle, "error", err)
		} else {
			st.Summary = text
		}
	}

	a.logger.Info("Analysis complete",
		"handle", handle,
		"posts", len(data.Posts),
		"partners", len(st.Interactions),
		"words", len(st.Words),
	)

	return &analytics.Result{Data: data, Stats: st}, nil
}

func (a *AnalyticsImpl) summaryOptions(q analytics.Query) summarizer.Options {
	opts := summarizer.Options{
		Language: a.config.Summarizer.Language,
		Tone:     a.config.Summarizer.Tone,
	}
	if q.Language != "" {
		opts.Language = q.Language
	}
	if q.Tone != "" {
		opts.Tone = q.Tone
	}
	return opts
}
