package reportimpl

import (
	"strings"

	"github.com/badlogic/skystats-v2/internal/analytics"
	"github.com/badlogic/skystats-v2/internal/report"
	"github.com/badlogic/skystats-v2/internal/telegram"
	"github.com/badlogic/skystats-v2/pkg/config"
	"github.com/badlogic/skystats-v2/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Analytics analytics.Client
	Telegram  telegram.Client
	Logger    logger.Logger
	Config    *config.Config
}

type ReportImpl struct {
	Analytics analytics.Client
	Telegram  telegram.Client
	Logger    logger.Logger
	Config    *config.Config
}

func New(opts Opts) *ReportImpl {
	return &ReportImpl{
		Analytics: opts.Analytics,
		Telegram:  opts.Telegram,
		Logger:    opts.Logger,
		Config:    opts.Config,
	}
}

var _ report.Client = (*ReportImpl)(nil)

// digestHandles parses the configured comma-separated handle list.
func (r *ReportImpl) digestHandles() []string {
	var out []string
	for _, h := range strings.Split(r.Config.Digest.Handles, ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}
