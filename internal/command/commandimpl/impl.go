package commandimpl

import (
	"time"

	"github.com/badlogic/skystats-v2/internal/analytics"
	"github.com/badlogic/skystats-v2/internal/command"
	"github.com/badlogic/skystats-v2/internal/ratelimit"
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

type CommandImpl struct {
	Analytics analytics.Client
	Telegram  telegram.Client
	Logger    logger.Logger
	Config    *config.Config
	Limiter   ratelimit.Limiter
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Analytics: opts.Analytics,
		Telegram:  opts.Telegram,
		Logger:    opts.Logger,
		Config:    opts.Config,
		// One analysis per user every 30 seconds, small burst for typos.
		Limiter: ratelimit.NewInMemoryLimiter(1, 30*time.Second, 2),
	}
}

var _ command.Client = (*CommandImpl)(nil)
