package blueskyimpl

import (
	"net/http"
	"strings"
	"time"

	"github.com/badlogic/skystats-v2/internal/bluesky"
	"github.com/badlogic/skystats-v2/pkg/config"
	"github.com/badlogic/skystats-v2/pkg/logger"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// BskyImpl talks to the public Bluesky AppView over its XRPC JSON endpoints.
// No authentication is needed for profile and author-feed reads.
type BskyImpl struct {
	host    string
	http    *http.Client
	limiter *rate.Limiter
	logger  logger.Logger
}

func New(opts Opts) *BskyImpl {
	pps := opts.Config.Bluesky.PagesPerSecond
	if pps <= 0 {
		pps = 5
	}

	return &BskyImpl{
		host:    strings.TrimRight(opts.Config.Bluesky.APIHost, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(pps), 1),
		logger:  opts.Logger.WithComponent("BlueskyClient"),
	}
}

var _ bluesky.Client = (*BskyImpl)(nil)
