package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/badlogic/skystats-v2/internal/analytics"
	"github.com/badlogic/skystats-v2/internal/analytics/analyticsimpl"
	"github.com/badlogic/skystats-v2/internal/bluesky"
	"github.com/badlogic/skystats-v2/internal/bluesky/blueskyimpl"
	"github.com/badlogic/skystats-v2/internal/command"
	"github.com/badlogic/skystats-v2/internal/command/commandimpl"
	"github.com/badlogic/skystats-v2/internal/ingest"
	"github.com/badlogic/skystats-v2/internal/ingest/ingestimpl"
	"github.com/badlogic/skystats-v2/internal/report"
	"github.com/badlogic/skystats-v2/internal/report/reportimpl"
	"github.com/badlogic/skystats-v2/internal/summarizer"
	"github.com/badlogic/skystats-v2/internal/summarizer/summarizerimpl"
	"github.com/badlogic/skystats-v2/internal/telegram"
	"github.com/badlogic/skystats-v2/internal/telegram/telegramimpl"
	"github.com/badlogic/skystats-v2/pkg/config"
	"github.com/badlogic/skystats-v2/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			blueskyimpl.New,
			fx.As(new(bluesky.Client)),
		),
		fx.Annotate(
			ingestimpl.New,
			fx.As(new(ingest.Client)),
		),
		fx.Annotate(
			summarizerimpl.New,
			fx.As(new(summarizer.Client)),
		),
		fx.Annotate(
			analyticsimpl.New,
			fx.As(new(analytics.Client)),
		),
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			reportimpl.New,
			fx.As(new(report.Client)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, tgClient telegram.Client,
	reportClient report.Client, cmdClient command.Client) {
	var cancel context.CancelFunc

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ctx, c := context.WithCancel(context.Background())
			cancel = c

			go startHttpServer(log, cfg)

			if err := reportClient.ScheduleDigests(ctx); err != nil {
				log.Error("Digest scheduling error", "error", err)
				tgClient.SendMessageToDefaultChat("Digest scheduling error: " + err.Error())
			}

			go func() {
				if err := cmdClient.HandleCommand(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("Command handler stopped", "error", err)
					tgClient.SendMessageToDefaultChat("Command handler stopped: " + err.Error())
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			if cancel != nil {
				cancel()
			}
			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
