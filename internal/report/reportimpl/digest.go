package reportimpl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"

	"github.com/badlogic/skystats-v2/internal/analytics"
	"github.com/badlogic/skystats-v2/internal/report"
)

const digestWorkers = 3

// ScheduleDigests sets up the daily digest job at the configured hour.
func (r *ReportImpl) ScheduleDigests(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return fmt.Errorf("failed to create digest scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(uint(r.Config.Digest.Hour), 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				r.Logger.Info("Context cancelled, skipping digest run")
				return
			}

			taskCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
			defer cancel()

			r.RunDigest(taskCtx)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule digests: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		r.Logger.Info("Stopping digest scheduler")
		if err := scheduler.Shutdown(); err != nil {
			r.Logger.Error("Failed to shut down digest scheduler", "error", err)
		}
	}()

	return nil
}

// RunDigest analyzes every configured handle and sends the reports to the
// default chat. Handles are processed by a small worker pool so one slow
// account does not hold up the rest.
func (r *ReportImpl) RunDigest(ctx context.Context) {
	handles := r.digestHandles()
	if len(handles) == 0 {
		r.Logger.Info("No digest handles configured. Skipping.")
		return
	}

	r.Logger.Info("Starting digest run", "handles", len(handles))

	var wg sync.WaitGroup
	pool, _ := ants.NewPool(digestWorkers, ants.WithPreAlloc(true))
	defer pool.Release()

	for _, handle := range handles {
		wg.Add(1)
		h := handle

		err := pool.Submit(func() {
			defer wg.Done()
			select {
			case <-ctx.Done():
				r.Logger.Info("Skipping digest due to context cancellation", "handle", h)
				return
			default:
				if err := r.digestOne(ctx, h); err != nil {
					r.Logger.Error("Digest failed", "handle", h, "error", err)
				}
			}
		})
		if err != nil {
			wg.Done()
			r.Logger.Error("Failed to submit digest job", "handle", h, "error", err)
		}
	}

	wg.Wait()
	r.Logger.Info("Digest run complete")
}

func (r *ReportImpl) digestOne(ctx context.Context, handle string) error {
	res, err := r.Analytics.Run(ctx, analytics.Query{
		Handle:     handle,
		WindowDays: r.Config.Digest.WindowDays,
	})
	if err != nil {
		return err
	}

	msg := report.Render(res.Data.Profile.Handle, r.Config.Digest.WindowDays, res.Stats)
	r.Telegram.SendMarkdownToDefaultChat(msg)
	return nil
}
