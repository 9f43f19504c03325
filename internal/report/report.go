package report

import "context"

type Client interface {
	// ScheduleDigests starts the daily digest job and returns immediately.
	ScheduleDigests(ctx context.Context) error
	// RunDigest analyzes every configured handle and delivers the reports.
	RunDigest(ctx context.Context)
}
