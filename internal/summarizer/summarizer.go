package summarizer

//go:generate go run go.uber.org/mock/mockgen -source=summarizer.go -destination=mocks/mock.go -package=mocks

import (
	"context"

	"github.com/badlogic/skystats-v2/internal/domain"
)

// Options tune how the service writes the summary.
type Options struct {
	Language string
	Tone     string
}

type Client interface {
	Summarize(ctx context.Context, req *domain.SummaryRequest, opts Options) (string, error)
}
