package summarizerimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/badlogic/skystats-v2/internal/domain"
	"github.com/badlogic/skystats-v2/internal/summarizer"
	"github.com/badlogic/skystats-v2/pkg/config"
	"github.com/badlogic/skystats-v2/pkg/logger"
	"github.com/badlogic/skystats-v2/pkg/retry"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// SummarizerImpl calls the external summarization service. The service
// owns prompt construction and token budgeting; we only ship post texts.
type SummarizerImpl struct {
	url    string
	http   *http.Client
	logger logger.Logger
}

func New(opts Opts) *SummarizerImpl {
	return &SummarizerImpl{
		url:    strings.TrimRight(opts.Config.Summarizer.URL, "/"),
		http:   &http.Client{Timeout: 120 * time.Second},
		logger: opts.Logger.WithComponent("SummarizerClient"),
	}
}

var _ summarizer.Client = (*SummarizerImpl)(nil)

type summarizeRequest struct {
	Key      string   `json:"key"`
	Posts    []string `json:"posts"`
	Language string   `json:"language"`
	Brutal   bool     `json:"brutal"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
	Error   string `json:"error,omitempty"`
}

func (s *SummarizerImpl) Summarize(ctx context.Context, req *domain.SummaryRequest, opts summarizer.Options) (string, error) {
	if req == nil || len(req.Texts) == 0 {
		return "", fmt.Errorf("summarize: empty request")
	}
	if s.url == "" {
		return "", fmt.Errorf("summarize: no service URL configured")
	}

	body, err := json.Marshal(summarizeRequest{
		Key:      req.SourceKey,
		Posts:    req.Texts,
		Language: opts.Language,
		Brutal:   opts.Tone == "brutal",
	})
	if err != nil {
		return "", fmt.Errorf("summarize: encode request: %w", err)
	}

	var decoded summarizeResponse
	operation := func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/api/summarize", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(httpReq)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return fmt.Errorf("summarize: service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(slurp)))
		}
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return fmt.Errorf("summarize: decode response: %w", err)
		}
		return nil
	}

	if err := retry.Do(ctx, s.logger, "summarize", operation, retry.DefaultConfig()); err != nil {
		return "", err
	}
	if decoded.Error != "" {
		return "", fmt.Errorf("summarize: service error: %s", decoded.Error)
	}
	return decoded.Summary, nil
}
