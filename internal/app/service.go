// Package service provides the core analysis service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/gazelens/internal/domain/model"
	"github.com/okian/gazelens/internal/domain/scoring"
	"github.com/okian/gazelens/internal/domain/stats"
	"github.com/okian/gazelens/internal/domain/trace"
	"github.com/okian/gazelens/pkg/logger"
	"github.com/okian/gazelens/pkg/metrics"
)

// Messages used in analysis reports.
const (
	failureMessage       = "Analysis failed"
	successMessagePrefix = "Analysis completed: "
)

const defaultMaxTraceRows = 250_000

// Service runs the gaze analysis pipeline: parse, summarize, score,
// label. Each Analyze call is independent; the service keeps no state
// between requests beyond counters for monitoring.
type Service struct {
	mu sync.RWMutex

	scorer  scoring.Scorer
	maxRows int

	// State
	started bool

	// Monitoring counters
	analyses atomic.Int64
	failures atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScorer replaces the default score evaluator.
func WithScorer(sc scoring.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// WithMaxTraceRows caps the number of data rows accepted per request.
func WithMaxTraceRows(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxRows = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scorer:  scoring.NewEvaluator(),
		maxRows: defaultMaxTraceRows,
		logger:  nil, // resolved on Start
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start prepares the service for use.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.started = true
	s.logger.Info(ctx, "analysis service started",
		logger.Int("maxTraceRows", s.maxRows),
	)
	return nil
}

// Stop shuts down the service. There are no background resources; this
// exists for lifecycle symmetry with callers.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "analysis service stopped")
}

// Analyze runs the full pipeline on raw tabular text and always returns
// a well-formed report: any error raised by any stage is converted into
// the failure variant instead of propagating.
func (s *Service) Analyze(ctx context.Context, text string) model.Report {
	start := time.Now()
	s.analyses.Add(1)

	t, err := trace.Parse(text, trace.WithMaxRows(s.maxRows))
	if err != nil {
		return s.fail(ctx, "parse", err)
	}

	summary, err := stats.Summarize(t)
	if err != nil {
		return s.fail(ctx, "stats", err)
	}

	result := s.scorer.Score(scoring.Input{
		Duration:    summary.Duration,
		AvgMovement: summary.AvgDistance,
		Stability:   summary.Stability,
		Coverage:    summary.CoverageArea,
		Points:      summary.TotalPoints,
	})

	metrics.RecordAnalysisCompleted()
	metrics.ObserveAttentionScore(result.Score)
	metrics.ObserveTracePoints(summary.TotalPoints)
	metrics.RecordAnalysisDuration(float64(time.Since(start).Milliseconds()))

	s.logger.Debug(ctx, "analysis completed",
		logger.Int("score", result.Score),
		logger.Int("points", summary.TotalPoints),
		logger.Float64("duration", summary.Duration),
	)

	return model.Report{
		Score: result.Score,
		Analysis: &model.Breakdown{
			TotalPoints:     summary.TotalPoints,
			DurationSeconds: round2(summary.Duration),
			AverageMovement: round2(summary.AvgDistance),
			TotalMovement:   round2(summary.TotalDistance),
			StabilityScore:  round2(summary.Stability),
			CoverageArea:    round2(summary.CoverageArea),
		},
		Message: successMessagePrefix + result.Label,
	}
}

// fail converts a stage error into the failure report variant.
func (s *Service) fail(ctx context.Context, stage string, err error) model.Report {
	s.failures.Add(1)
	metrics.RecordAnalysisFailed(stage)
	s.logger.Warn(ctx, "analysis failed",
		logger.String("stage", stage),
		logger.Error(err),
	)
	return model.Report{
		Score:   0,
		Error:   err.Error(),
		Message: failureMessage,
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":      s.started,
		"maxTraceRows": s.maxRows,
		"analyses":     int(s.analyses.Load()),
		"failures":     int(s.failures.Load()),
	}
}

// round2 rounds to two decimal places for presentation; internal
// computation stays at full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
