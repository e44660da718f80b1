package testgaze

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/gazelens/pkg/logger"
)

// Run executes the complete gaze load test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting gazelens load test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("traces", config.NumTraces),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Float64("corruptRatio", config.CorruptRatio),
	)

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // load-test randomness, not security sensitive
	traces := generateTraces(ctx, config, rng)
	stats.TracesGenerated = len(traces)

	if err := submitTraces(ctx, config, traces, stats); err != nil {
		return fmt.Errorf("trace submission failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if stats.Violations > 0 {
		return fmt.Errorf("%d invariant violations detected", stats.Violations)
	}
	logger.Get().Info(ctx, "test completed successfully")
	return nil
}

// submitTraces posts all traces through a bounded worker pool and
// verifies each report against the service invariants.
func submitTraces(ctx context.Context, config *Config, traces []TestTrace, stats *Stats) error {
	client := newHTTPClient(config.Timeout)

	var submitted, successes, failures, violations atomic.Int64
	work := make(chan TestTrace)

	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range work {
				report, err := client.Analyze(ctx, config.BaseURL, t.CSV)
				if err != nil {
					logger.Get().Error(ctx, "analyze request failed",
						logger.String("trace", t.ID), logger.Error(err))
					failures.Add(1)
					continue
				}
				submitted.Add(1)

				if v := verifyReport(t, report); len(v) > 0 {
					violations.Add(int64(len(v)))
					for _, msg := range v {
						logger.Get().Error(ctx, "invariant violation", logger.String("detail", msg))
					}
					continue
				}

				if report.Error != "" {
					failures.Add(1)
				} else {
					successes.Add(1)
					if config.Verbose {
						logger.Get().Info(ctx, "trace analyzed",
							logger.String("trace", t.ID),
							logger.String("pattern", t.Pattern),
							logger.Int("score", report.Score),
						)
					}
				}
			}
		}()
	}

	for _, t := range traces {
		select {
		case <-ctx.Done():
			close(work)
			wg.Wait()
			return ctx.Err()
		case work <- t:
		}
	}
	close(work)
	wg.Wait()

	stats.TracesSubmitted = int(submitted.Load())
	stats.Successes = int(successes.Load())
	stats.Failures = int(failures.Load())
	stats.Violations = int(violations.Load())
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != 200 {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats logs the end-of-run summary.
func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "load test summary",
		logger.Int("generated", stats.TracesGenerated),
		logger.Int("submitted", stats.TracesSubmitted),
		logger.Int("successes", stats.Successes),
		logger.Int("failures", stats.Failures),
		logger.Int("violations", stats.Violations),
		logger.String("duration", stats.Duration.String()),
	)
}
