package testgaze

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/okian/gazelens/pkg/logger"
)

// Trace generation constants.
const (
	sampleInterval = 0.016 // seconds between samples, ~60 Hz recorder

	fixationJitter = 2.0 // px of noise around a fixation point
	scanStep       = 90.0
	erraticStep    = 600.0

	minSamples = 30
	maxSamples = 1800

	screenWidth  = 1920.0
	screenHeight = 1080.0
)

// Gaze patterns the generator can produce.
const (
	PatternFixation = "fixation"
	PatternScan     = "scan"
	PatternErratic  = "erratic"
)

var patterns = []string{PatternFixation, PatternScan, PatternErratic}

// generateTraces creates synthetic gaze traces across the known patterns.
// A CorruptRatio fraction of them has the y column stripped so the
// failure path gets exercised too.
func generateTraces(ctx context.Context, config *Config, rng *rand.Rand) []TestTrace {
	logger.Get().Info(ctx, "generating gaze traces", logger.Int("numTraces", config.NumTraces))

	traces := make([]TestTrace, config.NumTraces)
	for i := range traces {
		pattern := patterns[i%len(patterns)]
		n := minSamples + rng.Intn(maxSamples-minSamples)
		csv := buildCSV(pattern, n, rng)

		corrupted := rng.Float64() < config.CorruptRatio
		if corrupted {
			csv = stripYColumn(csv)
		}

		traces[i] = TestTrace{
			ID:        uuid.New().String(),
			Pattern:   pattern,
			CSV:       csv,
			Corrupted: corrupted,
		}
	}
	return traces
}

// buildCSV renders a synthetic trace of n samples following the pattern.
func buildCSV(pattern string, n int, rng *rand.Rand) string {
	var b strings.Builder
	b.WriteString("elapsedTime(seconds),x,y\n")

	x := screenWidth / 2
	y := screenHeight / 2
	for i := 0; i < n; i++ {
		switch pattern {
		case PatternFixation:
			x = screenWidth/2 + rng.NormFloat64()*fixationJitter
			y = screenHeight/2 + rng.NormFloat64()*fixationJitter
		case PatternScan:
			// Steady left-to-right sweep with mild vertical drift
			x = math.Mod(x+scanStep, screenWidth)
			y += rng.NormFloat64() * fixationJitter
		case PatternErratic:
			x = clamp(x+(rng.Float64()*2-1)*erraticStep, 0, screenWidth)
			y = clamp(y+(rng.Float64()*2-1)*erraticStep, 0, screenHeight)
		}
		fmt.Fprintf(&b, "%.3f,%.2f,%.2f\n", float64(i)*sampleInterval, x, y)
	}
	return b.String()
}

// stripYColumn removes the y column from a rendered trace, producing
// input the service must reject.
func stripYColumn(csv string) string {
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	for i, line := range lines {
		if idx := strings.LastIndex(line, ","); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
