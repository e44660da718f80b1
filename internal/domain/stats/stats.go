// Package stats derives descriptive statistics from a gaze trace.
package stats

import (
	"fmt"
	"math"

	"github.com/okian/gazelens/internal/domain/model"
)

// Stability configuration constants.
const (
	// neutralStability is reported when there are too few steps to
	// measure speed variance (fewer than two movement steps).
	neutralStability = 50.0

	// stabilityCeiling caps the penalty derived from speed variance.
	stabilityCeiling = 100.0

	// stabilityScale converts the speed standard deviation into a penalty.
	stabilityScale = 10.0
)

// Summary holds the raw quantities extracted from a trace. Values are
// kept at full precision; rounding happens at the presentation layer.
type Summary struct {
	TotalPoints   int
	Duration      float64 // max elapsed - min elapsed, seconds
	AvgDistance   float64 // mean per-step Euclidean movement
	TotalDistance float64 // summed per-step Euclidean movement
	CoverageArea  float64 // bounding-box area of all (x, y) samples
	Stability     float64 // 100 - capped speed variance penalty; can be negative
}

// Summarize computes the Summary for a trace.
//
// Duration uses the elapsed-time extrema rather than last-minus-first,
// since rows are not guaranteed sorted. Distance statistics are defined
// over consecutive row pairs in sequence order and are zero when the
// trace has fewer than two rows; stability is then the neutral default.
func Summarize(t model.Trace) (Summary, error) {
	if len(t) == 0 {
		return Summary{}, ErrEmptyTrace
	}

	s := Summary{TotalPoints: len(t)}

	minElapsed, maxElapsed := t[0].ElapsedTime, t[0].ElapsedTime
	minX, maxX := t[0].X, t[0].X
	minY, maxY := t[0].Y, t[0].Y
	for _, p := range t[1:] {
		minElapsed = math.Min(minElapsed, p.ElapsedTime)
		maxElapsed = math.Max(maxElapsed, p.ElapsedTime)
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	s.Duration = maxElapsed - minElapsed
	s.CoverageArea = (maxX - minX) * (maxY - minY)

	distances := stepDistances(t)
	for _, d := range distances {
		s.TotalDistance += d
	}
	if len(distances) > 0 {
		s.AvgDistance = s.TotalDistance / float64(len(distances))
	}

	stability, err := stability(t, distances)
	if err != nil {
		return Summary{}, err
	}
	s.Stability = stability

	return s, nil
}

// stepDistances returns the Euclidean distance between each consecutive
// pair of samples, in sequence order. Empty for traces shorter than two.
func stepDistances(t model.Trace) []float64 {
	if len(t) < 2 {
		return nil
	}
	distances := make([]float64, 0, len(t)-1)
	for i := 1; i < len(t); i++ {
		dx := t[i].X - t[i-1].X
		dy := t[i].Y - t[i-1].Y
		distances = append(distances, math.Hypot(dx, dy))
	}
	return distances
}

// stability measures the inverse of speed variance across consecutive
// samples: 100 minus the capped, scaled population standard deviation of
// per-step speeds. It can be arbitrarily negative for erratic traces.
//
// A zero elapsed-time delta makes the corresponding speed undefined and
// is reported as ErrZeroTimeDelta rather than silently skipped or
// clamped; out-of-order rows (negative deltas) are accepted and simply
// widen the variance.
func stability(t model.Trace, distances []float64) (float64, error) {
	if len(distances) < 2 {
		return neutralStability, nil
	}

	speeds := make([]float64, len(distances))
	for i, d := range distances {
		dt := t[i+1].ElapsedTime - t[i].ElapsedTime
		if dt == 0 {
			return 0, fmt.Errorf("%w: rows %d and %d", ErrZeroTimeDelta, i, i+1)
		}
		speeds[i] = d / dt
	}

	sd := populationStdDev(speeds)
	return stabilityCeiling - math.Min(sd*stabilityScale, stabilityCeiling), nil
}

// populationStdDev returns the population (not sample) standard deviation.
func populationStdDev(values []float64) float64 {
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		dev := v - mean
		variance += dev * dev
	}
	variance /= float64(len(values))

	return math.Sqrt(variance)
}
