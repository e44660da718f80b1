// Package scoring computes the attention score from trace statistics.
package scoring

import (
	"math"
)

// Scoring formula constants.
const (
	baseScore = 50.0

	// Duration component: recordings between idealDurationMin and
	// idealDurationMax seconds earn the full durationMax.
	idealDurationMin   = 10.0
	idealDurationMax   = 30.0
	durationMax        = 25.0
	durationOverrunPen = 0.5  // penalty per second beyond idealDurationMax
	durationOverrunCap = 15.0 // penalty never exceeds this
	durationRampRate   = 2.5  // score per second below idealDurationMin

	// Stability component.
	stabilityWeight = 0.3
	stabilityMax    = 20.0

	// Data quality component, saturating at qualitySaturation points.
	qualitySaturation = 100.0
	qualityMax        = 15.0

	// Movement component: average per-step movement inside
	// [idealMovementMin, idealMovementMax] earns the full movementMax,
	// outside it decays linearly away from movementCenter.
	idealMovementMin = 50.0
	idealMovementMax = 200.0
	movementMax      = 10.0
	movementCenter   = 125.0
	movementFalloff  = 0.05

	minScore = 1
	maxScore = 100
)

// Input holds the raw statistics the score is derived from.
type Input struct {
	Duration    float64 // recording duration in seconds
	AvgMovement float64 // mean per-step Euclidean movement
	Stability   float64 // capped at 100, may be arbitrarily negative
	Coverage    float64 // bounding-box area; informational, not weighted
	Points      int     // number of samples
}

// Result is the evaluated score with its descriptive label.
type Result struct {
	Score int
	Label string
}

// Scorer turns trace statistics into a bounded attention score.
type Scorer interface {
	Score(in Input) Result
}

// Evaluator implements Scorer with the fixed piecewise-linear formula.
// It is stateless and safe for concurrent use.
type Evaluator struct{}

// NewEvaluator creates a new evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Score sums the four sub-scores on top of the base, clamps the total to
// [1,100] and truncates toward zero to an integer. The label is derived
// from that same integer.
func (e *Evaluator) Score(in Input) Result {
	total := baseScore +
		durationScore(in.Duration) +
		stabilityScore(in.Stability) +
		qualityScore(in.Points) +
		movementScore(in.AvgMovement)

	score := int(math.Min(maxScore, math.Max(minScore, total)))
	return Result{Score: score, Label: Label(score)}
}

// durationScore rewards recordings in the ideal window and decays on
// either side: linear ramp-up below, capped linear penalty above.
func durationScore(duration float64) float64 {
	switch {
	case duration >= idealDurationMin && duration <= idealDurationMax:
		return durationMax
	case duration > idealDurationMax:
		return durationMax - math.Min((duration-idealDurationMax)*durationOverrunPen, durationOverrunCap)
	default:
		return duration * durationRampRate
	}
}

// stabilityScore weights the stability statistic. Stability may be
// negative for erratic traces; the negative value is passed through so
// the overall clamp handles it.
func stabilityScore(stability float64) float64 {
	return math.Min(stability*stabilityWeight, stabilityMax)
}

// qualityScore rewards sample count, saturating at qualitySaturation.
func qualityScore(points int) float64 {
	return math.Min(float64(points)/qualitySaturation, 1) * qualityMax
}

// movementScore rewards average movement in the ideal band, with a
// triangular falloff centered between the band edges that floors at 0.
func movementScore(avgMovement float64) float64 {
	if avgMovement >= idealMovementMin && avgMovement <= idealMovementMax {
		return movementMax
	}
	return math.Max(movementMax-math.Abs(avgMovement-movementCenter)*movementFalloff, 0)
}

// Label thresholds, evaluated on the final integer score.
const (
	excellentThreshold = 85
	goodThreshold      = 70
	moderateThreshold  = 55
	needsWorkThreshold = 40
)

// Label maps an integer score to its human-readable category.
func Label(score int) string {
	switch {
	case score >= excellentThreshold:
		return "Excellent attention patterns"
	case score >= goodThreshold:
		return "Good attention stability"
	case score >= moderateThreshold:
		return "Moderate attention focus"
	case score >= needsWorkThreshold:
		return "Needs attention improvement"
	default:
		return "Poor attention patterns"
	}
}
