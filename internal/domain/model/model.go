// Package model contains domain models passed between layers.
package model

// Sample represents one gaze observation: elapsed time in seconds and
// screen coordinates. A sample has no identity beyond its position in
// the trace.
type Sample struct {
	ElapsedTime float64 // seconds since recording started
	X           float64
	Y           float64
}

// Trace is an ordered series of samples. Insertion order is temporal
// order as parsed from the input; the timestamps themselves are not
// guaranteed to be sorted.
type Trace []Sample

// Breakdown carries the descriptive statistics of a successful analysis.
// All float fields are rounded to two decimal places for presentation.
// Fields mirror the response schema for POST /analyze.
type Breakdown struct {
	TotalPoints     int     `json:"total_points"`
	DurationSeconds float64 `json:"duration_seconds"`
	AverageMovement float64 `json:"average_movement"`
	TotalMovement   float64 `json:"total_movement"`
	StabilityScore  float64 `json:"stability_score"`
	CoverageArea    float64 `json:"coverage_area"`
}

// Report is the analysis outcome returned to clients. On success Score
// is an integer in [1,100] and Analysis is populated; on failure Score
// is 0, Analysis is nil and Error describes what went wrong.
type Report struct {
	Score    int        `json:"score"`
	Analysis *Breakdown `json:"analysis,omitempty"`
	Error    string     `json:"error,omitempty"`
	Message  string     `json:"message"`
}

// Failed reports whether r is the failure variant.
func (r Report) Failed() bool {
	return r.Error != ""
}
