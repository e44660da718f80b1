package testgaze

import "time"

// Config holds configuration for the gaze load test.
type Config struct {
	BaseURL      string        // Base URL of the service
	NumTraces    int           // Number of traces to generate and submit
	Workers      int           // Number of concurrent workers
	Timeout      time.Duration // HTTP request timeout
	CorruptRatio float64       // Fraction of traces submitted without a y column
	LogFile      string        // Log file for test output
	Verbose      bool          // Enable verbose logging
}

// TestTrace is one generated trace ready for submission.
type TestTrace struct {
	ID        string // uuid, used in logs only; the service is stateless
	Pattern   string // "fixation", "scan" or "erratic"
	CSV       string // raw payload for POST /analyze
	Corrupted bool   // true when the y column was stripped
}

// Report mirrors the analysis response schema.
type Report struct {
	Score    int        `json:"score"`
	Analysis *Breakdown `json:"analysis"`
	Error    string     `json:"error"`
	Message  string     `json:"message"`
}

// Breakdown mirrors the analysis statistics schema.
type Breakdown struct {
	TotalPoints     int     `json:"total_points"`
	DurationSeconds float64 `json:"duration_seconds"`
	AverageMovement float64 `json:"average_movement"`
	TotalMovement   float64 `json:"total_movement"`
	StabilityScore  float64 `json:"stability_score"`
	CoverageArea    float64 `json:"coverage_area"`
}

// Stats holds test statistics.
type Stats struct {
	TracesGenerated int
	TracesSubmitted int
	Successes       int
	Failures        int
	Violations      int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
