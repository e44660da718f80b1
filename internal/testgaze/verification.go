package testgaze

import (
	"fmt"
	"strings"
)

// Score bounds and message constants the service guarantees.
const (
	minScore = 1
	maxScore = 100

	failureMessage       = "Analysis failed"
	successMessagePrefix = "Analysis completed: "
)

// verifyReport checks the invariants every response must satisfy.
// Returns a non-empty slice of violation descriptions when broken.
func verifyReport(t TestTrace, r Report) []string {
	var violations []string

	if t.Corrupted {
		if r.Score != 0 {
			violations = append(violations, fmt.Sprintf("trace %s: corrupted input scored %d, want 0", t.ID, r.Score))
		}
		if r.Error == "" {
			violations = append(violations, fmt.Sprintf("trace %s: failure report has empty error", t.ID))
		}
		if r.Message != failureMessage {
			violations = append(violations, fmt.Sprintf("trace %s: failure message %q", t.ID, r.Message))
		}
		return violations
	}

	if r.Score < minScore || r.Score > maxScore {
		violations = append(violations, fmt.Sprintf("trace %s: score %d outside [%d,%d]", t.ID, r.Score, minScore, maxScore))
	}
	if r.Error != "" {
		violations = append(violations, fmt.Sprintf("trace %s: unexpected error %q", t.ID, r.Error))
	}
	if !strings.HasPrefix(r.Message, successMessagePrefix) {
		violations = append(violations, fmt.Sprintf("trace %s: message %q lacks completion prefix", t.ID, r.Message))
	}
	if r.Analysis == nil {
		violations = append(violations, fmt.Sprintf("trace %s: success report missing analysis", t.ID))
	}
	return violations
}
