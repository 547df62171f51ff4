package core

// score.go implements the scoring rules for the two instruments.  Both are
// pure functions over the ordered answer sequence; the slice boundaries are
// clinically meaningful and must not be altered.

// AnxietyResult is the outcome of a completed Beck Anxiety Inventory.
type AnxietyResult struct {
	Total          int
	Interpretation string
}

// ScoreAnxiety sums the 21 per-question answers (0-3 each, total 0-63).
func ScoreAnxiety(answers []int) AnxietyResult {
	total := 0
	for _, a := range answers {
		total += a
	}
	var interp string
	switch {
	case total <= 7:
		interp = "Minimal anxiety"
	case total <= 15:
		interp = "Mild anxiety"
	case total <= 25:
		interp = "Moderate anxiety"
	default:
		interp = "Severe anxiety"
	}
	return AnxietyResult{Total: total, Interpretation: interp}
}

// RecoveryResult is the outcome of a completed QoR-15.
type RecoveryResult struct {
	Total          int
	Interpretation string
	// Sub-scores on a 0-10 scale.  The divisors (5, 2, 2) do not tile the
	// 15 questions; they are preserved exactly as clinically specified.
	PhysicalComfort float64
	EmotionalState  float64
	PainControl     float64
}

// ScoreRecovery computes the QoR-15 total on a higher-is-better 0-150 scale.
// The first ten answers count directly; the last five describe negative
// dimensions (moderate pain, severe pain, nausea, worry, sadness) and are
// inverted against their 20-point blocks.
func ScoreRecovery(answers []int) RecoveryResult {
	sum := func(lo, hi int) int {
		s := 0
		for _, a := range answers[lo:hi] {
			s += a
		}
		return s
	}
	total := sum(0, 10) + (20 - sum(10, 13)) + (20 - sum(13, 15))
	var interp string
	switch {
	case total <= 30:
		interp = "Poor recovery"
	case total <= 80:
		interp = "Moderate recovery"
	default:
		interp = "Good recovery"
	}
	return RecoveryResult{
		Total:           total,
		Interpretation:  interp,
		PhysicalComfort: float64(sum(0, 5)) / 5.0,
		EmotionalState:  float64(sum(13, 15)) / 2.0,
		PainControl:     float64(sum(10, 12)) / 2.0,
	}
}
