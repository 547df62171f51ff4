package core

import (
	"strconv"
	"strings"

	"homecare-chatbot/internal/catalog"
)

// validate.go holds the pure input checks the machine runs before taking a
// transition.  None of these touch the session; they only coerce raw text to
// the typed value used downstream.

// ParseVitalValue accepts any real number.  Range membership is evaluated
// separately for alerting, not for validity.
func ParseVitalValue(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParsePainScore accepts an integer in the closed range [0, 10].
func ParsePainScore(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 || n > 10 {
		return 0, false
	}
	return n, true
}

// ParseAnswer accepts one of the discrete button values offered for a
// questionnaire.  Selections arrive as the option code, so anything else is
// off-menu input.
func ParseAnswer(spec catalog.QuestionnaireSpec, raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < spec.AnswerMin || n > spec.AnswerMax {
		return 0, false
	}
	return n, true
}
