// Package alert decides when a validated answer warrants clinician
// escalation, formats the escalation payload, and delivers it to a fixed set
// of recipients through an asynchronous dispatcher.  Delivery is best-effort:
// a failed or dropped alert never blocks record persistence or the
// conversational response.
package alert

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"homecare-chatbot/internal/catalog"
	"homecare-chatbot/pkg"
)

// consciousnessWarnings are the free-text terms that flag a consciousness
// answer.  Matching is case-insensitive substring containment.
var consciousnessWarnings = []string{"confused", "disoriented", "unresponsive"}

// woundWarnings are the wound-menu option codes that flag an assessment.
var woundWarnings = map[string]bool{
	"increased_redness": true,
	"color_changed":     true,
	"fever":             true,
}

func newPayload(patientID, category, value, detail string) pkg.AlertPayload {
	return pkg.AlertPayload{
		ID:        uuid.NewString(),
		PatientID: patientID,
		Category:  category,
		Value:     value,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
}

// OutOfRange reports whether a vital value breaches its declared bounds and,
// if so, which bound was crossed framed against that bound.
func OutOfRange(spec catalog.ParameterSpec, value float64) (bool, string) {
	if spec.Min != nil && value < *spec.Min {
		return true, fmt.Sprintf("below minimum of %g%s", *spec.Min, spec.Unit)
	}
	if spec.Max != nil && value > *spec.Max {
		return true, fmt.Sprintf("above maximum of %g%s", *spec.Max, spec.Unit)
	}
	return false, ""
}

// VitalBreach returns the escalation payload for a vital-sign value, firing
// only when the value falls outside the declared safe range.
func VitalBreach(patientID string, spec catalog.ParameterSpec, value float64) (pkg.AlertPayload, bool) {
	breached, detail := OutOfRange(spec, value)
	if !breached {
		return pkg.AlertPayload{}, false
	}
	return newPayload(patientID, spec.Name, fmt.Sprintf("%g%s", value, spec.Unit), detail), true
}

// ConsciousnessWarning fires when a consciousness description contains any
// warning term.
func ConsciousnessWarning(patientID, text string) (pkg.AlertPayload, bool) {
	lowered := strings.ToLower(text)
	for _, term := range consciousnessWarnings {
		if strings.Contains(lowered, term) {
			return newPayload(patientID, "consciousness", text, "warning sign: "+term), true
		}
	}
	return pkg.AlertPayload{}, false
}

// WoundWarning fires when a wound-menu selection is one of the warning codes.
func WoundWarning(patientID, code string) (pkg.AlertPayload, bool) {
	if !woundWarnings[code] {
		return pkg.AlertPayload{}, false
	}
	return newPayload(patientID, "wound_status", code, "wound warning sign"), true
}

// AnxietyConcern fires when a completed Beck Anxiety Inventory totals more
// than 15.
func AnxietyConcern(patientID string, total int, interpretation string) (pkg.AlertPayload, bool) {
	if total <= 15 {
		return pkg.AlertPayload{}, false
	}
	return newPayload(patientID, "emotional_status",
		fmt.Sprintf("Score: %d (%s)", total, interpretation), ""), true
}

// RecoveryConcern fires when a completed QoR-15 totals 80 or less.
func RecoveryConcern(patientID string, total int, interpretation string) (pkg.AlertPayload, bool) {
	if total > 80 {
		return pkg.AlertPayload{}, false
	}
	return newPayload(patientID, "postop_recovery",
		fmt.Sprintf("QoR-15 Score: %d (%s)", total, interpretation), ""), true
}

// ProblemReport fires unconditionally: every explicit problem report
// escalates regardless of content.
func ProblemReport(patientID, category, text string) pkg.AlertPayload {
	return newPayload(patientID, category, text, "")
}

// Message renders the payload as the clinician-facing alert text.
func Message(a pkg.AlertPayload) string {
	msg := fmt.Sprintf("🚨 PATIENT ALERT\nPatient ID: %s\nParameter: %s\nValue: %s",
		a.PatientID, strings.ReplaceAll(a.Category, "_", " "), a.Value)
	if a.Detail != "" {
		msg += fmt.Sprintf(" (%s)", a.Detail)
	}
	return msg
}
