package pkg

import "time"

// EventKind describes how an inbound event was produced by the chat
// transport.  Commands reset the conversation, selections carry a menu
// option code and free text carries raw patient input.
type EventKind string

const (
	KindCommand   EventKind = "command"
	KindSelection EventKind = "selection"
	KindFreeText  EventKind = "free_text"
)

// Event is one inbound message from the transport layer.
type Event struct {
	PatientID string    `json:"patient_id"`
	Kind      EventKind `json:"kind"`
	Payload   string    `json:"payload"`
}

// Option is a single selectable menu entry.  Label is display-only; Code is
// the value the transport sends back as a selection payload.  The two are
// kept separate so UI wording can change without touching transition logic.
type Option struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

// Response is the descriptor the core hands back to the transport layer.
// Options is empty for free-text prompts.  The core never emits
// platform-specific markup.
type Response struct {
	Text    string   `json:"text"`
	Options []Option `json:"options,omitempty"`
}

// Record types for the fixed assessment categories.  Problem-style
// categories (medication compliance, shower, driving, ...) use the
// parameter name itself as the record type.
const (
	RecordVitalSign = "vital_sign"
	RecordPain      = "pain_assessment"
	RecordConscious = "consciousness"
	RecordEmotional = "emotional_assessment"
	RecordQoR       = "qor_assessment"
	RecordWound     = "wound_assessment"
)

// Record is one immutable entry in a patient's assessment log.  Payload holds
// the category-specific fields: value/unit for vitals, location/type/symptoms
// for pain, score/interpretation/answers for questionnaires, free text for
// problem reports.
type Record struct {
	ID        string                 `json:"id"`
	PatientID string                 `json:"patient_id"`
	Type      string                 `json:"type"`
	Payload   map[string]interface{} `json:"payload"`
	Flagged   bool                   `json:"flagged"`
	CreatedAt time.Time              `json:"created_at"`
}

// AlertPayload is the escalation message delivered to clinicians.  Detail
// carries the bound framing for range violations ("above maximum of
// 140/min") or the interpretation for questionnaire alerts.
type AlertPayload struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Category  string    `json:"category"`
	Value     string    `json:"value"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
