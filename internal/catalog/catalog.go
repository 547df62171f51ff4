// Package catalog holds the static clinical definitions the conversation
// core runs against: vital-sign safe ranges and the two scored
// questionnaires (Beck Anxiety Inventory, QoR-15).  Everything here is
// loaded once and read-only for the process lifetime, so concurrent
// sessions can share it without locking.
package catalog

import "fmt"

// ParameterSpec describes one vital sign.  Min and Max are optional; a nil
// bound means that side is unchecked.
type ParameterSpec struct {
	Name string
	Min  *float64
	Max  *float64
	Unit string
}

// RangeHint renders the safe range for a prompt, e.g. "(normal range:
// 50-140/min)" or "(max: 37.5°C)".  Empty when no bound is declared.
func (p ParameterSpec) RangeHint() string {
	switch {
	case p.Min != nil && p.Max != nil:
		return fmt.Sprintf(" (normal range: %g-%g%s)", *p.Min, *p.Max, p.Unit)
	case p.Max != nil:
		return fmt.Sprintf(" (max: %g%s)", *p.Max, p.Unit)
	case p.Min != nil:
		return fmt.Sprintf(" (min: %g%s)", *p.Min, p.Unit)
	}
	return ""
}

func f(v float64) *float64 { return &v }

var parameters = map[string]ParameterSpec{
	"heart_rate":               {Name: "heart_rate", Min: f(50), Max: f(140), Unit: "/min"},
	"systolic_blood_pressure":  {Name: "systolic_blood_pressure", Min: f(60), Max: f(190), Unit: "mmHg"},
	"diastolic_blood_pressure": {Name: "diastolic_blood_pressure", Min: f(40), Max: f(100), Unit: "mmHg"},
	"respiration_rate":         {Name: "respiration_rate", Max: f(30), Unit: "/min"},
	"temperature":              {Name: "temperature", Max: f(37.5), Unit: "°C"},
}

// Vital looks up the safe-range spec for a vital-sign code.
func Vital(name string) (ParameterSpec, bool) {
	p, ok := parameters[name]
	return p, ok
}

// QuestionnaireSpec is a fixed multi-question instrument.  Answers are
// integers in [AnswerMin, AnswerMax]; scoring lives in the core's scoring
// engine to keep this package free of logic.
type QuestionnaireSpec struct {
	Name      string
	Title     string
	Questions []string
	AnswerMin int
	AnswerMax int
}

// Len returns the number of questions.
func (q QuestionnaireSpec) Len() int { return len(q.Questions) }

// BeckAnxiety is the 21-item Beck Anxiety Inventory, answered 0-3.
var BeckAnxiety = QuestionnaireSpec{
	Name:  "Beck Anxiety Inventory",
	Title: "Emotional Status Assessment (Beck Anxiety Inventory)",
	Questions: []string{
		"1. Numbness or tingling",
		"2. Feeling hot",
		"3. Wobbliness in legs",
		"4. Unable to relax",
		"5. Fear of worst happening",
		"6. Dizzy or lightheaded",
		"7. Heart pounding/racing",
		"8. Unsteady",
		"9. Terrified or afraid",
		"10. Nervous",
		"11. Feeling of choking",
		"12. Hands trembling",
		"13. Shaky/unsteady",
		"14. Fear of losing control",
		"15. Difficulty breathing",
		"16. Fear of dying",
		"17. Scared",
		"18. Indigestion",
		"19. Faint/lightheaded",
		"20. Face flushed",
		"21. Hot/cold sweats",
	},
	AnswerMin: 0,
	AnswerMax: 3,
}

// QoR15 is the 15-item Quality of Recovery questionnaire, answered 0-10.
// Items 11-15 describe negative dimensions; the scoring engine inverts them.
var QoR15 = QuestionnaireSpec{
	Name:  "QoR-15",
	Title: "Postoperative Quality of Recovery (QoR-15)",
	Questions: []string{
		"1. Able to breathe easily",
		"2. Been able to enjoy food",
		"3. Feeling rested",
		"4. Have had a good sleep",
		"5. Able to look after personal toilet and hygiene unaided",
		"6. Able to communicate with family or friends",
		"7. Getting support from hospital doctors and nurses",
		"8. Able to return to work or usual home activities",
		"9. Feeling comfortable and in control",
		"10. Having a feeling of general well-being",
		"11. Having moderate pain",
		"12. Severe pain",
		"13. Nausea or vomiting",
		"14. Feeling worried or anxious",
		"15. Feeling sad or depressed",
	},
	AnswerMin: 0,
	AnswerMax: 10,
}
