package core

import (
	"fmt"
	"strconv"

	"homecare-chatbot/internal/catalog"
	"homecare-chatbot/pkg"
)

// CodeBackToMain is the canonical "back to main" selection accepted in every
// state.  It discards scratch and re-emits the main menu.
const CodeBackToMain = "back_to_main"

var optBackToMain = pkg.Option{Label: "◀ Back to Main Menu", Code: CodeBackToMain}

// Menu is a closed set of selection options.  Selection codes outside the
// set are off-menu and dropped by the machine.
type Menu struct {
	options []pkg.Option
	root    bool
}

// Options returns the options in presentation order.  Every menu except the
// main menu itself ends with the back-to-main option.
func (m Menu) Options() []pkg.Option {
	out := make([]pkg.Option, len(m.options), len(m.options)+1)
	copy(out, m.options)
	if m.root {
		return out
	}
	return append(out, optBackToMain)
}

// Contains reports whether code is a valid selection on this menu.
// Back-to-main is handled globally and is not part of any menu's set.
func (m Menu) Contains(code string) bool {
	for _, o := range m.options {
		if o.Code == code {
			return true
		}
	}
	return false
}

var mainMenu = Menu{root: true, options: []pkg.Option{
	{Label: "1. Vital Signs", Code: "vital_signs"},
	{Label: "2. Pain Assessment", Code: "pain"},
	{Label: "3. Respiratory System", Code: "respiratory"},
	{Label: "4. Gastrointestinal", Code: "gastrointestinal"},
	{Label: "5. Consciousness", Code: "consciousness"},
	{Label: "6. Emotional Status", Code: "emotional_status"},
	{Label: "7. Medication Compliance", Code: "medication_compliance"},
	{Label: "8. Wound Healing", Code: "wound_healing"},
	{Label: "9. Post-op Adaptation", Code: "postop_adaptation"},
	{Label: "10. Stocking Socks Use", Code: "stocking_socks"},
	{Label: "11. Diet Compliance", Code: "diet_compliance"},
	{Label: "12. Activity Adaptation", Code: "activity_adaptation"},
	{Label: "13. Daily Mobilization", Code: "daily_mobilization"},
	{Label: "14. Social Life Adaptation", Code: "social_adaptation"},
	{Label: "15. Shower", Code: "shower"},
	{Label: "16. Return to Work", Code: "return_to_work"},
	{Label: "17. Driving", Code: "driving"},
	{Label: "18. Sleep Pattern", Code: "sleep_pattern"},
	{Label: "19. Sleeping Position", Code: "sleep_position"},
	{Label: "20. Postoperative Quality of Recovery", Code: "postoperative_quality_of_recovery"},
}}

var vitalSignsMenu = Menu{options: []pkg.Option{
	{Label: "Heart Rate / Cardiac Rhythm", Code: "heart_rate"},
	{Label: "Systolic Blood Pressure", Code: "systolic_blood_pressure"},
	{Label: "Diastolic Blood Pressure", Code: "diastolic_blood_pressure"},
	{Label: "Temperature / Fever", Code: "temperature"},
	{Label: "Respiration Rate", Code: "respiration_rate"},
}}

var painLocationMenu = Menu{options: []pkg.Option{
	{Label: "Surgery Site", Code: "surgery_site"},
	{Label: "Outside Surgery Site", Code: "outside_surgery_site"},
	{Label: "Chest", Code: "chest"},
	{Label: "Leg", Code: "leg"},
	{Label: "Anterior Chest", Code: "anterior_chest"},
	{Label: "Arm", Code: "arm"},
	{Label: "Back", Code: "back"},
}}

var anteriorChestPainMenu = Menu{options: []pkg.Option{
	{Label: "Fixed/Continuous", Code: "fixed_continuous"},
	{Label: "Stabbing", Code: "stabbing"},
	{Label: "Pulsating", Code: "pulsating"},
	{Label: "Unlike the previous ones", Code: "unlike_previous_ones"},
}}

var backPainMenu = Menu{options: []pkg.Option{
	{Label: "Fixed/Continuous", Code: "fixed_continuous"},
	{Label: "Stabbing", Code: "stabbing"},
	{Label: "Related to movement", Code: "related_to_movement"},
}}

var genericPainMenu = Menu{options: []pkg.Option{
	{Label: "Enter pain type", Code: "enter_pain_type"},
}}

// painTypeMenu picks the pain-type option set for a chosen location.  The
// anterior-chest and back locations get their own variants; every other
// location gets the generic menu.
func painTypeMenu(location string) Menu {
	switch location {
	case "anterior_chest":
		return anteriorChestPainMenu
	case "back":
		return backPainMenu
	default:
		return genericPainMenu
	}
}

var respiratoryMenu = Menu{options: []pkg.Option{
	{Label: "Superficial breathing", Code: "superficial_breathing"},
	{Label: "More than 30 breaths/1 min", Code: "more_30_breaths"},
	{Label: "Can't breathe", Code: "cannot_breathe"},
	{Label: "Accompanied by impaired consciousness", Code: "impaired_consciousness"},
}}

var gastrointestinalMenu = Menu{options: []pkg.Option{
	{Label: "Constipation", Code: "constipation"},
	{Label: "Diarrhea", Code: "diarrhea"},
	{Label: "Accompanied by (< 70) systolic blood pressure", Code: "low_systolic_pressure"},
	{Label: "Fever (>37.5)", Code: "fever"},
	{Label: "No appetite", Code: "no_appetite"},
	{Label: "Too weak", Code: "too_weak"},
}}

var problemMenu = Menu{options: []pkg.Option{
	{Label: "No problem", Code: "no_problem"},
	{Label: "There is a problem", Code: "problem"},
}}

var woundMenu = Menu{options: []pkg.Option{
	{Label: "Wound drainage", Code: "wound_drainage"},
	{Label: "Increased redness at the wound site", Code: "increased_redness"},
	{Label: "Color changed at the wound site", Code: "color_changed"},
	{Label: "Fever", Code: "fever"},
}}

var sleepPatternMenu = Menu{options: []pkg.Option{
	{Label: "Falling asleep", Code: "falling_asleep"},
	{Label: "Shorter sleep time", Code: "short_time"},
	{Label: "Feeling tired when waking up", Code: "feeling_tired"},
}}

var sleepPositionMenu = Menu{options: []pkg.Option{
	{Label: "On the back", Code: "on_back"},
	{Label: "Side sleeping", Code: "side"},
	{Label: "Use of two pillows", Code: "two_pillows"},
	{Label: "Orthopnea", Code: "orthopnea"},
}}

// problemPrompts maps each binary-outcome category on the main menu to its
// opening question.
var problemPrompts = map[string]string{
	"medication_compliance": "Have you taken all medications as prescribed today?",
	"postop_adaptation":     "How are you adapting to post-operative requirements?\n(Please describe if there are any problems)",
	"stocking_socks":        "Have you been using your compression stockings as recommended?\n(Please describe usage duration if there are any problems)",
	"diet_compliance":       "How is your diet compliance?\n(Please describe what you've eaten and any issues)",
	"activity_adaptation":   "How are you adapting to recommended activity levels?\n(Describe your activities and any difficulties)",
	"daily_mobilization":    "Describe your daily mobility:\n(How often do you get up and move around?)",
	"social_adaptation":     "How are you adapting socially since your procedure?\n(Describe any social activities or isolation)",
	"shower":                "Have you been able to shower independently?\n(Describe any difficulties)",
	"return_to_work":        "What is your status regarding returning to work?\n(Describe any plans or limitations)",
	"driving":               "Have you been driving your car normally?\n(Please describe if there are any problems)",
}

// beckAnswerOptions is the 0-3 response scale for the anxiety inventory.
func beckAnswerOptions() []pkg.Option {
	return []pkg.Option{
		{Label: "Not at all (0)", Code: "0"},
		{Label: "Mildly (1)", Code: "1"},
		{Label: "Moderately (2)", Code: "2"},
		{Label: "Severely (3)", Code: "3"},
		optBackToMain,
	}
}

// qorAnswerOptions is the 0-10 response scale for the recovery instrument.
func qorAnswerOptions() []pkg.Option {
	opts := make([]pkg.Option, 0, 12)
	opts = append(opts, pkg.Option{Label: "0 = none of the time (Poor)", Code: "0"})
	for i := 1; i <= 9; i++ {
		opts = append(opts, pkg.Option{Label: strconv.Itoa(i), Code: strconv.Itoa(i)})
	}
	opts = append(opts, pkg.Option{Label: "10 = all of the time (Excellent)", Code: "10"})
	return append(opts, optBackToMain)
}

// vitalPrompt builds the value-entry prompt for a selected vital sign,
// including its safe range when one is declared.
func vitalPrompt(spec catalog.ParameterSpec) string {
	return fmt.Sprintf("Please enter your %s%s:", humanize(spec.Name), spec.RangeHint())
}
