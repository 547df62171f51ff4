package core

import "time"

// State identifies where a patient currently is in the guided assessment
// flow.  The conversation never terminates; completed assessments return to
// the main menu and idle there.
type State string

const (
	StateMainMenu                State = "MAIN_MENU"
	StateVitalSignsMenu          State = "VITAL_SIGNS_MENU"
	StateEnterVitalValue         State = "ENTER_VITAL_VALUE"
	StateEnterPainScore          State = "ENTER_PAIN_SCORE"
	StateEnterPainLocation       State = "ENTER_PAIN_LOCATION"
	StateEnterPainType           State = "ENTER_PAIN_TYPE"
	StateEnterPainSymptoms       State = "ENTER_PAIN_SYMPTOMS"
	StateRespiratorySubmenu      State = "RESPIRATORY_SUBMENU"
	StateGastrointestinalSubmenu State = "GASTROINTESTINAL_SUBMENU"
	StateConsciousnessPrompt     State = "CONSCIOUSNESS_PROMPT"
	StateEmotionalQuestionnaire  State = "EMOTIONAL_QUESTIONNAIRE"
	StateProblemMenu             State = "PROBLEM_MENU"
	StateEnterProblemDescription State = "ENTER_PROBLEM_DESCRIPTION"
	StateWoundSubmenu            State = "WOUND_SUBMENU"
	StateSleepPatternSubmenu     State = "SLEEP_PATTERN_SUBMENU"
	StateSleepPositionSubmenu    State = "SLEEP_POSITION_SUBMENU"
	StateQorQuestionnaire        State = "QOR_QUESTIONNAIRE"
)

// Scratch keys.  Scratch holds exactly what the in-progress assessment
// needs and is cleared whenever a record is finalized or the session
// returns to the main menu.
const (
	keyVital        = "current_vital"
	keyParameter    = "current_parameter"
	keyPainScore    = "pain_score"
	keyPainLocation = "pain_location"
	keyPainType     = "pain_type"
)

// QuestionnaireProgress tracks a multi-question instrument in flight.
type QuestionnaireProgress struct {
	Index     int
	Answers   []int
	StartedAt time.Time
}

// Session is the per-patient conversational context.  It is owned by the
// dispatching store for the duration of one event and must never be shared
// across patients.
type Session struct {
	PatientID     string
	State         State
	Scratch       map[string]string
	Questionnaire *QuestionnaireProgress
}

// NewSession creates an idle session at the main menu.
func NewSession(patientID string) *Session {
	return &Session{
		PatientID: patientID,
		State:     StateMainMenu,
		Scratch:   make(map[string]string),
	}
}

// reset discards all in-progress assessment data and returns the session to
// the main menu.
func (s *Session) reset() {
	s.State = StateMainMenu
	s.Scratch = make(map[string]string)
	s.Questionnaire = nil
}
