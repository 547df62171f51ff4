// Package core implements the conversation state machine for post-operative
// self-assessments: per-patient sessions, input validation, questionnaire
// scoring, record finalization and conditional clinician escalation.  The
// chat transport, record store and alert transport are collaborators behind
// small interfaces.
package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"homecare-chatbot/internal/alert"
	"homecare-chatbot/internal/catalog"
	"homecare-chatbot/pkg"
)

// RecordWriter appends a finalized record to a patient's log.  It is called
// exactly once per completed assessment; a failure is surfaced to the log
// only and does not roll back the in-memory transition.
type RecordWriter interface {
	Append(ctx context.Context, rec *pkg.Record) error
}

// Alerter accepts escalation payloads fire-and-forget; no acknowledgement is
// awaited by the machine.
type Alerter interface {
	Notify(a pkg.AlertPayload)
}

// Machine is the transition dispatcher.  It is stateless itself; all mutable
// context lives in the Session passed to Handle, so one Machine serves every
// patient concurrently.
type Machine struct {
	records RecordWriter
	alerts  Alerter
	log     zerolog.Logger
}

// NewMachine wires the machine to its collaborators.
func NewMachine(records RecordWriter, alerts Alerter, log zerolog.Logger) *Machine {
	return &Machine{records: records, alerts: alerts, log: log}
}

// Handle applies one inbound event to the session and returns the response
// descriptor for the transport to render.  A nil response with nil error
// means the event was off-menu input and was deliberately dropped: no
// transition happened and nothing should be rendered.
func (m *Machine) Handle(ctx context.Context, sess *Session, ev pkg.Event) (*pkg.Response, error) {
	switch ev.Kind {
	case pkg.KindCommand:
		sess.reset()
		return menuResponse(PromptWelcome), nil
	case pkg.KindSelection:
		if ev.Payload == CodeBackToMain {
			sess.reset()
			return menuResponse(PromptMainMenu), nil
		}
		return m.handleSelection(ctx, sess, ev.Payload)
	case pkg.KindFreeText:
		return m.handleFreeText(ctx, sess, ev.Payload)
	default:
		return nil, fmt.Errorf("unknown event kind %q", ev.Kind)
	}
}

func (m *Machine) handleSelection(ctx context.Context, sess *Session, code string) (*pkg.Response, error) {
	switch sess.State {
	case StateMainMenu:
		return m.handleMainMenu(sess, code)
	case StateVitalSignsMenu:
		if !vitalSignsMenu.Contains(code) {
			return m.drop(sess, code)
		}
		spec, _ := catalog.Vital(code)
		sess.Scratch[keyVital] = code
		sess.State = StateEnterVitalValue
		return &pkg.Response{Text: vitalPrompt(spec), Options: []pkg.Option{optBackToMain}}, nil
	case StateEnterPainLocation:
		if !painLocationMenu.Contains(code) {
			return m.drop(sess, code)
		}
		sess.Scratch[keyPainLocation] = code
		sess.State = StateEnterPainType
		return &pkg.Response{
			Text:    fmt.Sprintf("Recorded pain location: %s\n%s", humanize(code), PromptPainType),
			Options: painTypeMenu(code).Options(),
		}, nil
	case StateEnterPainType:
		if !painTypeMenu(sess.Scratch[keyPainLocation]).Contains(code) {
			return m.drop(sess, code)
		}
		sess.Scratch[keyPainType] = code
		sess.State = StateEnterPainSymptoms
		return &pkg.Response{
			Text:    fmt.Sprintf("Recorded pain type: %s\n%s", humanize(code), PromptPainSymptoms),
			Options: []pkg.Option{optBackToMain},
		}, nil
	case StateRespiratorySubmenu:
		return m.handleProblemSubmenu(ctx, sess, respiratoryMenu, code)
	case StateGastrointestinalSubmenu:
		return m.handleProblemSubmenu(ctx, sess, gastrointestinalMenu, code)
	case StateSleepPatternSubmenu:
		return m.handleProblemSubmenu(ctx, sess, sleepPatternMenu, code)
	case StateSleepPositionSubmenu:
		return m.handleProblemSubmenu(ctx, sess, sleepPositionMenu, code)
	case StateProblemMenu:
		return m.handleProblemMenu(ctx, sess, code)
	case StateWoundSubmenu:
		return m.handleWound(ctx, sess, code)
	case StateEmotionalQuestionnaire:
		return m.handleAnswer(ctx, sess, catalog.BeckAnxiety, code)
	case StateQorQuestionnaire:
		return m.handleAnswer(ctx, sess, catalog.QoR15, code)
	default:
		// Selection arriving in a free-text state.
		return m.drop(sess, code)
	}
}

func (m *Machine) handleFreeText(ctx context.Context, sess *Session, text string) (*pkg.Response, error) {
	switch sess.State {
	case StateEnterVitalValue:
		return m.handleVitalValue(ctx, sess, text)
	case StateEnterPainScore:
		score, ok := ParsePainScore(text)
		if !ok {
			return &pkg.Response{Text: RetryPainScore, Options: []pkg.Option{optBackToMain}}, nil
		}
		sess.Scratch[keyPainScore] = strconv.Itoa(score)
		sess.State = StateEnterPainLocation
		return &pkg.Response{
			Text:    fmt.Sprintf("Recorded pain score: %d\nNow, where is your pain located in your body?", score),
			Options: painLocationMenu.Options(),
		}, nil
	case StateEnterPainSymptoms:
		return m.handlePainSymptoms(ctx, sess, text)
	case StateConsciousnessPrompt:
		return m.handleConsciousness(ctx, sess, text)
	case StateEnterProblemDescription:
		return m.handleProblemDescription(ctx, sess, text)
	default:
		// Free text arriving in a menu state is off-menu input.
		return m.drop(sess, text)
	}
}

// handleMainMenu routes the top-level menu.  Binary-outcome categories share
// the problem menu with the chosen parameter kept in scratch.
func (m *Machine) handleMainMenu(sess *Session, code string) (*pkg.Response, error) {
	if !mainMenu.Contains(code) {
		return m.drop(sess, code)
	}
	if prompt, ok := problemPrompts[code]; ok {
		sess.Scratch[keyParameter] = code
		sess.State = StateProblemMenu
		return &pkg.Response{Text: prompt, Options: problemMenu.Options()}, nil
	}
	switch code {
	case "vital_signs":
		sess.State = StateVitalSignsMenu
		return &pkg.Response{Text: PromptVitalMenu, Options: vitalSignsMenu.Options()}, nil
	case "pain":
		sess.State = StateEnterPainScore
		return &pkg.Response{Text: PromptPainScore, Options: []pkg.Option{optBackToMain}}, nil
	case "respiratory":
		sess.Scratch[keyParameter] = code
		sess.State = StateRespiratorySubmenu
		return &pkg.Response{Text: PromptRespiratory, Options: respiratoryMenu.Options()}, nil
	case "gastrointestinal":
		sess.Scratch[keyParameter] = code
		sess.State = StateGastrointestinalSubmenu
		return &pkg.Response{Text: PromptGastrointestinal, Options: gastrointestinalMenu.Options()}, nil
	case "consciousness":
		sess.State = StateConsciousnessPrompt
		return &pkg.Response{Text: PromptConsciousness, Options: []pkg.Option{optBackToMain}}, nil
	case "emotional_status":
		sess.State = StateEmotionalQuestionnaire
		sess.Questionnaire = &QuestionnaireProgress{StartedAt: time.Now().UTC()}
		return beckQuestion(0), nil
	case "wound_healing":
		sess.State = StateWoundSubmenu
		return &pkg.Response{Text: PromptWound, Options: woundMenu.Options()}, nil
	case "sleep_pattern":
		sess.Scratch[keyParameter] = code
		sess.State = StateSleepPatternSubmenu
		return &pkg.Response{Text: PromptSleepPattern, Options: sleepPatternMenu.Options()}, nil
	case "sleep_position":
		sess.Scratch[keyParameter] = code
		sess.State = StateSleepPositionSubmenu
		return &pkg.Response{Text: PromptSleepPosition, Options: sleepPositionMenu.Options()}, nil
	case "postoperative_quality_of_recovery":
		sess.State = StateQorQuestionnaire
		sess.Questionnaire = &QuestionnaireProgress{StartedAt: time.Now().UTC()}
		return qorQuestion(0), nil
	}
	return m.drop(sess, code)
}

func (m *Machine) handleVitalValue(ctx context.Context, sess *Session, text string) (*pkg.Response, error) {
	value, ok := ParseVitalValue(text)
	if !ok {
		return &pkg.Response{Text: RetryVitalValue, Options: []pkg.Option{optBackToMain}}, nil
	}
	spec, ok := catalog.Vital(sess.Scratch[keyVital])
	if !ok {
		// Scratch lost its parameter; nothing sane to record.
		sess.reset()
		return menuResponse(PromptMainMenu), nil
	}
	payload, fires := alert.VitalBreach(sess.PatientID, spec, value)
	var alertp *pkg.AlertPayload
	confirm := fmt.Sprintf("✅ Recorded %s: %g%s", humanize(spec.Name), value, spec.Unit)
	if fires {
		alertp = &payload
		confirm += fmt.Sprintf("\n⚠️ %s\nA doctor has been notified.", payload.Detail)
	}
	m.finalize(ctx, sess, pkg.RecordVitalSign, map[string]interface{}{
		"parameter":    spec.Name,
		"value":        value,
		"unit":         spec.Unit,
		"out_of_range": fires,
	}, alertp)
	return menuResponse(confirm), nil
}

func (m *Machine) handlePainSymptoms(ctx context.Context, sess *Session, symptoms string) (*pkg.Response, error) {
	score, _ := strconv.Atoi(sess.Scratch[keyPainScore])
	location := sess.Scratch[keyPainLocation]
	painType := sess.Scratch[keyPainType]
	m.finalize(ctx, sess, pkg.RecordPain, map[string]interface{}{
		"score":     score,
		"location":  location,
		"pain_type": painType,
		"symptoms":  symptoms,
	}, nil)
	text := fmt.Sprintf("✅ Pain assessment completed:\nLocation: %s\nType: %s\nSymptoms: %s",
		humanize(location), humanize(painType), symptoms)
	return menuResponse(text), nil
}

func (m *Machine) handleConsciousness(ctx context.Context, sess *Session, text string) (*pkg.Response, error) {
	lowered := strings.ToLower(text)
	var alertp *pkg.AlertPayload
	if payload, fires := alert.ConsciousnessWarning(sess.PatientID, lowered); fires {
		alertp = &payload
	}
	m.finalize(ctx, sess, pkg.RecordConscious, map[string]interface{}{
		"description": lowered,
	}, alertp)
	return menuResponse(ConfirmConsciousness), nil
}

// handleProblemSubmenu covers the respiratory, gastrointestinal and sleep
// submenus: every option describes a problem, so each selection finalizes a
// record under the selected parameter and escalates.
func (m *Machine) handleProblemSubmenu(ctx context.Context, sess *Session, menu Menu, code string) (*pkg.Response, error) {
	if !menu.Contains(code) {
		return m.drop(sess, code)
	}
	payload := alert.ProblemReport(sess.PatientID, sess.Scratch[keyParameter], code)
	m.finalize(ctx, sess, sess.Scratch[keyParameter], map[string]interface{}{
		"description": code,
	}, &payload)
	return menuResponse(ConfirmProblem), nil
}

func (m *Machine) handleProblemMenu(ctx context.Context, sess *Session, code string) (*pkg.Response, error) {
	if !problemMenu.Contains(code) {
		return m.drop(sess, code)
	}
	parameter := sess.Scratch[keyParameter]
	if code == "no_problem" {
		m.finalize(ctx, sess, parameter, map[string]interface{}{
			"status": "no_problem",
		}, nil)
		return menuResponse(fmt.Sprintf("✅ No problem with %s, Main Menu:", humanize(parameter))), nil
	}
	sess.State = StateEnterProblemDescription
	return &pkg.Response{Text: PromptProblemDescription, Options: []pkg.Option{optBackToMain}}, nil
}

func (m *Machine) handleProblemDescription(ctx context.Context, sess *Session, text string) (*pkg.Response, error) {
	payload := alert.ProblemReport(sess.PatientID, sess.Scratch[keyParameter], text)
	m.finalize(ctx, sess, sess.Scratch[keyParameter], map[string]interface{}{
		"description": text,
	}, &payload)
	return menuResponse(ConfirmProblem), nil
}

func (m *Machine) handleWound(ctx context.Context, sess *Session, code string) (*pkg.Response, error) {
	if !woundMenu.Contains(code) {
		return m.drop(sess, code)
	}
	var alertp *pkg.AlertPayload
	if payload, fires := alert.WoundWarning(sess.PatientID, code); fires {
		alertp = &payload
	}
	m.finalize(ctx, sess, pkg.RecordWound, map[string]interface{}{
		"description": code,
	}, alertp)
	return menuResponse(ConfirmWound), nil
}

// handleAnswer advances a questionnaire one answer at a time and finalizes
// on the last question.  No score exists until every answer has arrived.
func (m *Machine) handleAnswer(ctx context.Context, sess *Session, spec catalog.QuestionnaireSpec, code string) (*pkg.Response, error) {
	q := sess.Questionnaire
	if q == nil {
		sess.reset()
		return menuResponse(PromptMainMenu), nil
	}
	answer, ok := ParseAnswer(spec, code)
	if !ok {
		return m.drop(sess, code)
	}
	q.Answers = append(q.Answers, answer)
	q.Index++
	if q.Index < spec.Len() {
		if sess.State == StateQorQuestionnaire {
			return qorQuestion(q.Index), nil
		}
		return beckQuestion(q.Index), nil
	}

	duration := time.Since(q.StartedAt).Seconds()
	if sess.State == StateQorQuestionnaire {
		res := ScoreRecovery(q.Answers)
		var alertp *pkg.AlertPayload
		if payload, fires := alert.RecoveryConcern(sess.PatientID, res.Total, res.Interpretation); fires {
			alertp = &payload
		}
		m.finalize(ctx, sess, pkg.RecordQoR, map[string]interface{}{
			"assessment":       spec.Name,
			"score":            res.Total,
			"interpretation":   res.Interpretation,
			"answers":          q.Answers,
			"duration_seconds": duration,
		}, alertp)
		text := fmt.Sprintf("✅ Postoperative Recovery Assessment Completed\n\n"+
			"Total QoR-15 score: %d/150\nInterpretation: %s\n\nScores:\n"+
			"- Physical comfort: %.1f/10\n- Emotional state: %.1f/10\n- Pain control: %.1f/10",
			res.Total, res.Interpretation, res.PhysicalComfort, res.EmotionalState, res.PainControl)
		return menuResponse(text), nil
	}

	res := ScoreAnxiety(q.Answers)
	var alertp *pkg.AlertPayload
	if payload, fires := alert.AnxietyConcern(sess.PatientID, res.Total, res.Interpretation); fires {
		alertp = &payload
	}
	m.finalize(ctx, sess, pkg.RecordEmotional, map[string]interface{}{
		"assessment":       spec.Name,
		"score":            res.Total,
		"interpretation":   res.Interpretation,
		"answers":          q.Answers,
		"duration_seconds": duration,
	}, alertp)
	text := fmt.Sprintf("✅ Emotional assessment completed\n\nTotal score: %d\nInterpretation: %s",
		res.Total, res.Interpretation)
	return menuResponse(text), nil
}

// finalize creates the immutable record, hands it to the writer
// synchronously, fires the alert if one was decided, and idles the session
// back at the main menu.  An append failure is reported to the log only; the
// patient-facing confirmation proceeds so distress is not compounded by a
// write that can be retried out-of-band.
func (m *Machine) finalize(ctx context.Context, sess *Session, recType string, payload map[string]interface{}, alertp *pkg.AlertPayload) {
	rec := &pkg.Record{
		ID:        uuid.NewString(),
		PatientID: sess.PatientID,
		Type:      recType,
		Payload:   payload,
		Flagged:   alertp != nil,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.records.Append(ctx, rec); err != nil {
		m.log.Error().Err(err).
			Str("patient_id", sess.PatientID).
			Str("record_type", recType).
			Msg("record append failed")
	}
	if alertp != nil {
		m.alerts.Notify(*alertp)
	}
	sess.reset()
}

// drop is the explicit off-menu outcome: no transition, no response.
func (m *Machine) drop(sess *Session, input string) (*pkg.Response, error) {
	m.log.Debug().
		Str("patient_id", sess.PatientID).
		Str("state", string(sess.State)).
		Str("input", input).
		Msg("off-menu input dropped")
	return nil, nil
}

func menuResponse(text string) *pkg.Response {
	return &pkg.Response{Text: text, Options: mainMenu.Options()}
}

func beckQuestion(idx int) *pkg.Response {
	text := catalog.BeckAnxiety.Questions[idx] + "\n" + BeckQuestionSuffix
	if idx == 0 {
		text = catalog.BeckAnxiety.Title + "\n\n" + text
	}
	return &pkg.Response{Text: text, Options: beckAnswerOptions()}
}

func qorQuestion(idx int) *pkg.Response {
	scale := QorRecoveryScale
	// Questions 11 and 12 are pain items and use the pain scale wording.
	if idx == 10 || idx == 11 {
		scale = QorPainScale
	}
	text := fmt.Sprintf("%s\n\n%s\n\n%s", catalog.QoR15.Title, scale, catalog.QoR15.Questions[idx])
	return &pkg.Response{Text: text, Options: qorAnswerOptions()}
}

func humanize(code string) string {
	return strings.ReplaceAll(code, "_", " ")
}
