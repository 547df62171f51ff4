package core

// prompts.go collects the patient-facing texts used by the state machine and
// the clinician summary instruction.  Keeping them in one place makes the
// wording easy to tweak without touching transition logic.

const (
	// PromptWelcome opens a conversation after the start command.
	PromptWelcome = "🏥 Home Care Monitoring\nPlease select a parameter to report:"

	// PromptMainMenu re-shows the menu after back-to-main or a completed item.
	PromptMainMenu = "Main Menu:"

	PromptVitalMenu = "Select vital sign to report:"

	PromptPainScore = "What is your pain score numerical rating (0 - 10)?\n" +
		"(0 = No pain, 5 = Moderate pain, 10 = Worst possible pain)"

	RetryPainScore = "⚠️ Please enter a valid pain score between 0 and 10:"

	RetryVitalValue = "Please enter a valid number. Try again:"

	PromptPainType = "Now please describe the type of pain:"

	PromptPainSymptoms = "Now, please describe any symptoms accompanying the pain,\n" +
		"or the situation when the pain happened:\n" +
		"- Shortness of breath\n" +
		"- Numbness\n" +
		"Example: 'some shortness of breath'\n" +
		"Example: 'when I walk'"

	PromptRespiratory = "Do you breathe well or is there a problem?"

	PromptGastrointestinal = "Do you eat well or is there a problem?"

	PromptConsciousness = "Describe your alertness level:\n" +
		"(e.g., fully alert, drowsy, confused)\n" +
		"OR are you oriented to time, place, and person?\n" +
		"Reply with okay (open conscious), confused or unresponsive"

	PromptWound = "Choose any of the following issues related to wound healing:"

	PromptSleepPattern = "Do you sleep normally or is there a problem?"

	PromptSleepPosition = "What position do you typically sleep in?"

	PromptProblemDescription = "Now, please describe any difficulties or the problem."

	BeckQuestionSuffix = "How much has this bothered you in the past week?"

	QorRecoveryScale = "Please rate your recovery (0 = worst, 10 = best)"
	QorPainScale     = "Please rate your pain (0 = no pain, 10 = worst imaginable)"

	ConfirmConsciousness = "✅ Consciousness assessment recorded"
	ConfirmProblem       = "✅ Problem recorded"
	ConfirmWound         = "✅ Wound assessment recorded"

	// SummaryInstruction guides the clinician-summary model over a patient's
	// record log.  Output must stay short and must not invent findings.
	SummaryInstruction = "You are summarising a post-operative patient's self-reported " +
		"home-care assessments for a clinician. List the notable findings, highlight " +
		"any flagged entries (out-of-range vitals, warning signs, concerning " +
		"questionnaire scores), and keep the summary under 120 words. Do not invent " +
		"information that is not in the log."
)
