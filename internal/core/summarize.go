package core

import (
	"context"
	"fmt"
	"strings"

	"homecare-chatbot/internal/llm"
	"homecare-chatbot/pkg"
)

// Summarizer condenses a patient's recent record log into a short
// clinician-facing summary.  It reads finalized records only and never
// participates in the conversation flow.
type Summarizer struct {
	LLM llm.Client
}

// NewSummarizer constructs a summariser.
func NewSummarizer(client llm.Client) *Summarizer {
	return &Summarizer{LLM: client}
}

// Summarize renders the record log as a compact listing and asks the model
// for a summary.  On LLM failure a deterministic fallback summary is
// returned alongside the error so callers can still show something useful.
func (s *Summarizer) Summarize(ctx context.Context, records []pkg.Record) (string, error) {
	if len(records) == 0 {
		return "No assessments recorded yet.", nil
	}
	resp, err := s.LLM.Summarize(ctx, SummaryInstruction, renderLog(records))
	if err != nil {
		return fallbackSummary(records), err
	}
	return resp, nil
}

// renderLog flattens records into one line each: timestamp, category, the
// payload fields, and a flag marker.
func renderLog(records []pkg.Record) string {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "%s %s", r.CreatedAt.Format("2006-01-02 15:04"), r.Type)
		if r.Flagged {
			b.WriteString(" [FLAGGED]")
		}
		for k, v := range r.Payload {
			fmt.Fprintf(&b, " %s=%v", k, v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func fallbackSummary(records []pkg.Record) string {
	flagged := 0
	for _, r := range records {
		if r.Flagged {
			flagged++
		}
	}
	return fmt.Sprintf("Summary unavailable. %d assessments recorded, %d flagged for attention.",
		len(records), flagged)
}
