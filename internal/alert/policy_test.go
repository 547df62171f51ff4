package alert

import (
	"strings"
	"testing"

	"homecare-chatbot/internal/catalog"
)

func TestOutOfRange(t *testing.T) {
	hr, _ := catalog.Vital("heart_rate")
	cases := []struct {
		value  float64
		breach bool
		detail string
	}{
		{49, true, "below minimum of 50/min"},
		{50, false, ""},
		{140, false, ""},
		{141, true, "above maximum of 140/min"},
	}
	for _, tc := range cases {
		breach, detail := OutOfRange(hr, tc.value)
		if breach != tc.breach || detail != tc.detail {
			t.Errorf("OutOfRange(hr, %g) = (%v, %q), expected (%v, %q)",
				tc.value, breach, detail, tc.breach, tc.detail)
		}
	}
}

func TestOutOfRangeUncheckedSide(t *testing.T) {
	temp, _ := catalog.Vital("temperature")
	// No lower bound: arbitrarily low values pass.
	if breach, _ := OutOfRange(temp, -10); breach {
		t.Error("temperature has no minimum, -10 must pass")
	}
	if breach, detail := OutOfRange(temp, 38.2); !breach || detail != "above maximum of 37.5°C" {
		t.Errorf("expected max breach, got (%v, %q)", breach, detail)
	}
}

func TestVitalBreach(t *testing.T) {
	hr, _ := catalog.Vital("heart_rate")
	payload, fires := VitalBreach("p1", hr, 160)
	if !fires {
		t.Fatal("expected breach at 160")
	}
	if payload.PatientID != "p1" || payload.Category != "heart_rate" {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if payload.Value != "160/min" {
		t.Errorf("expected value with unit, got %q", payload.Value)
	}
	if payload.ID == "" || payload.CreatedAt.IsZero() {
		t.Error("expected payload identity and timestamp")
	}
	if _, fires := VitalBreach("p1", hr, 80); fires {
		t.Error("in-range value must not fire")
	}
}

func TestConsciousnessWarning(t *testing.T) {
	cases := []struct {
		text  string
		fires bool
	}{
		{"okay, fully alert", false},
		{"a bit CONFUSED this morning", true},
		{"feeling disoriented", true},
		{"found him unresponsive", true},
		{"drowsy but oriented", false},
	}
	for _, tc := range cases {
		payload, fires := ConsciousnessWarning("p1", tc.text)
		if fires != tc.fires {
			t.Errorf("%q: expected fires=%v", tc.text, tc.fires)
		}
		if fires && !strings.HasPrefix(payload.Detail, "warning sign: ") {
			t.Errorf("%q: unexpected detail %q", tc.text, payload.Detail)
		}
	}
}

func TestWoundWarning(t *testing.T) {
	for _, code := range []string{"increased_redness", "color_changed", "fever"} {
		if _, fires := WoundWarning("p1", code); !fires {
			t.Errorf("expected %s to fire", code)
		}
	}
	if _, fires := WoundWarning("p1", "wound_drainage"); fires {
		t.Error("wound_drainage must not fire")
	}
}

func TestAnxietyConcernThreshold(t *testing.T) {
	if _, fires := AnxietyConcern("p1", 15, "Mild anxiety"); fires {
		t.Error("score 15 must not fire")
	}
	payload, fires := AnxietyConcern("p1", 16, "Moderate anxiety")
	if !fires {
		t.Fatal("score 16 must fire")
	}
	if payload.Value != "Score: 16 (Moderate anxiety)" {
		t.Errorf("unexpected value %q", payload.Value)
	}
}

func TestRecoveryConcernThreshold(t *testing.T) {
	if _, fires := RecoveryConcern("p1", 81, "Good recovery"); fires {
		t.Error("score 81 must not fire")
	}
	payload, fires := RecoveryConcern("p1", 80, "Moderate recovery")
	if !fires {
		t.Fatal("score 80 must fire")
	}
	if payload.Category != "postop_recovery" {
		t.Errorf("unexpected category %q", payload.Category)
	}
}

func TestProblemReportAlwaysFires(t *testing.T) {
	payload := ProblemReport("p1", "driving", "no issues at all")
	if payload.Category != "driving" || payload.Value != "no issues at all" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestMessage(t *testing.T) {
	hr, _ := catalog.Vital("heart_rate")
	payload, _ := VitalBreach("p1", hr, 160)
	msg := Message(payload)
	if !strings.HasPrefix(msg, "🚨 PATIENT ALERT") {
		t.Errorf("unexpected prefix: %q", msg)
	}
	if !strings.Contains(msg, "Patient ID: p1") ||
		!strings.Contains(msg, "Parameter: heart rate") ||
		!strings.Contains(msg, "Value: 160/min (above maximum of 140/min)") {
		t.Errorf("unexpected message: %q", msg)
	}

	// Detail-free payloads omit the parenthetical.
	plain := Message(ProblemReport("p1", "driving", "cannot drive yet"))
	if strings.Contains(plain, "(") {
		t.Errorf("expected no parenthetical, got %q", plain)
	}
}
