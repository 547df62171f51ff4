package catalog

import "testing"

func TestVitalLookup(t *testing.T) {
	spec, ok := Vital("heart_rate")
	if !ok {
		t.Fatal("expected heart_rate to exist")
	}
	if *spec.Min != 50 || *spec.Max != 140 || spec.Unit != "/min" {
		t.Errorf("unexpected heart_rate spec: %+v", spec)
	}
	if _, ok := Vital("blood_sugar"); ok {
		t.Error("expected unknown parameter to miss")
	}
}

func TestOneSidedBounds(t *testing.T) {
	temp, _ := Vital("temperature")
	if temp.Min != nil {
		t.Error("temperature must have no lower bound")
	}
	if temp.Max == nil || *temp.Max != 37.5 {
		t.Errorf("unexpected temperature max: %v", temp.Max)
	}
	resp, _ := Vital("respiration_rate")
	if resp.Min != nil || resp.Max == nil || *resp.Max != 30 {
		t.Errorf("unexpected respiration_rate bounds: %+v", resp)
	}
}

func TestRangeHint(t *testing.T) {
	hr, _ := Vital("heart_rate")
	if got := hr.RangeHint(); got != " (normal range: 50-140/min)" {
		t.Errorf("two-sided hint: got %q", got)
	}
	temp, _ := Vital("temperature")
	if got := temp.RangeHint(); got != " (max: 37.5°C)" {
		t.Errorf("max-only hint: got %q", got)
	}
	minOnly := ParameterSpec{Name: "x", Min: f(5), Unit: "u"}
	if got := minOnly.RangeHint(); got != " (min: 5u)" {
		t.Errorf("min-only hint: got %q", got)
	}
	unbounded := ParameterSpec{Name: "x"}
	if got := unbounded.RangeHint(); got != "" {
		t.Errorf("unbounded hint: got %q", got)
	}
}

func TestQuestionnaireShapes(t *testing.T) {
	if BeckAnxiety.Len() != 21 {
		t.Errorf("expected 21 anxiety items, got %d", BeckAnxiety.Len())
	}
	if BeckAnxiety.AnswerMin != 0 || BeckAnxiety.AnswerMax != 3 {
		t.Errorf("unexpected anxiety answer domain: [%d, %d]", BeckAnxiety.AnswerMin, BeckAnxiety.AnswerMax)
	}
	if QoR15.Len() != 15 {
		t.Errorf("expected 15 recovery items, got %d", QoR15.Len())
	}
	if QoR15.AnswerMin != 0 || QoR15.AnswerMax != 10 {
		t.Errorf("unexpected recovery answer domain: [%d, %d]", QoR15.AnswerMin, QoR15.AnswerMax)
	}
}
