package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"homecare-chatbot/internal/core"
	"homecare-chatbot/pkg"
)

type nopRecorder struct{}

func (nopRecorder) Append(context.Context, *pkg.Record) error { return nil }

type nopAlerter struct{}

func (nopAlerter) Notify(pkg.AlertPayload) {}

type stubRecordStore struct {
	records []pkg.Record
	err     error
}

func (s *stubRecordStore) ListByPatient(context.Context, string) ([]pkg.Record, error) {
	return s.records, s.err
}

func newTestServer(repo RecordStore, summarizer *core.Summarizer) (*echo.Echo, *Server) {
	machine := core.NewMachine(nopRecorder{}, nopAlerter{}, zerolog.Nop())
	srv := NewServer(machine, core.NewStore(), repo, summarizer, zerolog.Nop())
	e := echo.New()
	srv.Register(e)
	return e, srv
}

func postEvent(e *echo.Echo, patientID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/patients/"+patientID+"/events", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(&stubRecordStore{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestEventCommandReturnsMenu(t *testing.T) {
	e, _ := newTestServer(&stubRecordStore{}, nil)
	rec := postEvent(e, "p1", `{"kind":"command","payload":"start"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp pkg.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Options) != 20 {
		t.Errorf("expected 20 main-menu options, got %d", len(resp.Options))
	}
}

func TestEventOffMenuReturnsNoContent(t *testing.T) {
	e, _ := newTestServer(&stubRecordStore{}, nil)
	postEvent(e, "p1", `{"kind":"command","payload":"start"}`)
	rec := postEvent(e, "p1", `{"kind":"selection","payload":"bogus"}`)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for off-menu input, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}

func TestEventUnknownKindRejected(t *testing.T) {
	e, _ := newTestServer(&stubRecordStore{}, nil)
	rec := postEvent(e, "p1", `{"kind":"telepathy","payload":"hi"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown kind, got %d", rec.Code)
	}
}

func TestEventMalformedBodyRejected(t *testing.T) {
	e, _ := newTestServer(&stubRecordStore{}, nil)
	rec := postEvent(e, "p1", `{"kind":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestEventDrivesStateAcrossRequests(t *testing.T) {
	e, _ := newTestServer(&stubRecordStore{}, nil)
	postEvent(e, "p1", `{"kind":"command","payload":"start"}`)
	rec := postEvent(e, "p1", `{"kind":"selection","payload":"vital_signs"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp pkg.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	found := false
	for _, o := range resp.Options {
		if o.Code == "heart_rate" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected vital-signs menu, got %+v", resp.Options)
	}
}

func TestListRecords(t *testing.T) {
	store := &stubRecordStore{records: []pkg.Record{{
		ID:        "r1",
		PatientID: "p1",
		Type:      pkg.RecordVitalSign,
		Payload:   map[string]interface{}{"parameter": "heart_rate", "value": 72.0},
		CreatedAt: time.Now().UTC(),
	}}}
	e, _ := newTestServer(store, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/patients/p1/records", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		PatientID string       `json:"patient_id"`
		Records   []pkg.Record `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.PatientID != "p1" || len(body.Records) != 1 || body.Records[0].ID != "r1" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestListRecordsEmptyIsArray(t *testing.T) {
	e, _ := newTestServer(&stubRecordStore{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/patients/p1/records", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if !strings.Contains(rec.Body.String(), `"records":[]`) {
		t.Errorf("expected empty array, got %q", rec.Body.String())
	}
}

func TestListRecordsStoreFailure(t *testing.T) {
	e, _ := newTestServer(&stubRecordStore{err: errors.New("connection refused")}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/patients/p1/records", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestSummaryUnavailableWithoutSummarizer(t *testing.T) {
	e, _ := newTestServer(&stubRecordStore{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/patients/p1/summary", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 when no summarizer is configured, got %d", rec.Code)
	}
}
