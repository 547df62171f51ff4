// Package http adapts the conversation core to an HTTP transport.  The chat
// frontend posts inbound events and renders the returned response
// descriptors; clinicians read the record log and summary.
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"homecare-chatbot/internal/core"
	"homecare-chatbot/pkg"
)

// RecordStore is the read side of the record log consumed by the clinician
// endpoints.  *db.Repository satisfies it.
type RecordStore interface {
	ListByPatient(ctx context.Context, patientID string) ([]pkg.Record, error)
}

// Server bundles the dependencies required by the HTTP handlers.
type Server struct {
	Machine    *core.Machine
	Sessions   *core.Store
	Repo       RecordStore
	Summarizer *core.Summarizer
	Log        zerolog.Logger
}

// NewServer constructs a Server.  Summarizer may be nil when no LLM
// credentials are configured; the summary endpoint then reports 503.
func NewServer(machine *core.Machine, sessions *core.Store, repo RecordStore, summarizer *core.Summarizer, log zerolog.Logger) *Server {
	return &Server{
		Machine:    machine,
		Sessions:   sessions,
		Repo:       repo,
		Summarizer: summarizer,
		Log:        log,
	}
}

// Register mounts the routes on the echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)
	e.POST("/api/patients/:id/events", s.handleEvent)
	e.GET("/api/patients/:id/records", s.handleListRecords)
	e.GET("/api/patients/:id/summary", s.handleSummary)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type eventRequest struct {
	Kind    pkg.EventKind `json:"kind"`
	Payload string        `json:"payload"`
}

// handleEvent feeds one inbound event through the state machine and returns
// the response descriptor.  Dropped off-menu input yields 204 No Content so
// the transport renders nothing.
func (s *Server) handleEvent(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	switch req.Kind {
	case pkg.KindCommand, pkg.KindSelection, pkg.KindFreeText:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown event kind")
	}
	ev := pkg.Event{
		PatientID: c.Param("id"),
		Kind:      req.Kind,
		Payload:   req.Payload,
	}
	ctx := c.Request().Context()
	resp, err := s.Sessions.Do(ev.PatientID, func(sess *core.Session) (*pkg.Response, error) {
		return s.Machine.Handle(ctx, sess, ev)
	})
	if err != nil {
		s.Log.Error().Err(err).Str("patient_id", ev.PatientID).Msg("event handling failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "event handling failed")
	}
	if resp == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleListRecords(c echo.Context) error {
	patientID := c.Param("id")
	records, err := s.Repo.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		s.Log.Error().Err(err).Str("patient_id", patientID).Msg("list records failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "list records failed")
	}
	if records == nil {
		records = []pkg.Record{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"patient_id": patientID,
		"records":    records,
	})
}

func (s *Server) handleSummary(c echo.Context) error {
	if s.Summarizer == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "summarizer not configured")
	}
	patientID := c.Param("id")
	records, err := s.Repo.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		s.Log.Error().Err(err).Str("patient_id", patientID).Msg("list records failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "list records failed")
	}
	summary, err := s.Summarizer.Summarize(c.Request().Context(), records)
	if err != nil {
		// The summariser returned its fallback text; log and serve it.
		s.Log.Warn().Err(err).Str("patient_id", patientID).Msg("summary fell back")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"patient_id": patientID,
		"summary":    summary,
	})
}
