// Package db implements the append-only patient record log on Postgres.
// Records are immutable once appended; there is no update or delete path.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"homecare-chatbot/pkg"
)

// Repository wraps database operations for the record log.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a Repository from an existing sql.DB.  The caller
// manages the connection lifecycle.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// Append stores one finalized record.  The record ID and timestamp are set
// by the caller so the stored row round-trips verbatim.
func (r *Repository) Append(ctx context.Context, rec *pkg.Record) error {
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return fmt.Errorf("marshal record payload: %w", err)
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO records (id, patient_id, record_type, payload, flagged, created_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.PatientID, rec.Type, payload, rec.Flagged, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

// ListByPatient returns a patient's full log ordered by creation time.
func (r *Repository) ListByPatient(ctx context.Context, patientID string) ([]pkg.Record, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, patient_id, record_type, payload, flagged, created_at
         FROM records
         WHERE patient_id = $1
         ORDER BY created_at ASC, id ASC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []pkg.Record
	for rows.Next() {
		var rec pkg.Record
		var payload []byte
		if err := rows.Scan(&rec.ID, &rec.PatientID, &rec.Type, &payload, &rec.Flagged, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if err := json.Unmarshal(payload, &rec.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal record payload: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
