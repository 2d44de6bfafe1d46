package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"veriface/internal/attendance/models"
	"veriface/pkg/platform/sentinel"
)

// PostgresStore persists attendance records in PostgreSQL. This store is
// pure I/O; verdict interpretation and notification policy belong to the
// service. Status writes are single-record atomic UPDATEs, so concurrent
// runs cannot corrupt a record, only race to the same final state.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Register(ctx context.Context, record models.AttendanceRecord) error {
	if record.Status == "" {
		record.Status = models.StatusAbsent
	}
	query := `
		INSERT INTO attendance_records (conference_id, user_id, email, status, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (conference_id, user_id) DO NOTHING
	`
	result, err := s.db.ExecContext(ctx, query, record.ConferenceID, record.UserID, record.Email, record.Status)
	if err != nil {
		return fmt.Errorf("register attendance: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("register attendance rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("register attendance %s/%s: %w", record.ConferenceID, record.UserID, sentinel.ErrConflict)
	}
	return nil
}

func (s *PostgresStore) ListRegisteredUserIDs(ctx context.Context, conferenceID models.ConferenceID) ([]models.UserID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id FROM attendance_records WHERE conference_id = $1`, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list registered user ids: %w", err)
	}
	defer rows.Close()

	var ids []models.UserID
	for rows.Next() {
		var id models.UserID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user ids: %w", err)
	}
	return ids, nil
}

func (s *PostgresStore) ListByConference(ctx context.Context, conferenceID models.ConferenceID) ([]models.AttendanceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT conference_id, user_id, email, status, updated_at
		FROM attendance_records
		WHERE conference_id = $1
	`, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(&rec.ConferenceID, &rec.UserID, &rec.Email, &rec.Status, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance records: %w", err)
	}
	return records, nil
}

// MarkPresent flips the record to Present with a conditional UPDATE. Zero
// rows affected means either the record is already Present or it does not
// exist; a follow-up read discriminates the two.
func (s *PostgresStore) MarkPresent(ctx context.Context, conferenceID models.ConferenceID, userID models.UserID) (models.MarkResult, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE attendance_records
		SET status = $3, updated_at = NOW()
		WHERE conference_id = $1 AND user_id = $2 AND status <> $3
	`, conferenceID, userID, models.StatusPresent)
	if err != nil {
		return "", fmt.Errorf("mark present: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("mark present rows affected: %w", err)
	}
	if rows > 0 {
		return models.MarkUpdated, nil
	}

	var status models.AttendanceStatus
	err = s.db.QueryRowContext(ctx,
		`SELECT status FROM attendance_records WHERE conference_id = $1 AND user_id = $2`,
		conferenceID, userID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MarkNotFound, nil
	}
	if err != nil {
		return "", fmt.Errorf("mark present status lookup: %w", err)
	}
	return models.MarkAlreadyPresent, nil
}

// MarkAbsent confirms the record as Absent and returns the participant's
// email in the same statement so the notification path needs no second
// round trip.
func (s *PostgresStore) MarkAbsent(ctx context.Context, conferenceID models.ConferenceID, userID models.UserID) (models.MarkResult, string, error) {
	var email string
	err := s.db.QueryRowContext(ctx, `
		UPDATE attendance_records
		SET status = $3, updated_at = NOW()
		WHERE conference_id = $1 AND user_id = $2 AND status <> $3
		RETURNING email
	`, conferenceID, userID, models.StatusAbsent).Scan(&email)
	if err == nil {
		return models.MarkUpdated, email, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", "", fmt.Errorf("mark absent: %w", err)
	}

	var status models.AttendanceStatus
	err = s.db.QueryRowContext(ctx,
		`SELECT email, status FROM attendance_records WHERE conference_id = $1 AND user_id = $2`,
		conferenceID, userID).Scan(&email, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MarkNotFound, "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("mark absent status lookup: %w", err)
	}
	return models.MarkAlreadyAbsent, email, nil
}
