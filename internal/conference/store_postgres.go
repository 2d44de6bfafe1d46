package conference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"veriface/internal/attendance/models"
	"veriface/pkg/platform/sentinel"
)

// PostgresStore persists conferences in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, conf Conference) error {
	if conf.Status == "" {
		conf.Status = StatusNotCompleted
	}
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO conferences (id, name, scheduled_on, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO NOTHING
	`, conf.ID, conf.Name, conf.ScheduledOn, conf.Status)
	if err != nil {
		return fmt.Errorf("create conference: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("create conference rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("create conference %s: %w", conf.ID, sentinel.ErrConflict)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id models.ConferenceID) (*Conference, error) {
	var conf Conference
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, scheduled_on, status, created_at
		FROM conferences
		WHERE id = $1
	`, id).Scan(&conf.ID, &conf.Name, &conf.ScheduledOn, &conf.Status, &conf.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get conference %s: %w", id, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get conference: %w", err)
	}
	return &conf, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Conference, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, scheduled_on, status, created_at
		FROM conferences
		ORDER BY scheduled_on
	`)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	defer rows.Close()

	var list []Conference
	for rows.Next() {
		var conf Conference
		if err := rows.Scan(&conf.ID, &conf.Name, &conf.ScheduledOn, &conf.Status, &conf.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan conference: %w", err)
		}
		list = append(list, conf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conferences: %w", err)
	}
	return list, nil
}

func (s *PostgresStore) SetStatus(ctx context.Context, id models.ConferenceID, status Status) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE conferences SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set conference status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set conference status rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("set conference status %s: %w", id, sentinel.ErrNotFound)
	}
	return nil
}
