package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"groupschedule/internal/domain"
)

type dateOptionRepository struct {
	DB *sql.DB
}

func NewDateOptionRepository(db *sql.DB) domain.DateOptionRepository {
	return &dateOptionRepository{
		DB: db,
	}
}

func (r *dateOptionRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.DateOption, error) {
	query := `
		SELECT id, event_id, date, start_time, end_time, label, created_at
		FROM date_options
		WHERE event_id = $1
		ORDER BY date ASC, start_time ASC NULLS FIRST, created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	options := make([]*domain.DateOption, 0)
	for rows.Next() {
		o := &domain.DateOption{}
		var date time.Time
		var startNull, endNull, labelNull sql.NullString
		if err := rows.Scan(&o.ID, &o.EventID, &date, &startNull, &endNull, &labelNull, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Date = date.Format(time.DateOnly)
		o.StartTime = clockPtr(startNull)
		o.EndTime = clockPtr(endNull)
		if labelNull.Valid {
			o.Label = &labelNull.String
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

// clockPtr trims the seconds Postgres returns for TIME columns.
func clockPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	if hhmm, err := domain.NormalizeClock(s); err == nil {
		s = hhmm
	}
	return &s
}

func insertDateOptions(ctx context.Context, tx *sql.Tx, options []*domain.DateOption) error {
	query := `
		INSERT INTO date_options (event_id, date, start_time, end_time, label, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	for _, o := range options {
		if err := tx.QueryRowContext(ctx, query, o.EventID, o.Date, o.StartTime, o.EndTime, o.Label, o.CreatedAt).Scan(&o.ID); err != nil {
			return fmt.Errorf("insert date option %s: %w", o.Date, err)
		}
	}
	return nil
}

// applyReconcilePlan deletes, updates and inserts date options of eventID in
// that order on tx.
func applyReconcilePlan(ctx context.Context, tx *sql.Tx, eventID string, plan domain.ReconcilePlan) error {
	if len(plan.Delete) > 0 {
		query := `DELETE FROM date_options WHERE event_id = $1 AND id = ANY($2)`
		if _, err := tx.ExecContext(ctx, query, eventID, pq.Array(plan.Delete)); err != nil {
			return fmt.Errorf("delete date options: %w", err)
		}
	}

	update := `
		UPDATE date_options
		SET date = $1, start_time = $2, end_time = $3, label = $4
		WHERE id = $5 AND event_id = $6
	`
	for _, o := range plan.Update {
		result, err := tx.ExecContext(ctx, update, o.Date, o.StartTime, o.EndTime, o.Label, o.ID, eventID)
		if err != nil {
			return fmt.Errorf("update date option %s: %w", o.ID, err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return fmt.Errorf("update date option %s: row no longer exists", o.ID)
		}
	}

	for _, o := range plan.Insert {
		o.EventID = eventID
	}
	return insertDateOptions(ctx, tx, plan.Insert)
}
