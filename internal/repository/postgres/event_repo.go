package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"groupschedule/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event, options []*domain.DateOption) error {
	query := `
		INSERT INTO events (public_id, passphrase, title, location, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query,
			e.PublicID, e.Passphrase, e.Title, e.Location, e.Description, e.CreatedAt, e.UpdatedAt,
		).Scan(&e.ID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				return domain.ErrDuplicatePublicID
			}
			return fmt.Errorf("insert event: %w", err)
		}
		for _, o := range options {
			o.EventID = e.ID
		}
		return insertDateOptions(ctx, tx, options)
	})
}

func (r *eventRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Event, error) {
	query := `
		SELECT id, public_id, passphrase, title, location, description, created_at, updated_at
		FROM events
		WHERE public_id = $1
	`
	e := &domain.Event{}
	var locNull, descNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, publicID).Scan(
		&e.ID, &e.PublicID, &e.Passphrase, &e.Title, &locNull, &descNull, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if locNull.Valid {
		e.Location = &locNull.String
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	return e, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event, plan domain.ReconcilePlan) error {
	query := `
		UPDATE events
		SET title = $1, location = $2, description = $3, updated_at = $4
		WHERE id = $5
	`
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, e.Title, e.Location, e.Description, e.UpdatedAt, e.ID)
		if err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		return applyReconcilePlan(ctx, tx, e.ID, plan)
	})
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
