package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"groupschedule/internal/domain"
)

// lockParticipant takes a lock keyed on (event, name) that is released at commit or rollback.
const lockParticipant = `SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`

type responseRepository struct {
	DB *sql.DB
}

func NewResponseRepository(db *sql.DB) domain.ResponseRepository {
	return &responseRepository{
		DB: db,
	}
}

func (r *responseRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Response, error) {
	query := `
		SELECT id, event_id, date_option_id, name, status, note, created_at, updated_at
		FROM responses
		WHERE event_id = $1
		ORDER BY name ASC, created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	responses := make([]*domain.Response, 0)
	for rows.Next() {
		resp := &domain.Response{}
		var status string
		var noteNull sql.NullString
		if err := rows.Scan(&resp.ID, &resp.EventID, &resp.DateOptionID, &resp.Name, &status, &noteNull, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
			return nil, err
		}
		resp.Status = domain.Status(status)
		if noteNull.Valid {
			resp.Note = &noteNull.String
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}

// Replace swaps every stored answer of name for rows in one transaction, so a
// failed insert never leaves the participant without answers. Concurrent
// replaces for the same participant are serialized by a transaction-scoped
// advisory lock; the later commit wins.
func (r *responseRepository) Replace(ctx context.Context, eventID, name string, rows []*domain.Response) error {
	insert := `
		INSERT INTO responses (event_id, date_option_id, name, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return withTx(ctx, r.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, lockParticipant, eventID, name); err != nil {
			return fmt.Errorf("lock participant: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM responses WHERE event_id = $1 AND name = $2`, eventID, name); err != nil {
			return fmt.Errorf("delete responses: %w", err)
		}
		for _, resp := range rows {
			err := tx.QueryRowContext(ctx, insert,
				eventID, resp.DateOptionID, name, string(resp.Status), resp.Note, resp.CreatedAt, resp.UpdatedAt,
			).Scan(&resp.ID)
			if err != nil {
				return fmt.Errorf("insert response for %s: %w", resp.DateOptionID, err)
			}
		}
		return nil
	})
}
