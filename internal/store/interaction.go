package store

import (
	"context"
	"fmt"
	"time"
)

// InteractionRecord is one journaled session interaction. Payload is
// opaque to the store; the session package owns its encoding.
type InteractionRecord struct {
	Sequence  int64
	SessionID string
	Kind      string
	Payload   []byte
	CreatedAt time.Time
}

// InteractionRepo is an append-only per-session log in the interactions
// table.
type InteractionRepo struct {
	store *Store
}

func (r *InteractionRepo) Append(ctx context.Context, rec InteractionRecord) error {
	seqNum, err := r.store.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	_, err = r.store.db.ExecContext(ctx, r.store.rebind(
		`INSERT INTO interactions (sequence, session_id, kind, payload, created_at) VALUES (?, ?, ?, ?, ?)`),
		seqNum, rec.SessionID, rec.Kind, string(rec.Payload), rec.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("append interaction: %w", err)
	}
	return nil
}

// Load returns a session's records in append order.
func (r *InteractionRepo) Load(ctx context.Context, sessionID string) ([]InteractionRecord, error) {
	rows, err := r.store.db.QueryContext(ctx, r.store.rebind(
		`SELECT sequence, session_id, kind, payload, created_at FROM interactions
		 WHERE session_id = ? ORDER BY sequence`), sessionID)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	defer rows.Close()

	var out []InteractionRecord
	for rows.Next() {
		var (
			rec     InteractionRecord
			payload string
			created int64
		)
		if err := rows.Scan(&rec.Sequence, &rec.SessionID, &rec.Kind, &payload, &created); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		rec.Payload = []byte(payload)
		rec.CreatedAt = time.UnixMilli(created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete drops every record of a session. Deleting an unknown session is
// not an error.
func (r *InteractionRepo) Delete(ctx context.Context, sessionID string) error {
	_, err := r.store.db.ExecContext(ctx, r.store.rebind(`DELETE FROM interactions WHERE session_id = ?`), sessionID)
	if err != nil {
		return fmt.Errorf("delete interactions: %w", err)
	}
	return nil
}

// Sessions lists session IDs that have at least one record.
func (r *InteractionRepo) Sessions(ctx context.Context) ([]string, error) {
	rows, err := r.store.db.QueryContext(ctx, `SELECT DISTINCT session_id FROM interactions ORDER BY session_id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan session id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
