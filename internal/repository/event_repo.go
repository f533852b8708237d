package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"bakehouse/internal/models"

	"github.com/google/uuid"
)

// DefaultHistoryCapacity bounds how many events the history retains.
const DefaultHistoryCapacity = 100

// sqliteTimeLayout is the TIMESTAMP format SQLite sorts lexically.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// EventSQLite stores the bounded event history. Every append trims the
// oldest rows beyond capacity, so the table never grows past it.
type EventSQLite struct {
	db       *sql.DB
	capacity int
}

func NewEventSQLite(db *sql.DB, capacity int) *EventSQLite {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &EventSQLite{db: db, capacity: capacity}
}

// Append inserts a new event. If EventID or OccurredAt are empty, they’re set.
func (r *EventSQLite) Append(ctx context.Context, e models.KitchenEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	var payloadPtr *string
	if e.Payload != nil {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("marshal event payload: %w", err)
		}
		s := string(b)
		payloadPtr = &s
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kitchen_events (id, occurred_at, kind, payload)
		VALUES (?, ?, ?, ?)
	`,
		e.EventID,
		e.OccurredAt.Format(sqliteTimeLayout),
		string(e.Kind),
		payloadPtr,
	)
	if err != nil {
		return err
	}

	// FIFO trim: keep only the newest capacity rows.
	_, err = r.db.ExecContext(ctx, `
		DELETE FROM kitchen_events
		WHERE seq NOT IN (SELECT seq FROM kitchen_events ORDER BY seq DESC LIMIT ?)
	`, r.capacity)
	return err
}

// Recent returns up to limit of the newest events, oldest first. A limit
// outside (0, capacity] falls back to the full capacity window.
func (r *EventSQLite) Recent(ctx context.Context, limit int) ([]models.KitchenEvent, error) {
	if limit <= 0 || limit > r.capacity {
		limit = r.capacity
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, occurred_at, kind, payload FROM (
			SELECT seq, id, occurred_at, kind, payload
			FROM kitchen_events
			ORDER BY seq DESC
			LIMIT ?
		) ORDER BY seq ASC
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.KitchenEvent, 0, limit)
	for rows.Next() {
		var (
			ev         models.KitchenEvent
			kind       string
			payloadStr sql.NullString
		)
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &kind, &payloadStr); err != nil {
			return nil, err
		}
		ev.Kind = models.EventKind(kind)
		ev.OccurredAt = ev.OccurredAt.UTC()

		if payloadStr.Valid && payloadStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(payloadStr.String), &v); err == nil {
				ev.Payload = v
			} else {
				ev.Payload = payloadStr.String // keep raw if malformed
			}
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count reports how many events the history currently holds.
func (r *EventSQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kitchen_events`).Scan(&n)
	return n, err
}
