// Package notify schedules one-shot local notifications through a SQLite
// outbox. Scheduling is best-effort: callers log failures and move on, state
// mutations never depend on delivery.
package notify

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultChannel is the channel every app notification is posted to. It must
// be ensured before the first schedule call.
const DefaultChannel = "goaleasy"

// Notification is a one-shot scheduling request.
type Notification struct {
	ID      string
	Title   string
	Body    string
	FireAt  time.Time
	Channel string
	Data    map[string]string
}

// Scheduler persists scheduling requests and serves the dispatch side.
type Scheduler struct {
	sqldb *sql.DB
}

func NewScheduler(sqldb *sql.DB) *Scheduler {
	return &Scheduler{sqldb: sqldb}
}

// EnsureChannel idempotently registers a notification channel. Safe to call
// on every startup.
func EnsureChannel(ctx context.Context, sqldb *sql.DB, id, name string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("channel id is required")
	}
	_, err := sqldb.ExecContext(ctx, `
INSERT OR IGNORE INTO notification_channels(id, name) VALUES(?, ?)
`, id, name)
	if err != nil {
		return fmt.Errorf("ensure channel %q: %w", id, err)
	}
	return nil
}

// ScheduleAt enqueues a notification to fire at n.FireAt and returns its id.
// A zero ID gets a fresh uuid; an empty channel falls back to DefaultChannel.
func (s *Scheduler) ScheduleAt(ctx context.Context, n Notification) (string, error) {
	if strings.TrimSpace(n.Title) == "" {
		return "", fmt.Errorf("notification title is required")
	}
	if n.FireAt.IsZero() {
		return "", fmt.Errorf("notification fire time is required")
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Channel == "" {
		n.Channel = DefaultChannel
	}

	dataJSON := ""
	if len(n.Data) > 0 {
		raw, err := json.Marshal(n.Data)
		if err != nil {
			return "", fmt.Errorf("encode notification data: %w", err)
		}
		dataJSON = string(raw)
	}

	_, err := s.sqldb.ExecContext(ctx, `
INSERT INTO notifications(id, channel_id, title, body, fire_at, data_json)
VALUES(?, ?, ?, ?, ?, ?)
`, n.ID, n.Channel, n.Title, n.Body, n.FireAt.UTC(), dataJSON)
	if err != nil {
		return "", fmt.Errorf("schedule notification: %w", err)
	}
	return n.ID, nil
}

// Pending lists undelivered notifications ordered by fire time.
func (s *Scheduler) Pending(ctx context.Context) ([]Notification, error) {
	return s.list(ctx, `
SELECT id, channel_id, title, body, fire_at, data_json
FROM notifications
WHERE delivered_at IS NULL
ORDER BY fire_at ASC
`)
}

// DueBefore lists undelivered notifications whose fire time is at or before t.
func (s *Scheduler) DueBefore(ctx context.Context, t time.Time) ([]Notification, error) {
	return s.list(ctx, `
SELECT id, channel_id, title, body, fire_at, data_json
FROM notifications
WHERE delivered_at IS NULL AND fire_at <= ?
ORDER BY fire_at ASC
`, t.UTC())
}

// MarkDelivered records that a notification was handed to the platform.
func (s *Scheduler) MarkDelivered(ctx context.Context, id string) error {
	res, err := s.sqldb.ExecContext(ctx, `
UPDATE notifications SET delivered_at = CURRENT_TIMESTAMP WHERE id = ? AND delivered_at IS NULL
`, id)
	if err != nil {
		return fmt.Errorf("mark notification %q delivered: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("notification %q not found or already delivered", id)
	}
	return nil
}

func (s *Scheduler) list(ctx context.Context, query string, args ...any) ([]Notification, error) {
	rows, err := s.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	out := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		var dataJSON string
		if err := rows.Scan(&n.ID, &n.Channel, &n.Title, &n.Body, &n.FireAt, &dataJSON); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if dataJSON != "" {
			if err := json.Unmarshal([]byte(dataJSON), &n.Data); err != nil {
				return nil, fmt.Errorf("decode notification data: %w", err)
			}
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return out, nil
}
