package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Event represents one emitted command stored in the database.
type Event struct {
	ID         string    `json:"id"`
	Gesture    string    `json:"gesture"`
	Direction  string    `json:"direction"`
	Combined   string    `json:"combined"`
	Command    string    `json:"command"`
	Handedness string    `json:"handedness"`
	Score      float64   `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventRepository provides persistence for emitted command events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Create inserts a new event. A missing ID is assigned a fresh UUID.
func (r *EventRepository) Create(e *Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO events (id, gesture, direction, combined, command, handedness, score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Gesture, e.Direction, e.Combined, e.Command, e.Handedness, e.Score, e.CreatedAt,
	)
	return err
}

// ListRecent retrieves the most recent events, newest first.
// A limit of 0 or less defaults to 50.
func (r *EventRepository) ListRecent(limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, gesture, direction, combined, command, handedness, score, created_at
		 FROM events ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Gesture, &e.Direction, &e.Combined, &e.Command,
			&e.Handedness, &e.Score, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// CountByCombined returns how many events were recorded per combined
// gesture token, useful for calibration reports.
func (r *EventRepository) CountByCombined() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT combined, COUNT(*) FROM events GROUP BY combined`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var combined string
		var n int
		if err := rows.Scan(&combined, &n); err != nil {
			return nil, err
		}
		counts[combined] = n
	}

	return counts, rows.Err()
}

// PruneBefore deletes events created before the cutoff and returns how
// many rows were removed.
func (r *EventRepository) PruneBefore(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
