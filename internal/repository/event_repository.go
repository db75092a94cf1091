package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/event-booking/internal/model"
)

// EventRepo provides access to the 'events' table. Every read joins
// the users table so callers receive the creator email without a
// second round trip; the creator reference itself is immutable.
type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// EventDetail is an event row together with its creator's email
// (never the password hash). Handlers shape this into response DTOs.
type EventDetail struct {
	model.Event
	CreatorEmail string
}

const eventSelect = "SELECT e.id,e.title,e.description,e.price,e.date,e.created_at,u.id,u.email FROM events e JOIN users u ON u.id=e.creator_id"

// Create inserts an event owned by creatorID and reads the full row
// back so the caller gets DB-generated timestamps and the creator
// email in one call.
func (r *EventRepo) Create(ctx context.Context, creatorID uint64, title, description string, price float64, date time.Time) (EventDetail, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO events (title, description, price, date, creator_id) VALUES (?,?,?,?,?)",
		title, description, price, date.UTC(), creatorID)
	if err != nil {
		return EventDetail{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return EventDetail{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID returns a single event with its creator resolved. Returns
// ErrEventNotFound when the id does not exist.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (EventDetail, error) {
	var d EventDetail
	err := r.db.QueryRowContext(ctx, eventSelect+" WHERE e.id=? LIMIT 1", id).
		Scan(&d.ID, &d.Title, &d.Description, &d.Price, &d.Date,
			&d.CreatedAt, &d.CreatorID, &d.CreatorEmail)
	if err == sql.ErrNoRows {
		return EventDetail{}, ErrEventNotFound
	}
	return d, err
}

// List returns all events in insertion order, each with its creator
// resolved. The listing is public and requires no authentication.
func (r *EventRepo) List(ctx context.Context) ([]EventDetail, error) {
	rows, err := r.db.QueryContext(ctx, eventSelect+" ORDER BY e.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EventDetail, 0)
	for rows.Next() {
		var d EventDetail
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.Price, &d.Date,
			&d.CreatedAt, &d.CreatorID, &d.CreatorEmail); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
