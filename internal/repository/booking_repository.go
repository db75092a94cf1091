package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/event-booking/internal/model"
)

// BookingRepo provides access to the 'bookings' table. Bookings refer
// to their user and event by id; cancellation deletes the row. The
// delete is keyed on both booking id and owner id so two concurrent
// cancellations of the same booking cannot both succeed.
type BookingRepo struct{ db *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// BookingDetail is a booking row with its event (and the event's
// creator) resolved for display.
type BookingDetail struct {
	model.Booking
	Event EventDetail
}

const bookingSelect = `SELECT b.id,b.user_id,b.created_at,
       e.id,e.title,e.description,e.price,e.date,e.created_at,u.id,u.email
FROM bookings b
JOIN events e ON e.id=b.event_id
JOIN users u ON u.id=e.creator_id`

func scanBooking(scan func(dest ...any) error) (BookingDetail, error) {
	var d BookingDetail
	err := scan(&d.ID, &d.UserID, &d.CreatedAt,
		&d.Event.ID, &d.Event.Title, &d.Event.Description, &d.Event.Price,
		&d.Event.Date, &d.Event.CreatedAt, &d.Event.CreatorID, &d.Event.CreatorEmail)
	d.EventID = d.Event.ID
	return d, err
}

// Create inserts a booking linking userID to eventID and reads the
// row back with the event resolved. The caller must have verified the
// event exists; the foreign key still rejects a racing deletion.
func (r *BookingRepo) Create(ctx context.Context, userID, eventID uint64) (BookingDetail, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO bookings (user_id, event_id) VALUES (?,?)",
		userID, eventID)
	if err != nil {
		return BookingDetail{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return BookingDetail{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID returns one booking with its event resolved. Returns
// ErrBookingNotFound when the id does not exist.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (BookingDetail, error) {
	d, err := scanBooking(r.db.QueryRowContext(ctx, bookingSelect+"\nWHERE b.id=? LIMIT 1", id).Scan)
	if err == sql.ErrNoRows {
		return BookingDetail{}, ErrBookingNotFound
	}
	return d, err
}

// ListByUser returns only the bookings belonging to userID, each with
// its event resolved. Scoping by user id here is the authorization
// boundary: no caller can see another user's bookings.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx, bookingSelect+"\nWHERE b.user_id=? ORDER BY b.id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BookingDetail, 0)
	for rows.Next() {
		d, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Cancel removes callerID's booking and returns the detail that was
// removed so the transport can echo the referenced event. A booking
// owned by someone else yields ErrForbidden and stays intact.
func (r *BookingRepo) Cancel(ctx context.Context, id, callerID uint64) (BookingDetail, error) {
	d, err := r.GetByID(ctx, id)
	if err != nil {
		return BookingDetail{}, err
	}
	if d.UserID != callerID {
		return BookingDetail{}, ErrForbidden
	}
	if err := r.DeleteOwned(ctx, id, callerID); err != nil {
		return BookingDetail{}, err
	}
	return d, nil
}

// DeleteOwned removes a booking by id, but only when it belongs to
// userID. The single conditional DELETE acts as a compare-and-delete:
// zero rows affected means the booking vanished between the owner
// check and the delete (e.g. a concurrent cancellation), and the
// caller gets ErrBookingNotFound rather than a false success.
func (r *BookingRepo) DeleteOwned(ctx context.Context, id, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM bookings WHERE id=? AND user_id=?",
		id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}
