package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	return sqlmock.NewRows([]string{
		"id", "user_id", "created_at",
		"eid", "title", "description", "price", "date", "ecreated", "uid", "email",
	})
}

func TestBookingRepoGetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(db)
	now := time.Now().UTC()

	mock.ExpectQuery(bookingSelect + "\nWHERE b.id=? LIMIT 1").
		WithArgs(5).
		WillReturnRows(bookingRows(t).
			AddRow(5, 7, now, 3, "Talk", "desc", 10.0, now, now, 9, "owner@x.com"))

	d, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), d.UserID)
	assert.Equal(t, uint64(3), d.Event.ID)
	assert.Equal(t, "owner@x.com", d.Event.CreatorEmail)
}

func TestBookingRepoGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(bookingSelect + "\nWHERE b.id=? LIMIT 1").
		WithArgs(5).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingRepoListByUserScopesToUser(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(db)
	now := time.Now().UTC()

	mock.ExpectQuery(bookingSelect + "\nWHERE b.user_id=? ORDER BY b.id").
		WithArgs(7).
		WillReturnRows(bookingRows(t).
			AddRow(5, 7, now, 3, "Talk", "desc", 10.0, now, now, 9, "owner@x.com"))

	out, err := repo.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, uint64(5), out[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoCancelForbiddenLeavesRow(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(db)
	now := time.Now().UTC()

	// Caller 7 targets a booking owned by 8. No DELETE is expected.
	mock.ExpectQuery(bookingSelect + "\nWHERE b.id=? LIMIT 1").
		WithArgs(5).
		WillReturnRows(bookingRows(t).
			AddRow(5, 8, now, 3, "Talk", "desc", 10.0, now, now, 9, "owner@x.com"))

	_, err := repo.Cancel(context.Background(), 5, 7)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoDeleteOwned(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"owner deletes once", 1, nil},
		{"already cancelled", 0, ErrBookingNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			repo := NewBookingRepo(db)

			mock.ExpectExec("DELETE FROM bookings WHERE id=? AND user_id=?").
				WithArgs(5, 7).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteOwned(context.Background(), 5, 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
