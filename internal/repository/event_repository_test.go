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

func eventRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	return sqlmock.NewRows([]string{"id", "title", "description", "price", "date", "created_at", "uid", "email"})
}

func TestEventRepoGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery(eventSelect + " WHERE e.id=? LIMIT 1").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepoCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEventRepo(db)
	now := time.Now().UTC()
	date := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO events (title, description, price, date, creator_id) VALUES (?,?,?,?,?)").
		WithArgs("Talk", "desc", 10.0, date, 7).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery(eventSelect + " WHERE e.id=? LIMIT 1").
		WithArgs(3).
		WillReturnRows(eventRows(t).AddRow(3, "Talk", "desc", 10.0, date, now, 7, "a@x.com"))

	d, err := repo.Create(context.Background(), 7, "Talk", "desc", 10.0, date)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), d.ID)
	assert.Equal(t, uint64(7), d.CreatorID)
	assert.Equal(t, "a@x.com", d.CreatorEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepoListKeepsInsertionOrder(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEventRepo(db)
	now := time.Now().UTC()

	mock.ExpectQuery(eventSelect + " ORDER BY e.id").
		WillReturnRows(eventRows(t).
			AddRow(1, "First", "d1", 5.0, now, now, 7, "a@x.com").
			AddRow(2, "Second", "d2", 6.0, now, now, 8, "b@x.com"))

	out, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "First", out[0].Title)
	assert.Equal(t, "Second", out[1].Title)
	assert.Equal(t, "b@x.com", out[1].CreatorEmail)
}

func TestEventRepoListEmpty(t *testing.T) {
	db, mock := newMock(t)
	repo := NewEventRepo(db)

	mock.ExpectQuery(eventSelect + " ORDER BY e.id").
		WillReturnRows(eventRows(t))

	out, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out) // serializes as [] rather than null
}
