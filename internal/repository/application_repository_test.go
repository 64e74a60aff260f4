package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
)

func sampleApplication() *models.VolunteerApplication {
	return &models.VolunteerApplication{
		OpportunityID: "1",
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "9999999999",
		Motivation:    "Love the ocean",
		Availability:  "Weekends",
		Skills:        strPtr("First aid"),
	}
}

func TestApplicationRepositoryCreateReservesSeat(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewApplicationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("1", "asha@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE opportunities SET volunteers_applied = volunteers_applied + 1")).
		WithArgs("1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO volunteer_applications")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	app := sampleApplication()
	require.NoError(t, repo.Create(context.Background(), app, true))
	assert.NotEmpty(t, app.ID)
	assert.Equal(t, models.ApplicationPending, app.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryCreateWithoutReservation(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewApplicationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO volunteer_applications")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), sampleApplication(), false))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryCreateDuplicate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewApplicationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), sampleApplication(), true)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryCreateFull(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewApplicationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE opportunities")).
		WithArgs("1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), sampleApplication(), true)
	assert.ErrorIs(t, err, ErrOpportunityFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewApplicationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM volunteer_applications")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, total)
}
