package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
)

func TestDonationRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDonationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO donations")).
		WithArgs(sqlmock.AnyArg(), "pay_1", "order_1", "500", "INR", "ngo-1", "Green Earth", models.PledgeOneTime,
			"Asha", "asha@example.com", "9999999999", nil, models.DonationSuccess, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	donation := &models.Donation{
		PaymentID:  strPtr("pay_1"),
		OrderID:    strPtr("order_1"),
		Amount:     decimal.NewFromInt(500),
		Currency:   "INR",
		NGOID:      "ngo-1",
		NGOName:    "Green Earth",
		PledgeType: models.PledgeOneTime,
		DonorName:  "Asha",
		DonorEmail: "asha@example.com",
		DonorPhone: "9999999999",
		Status:     models.DonationSuccess,
	}
	require.NoError(t, repo.Create(context.Background(), donation))
	assert.NotEmpty(t, donation.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDonationRepositorySuccessfulTotals(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDonationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM donations WHERE status = $1")).
		WithArgs(models.DonationSuccess).
		WillReturnRows(sqlmock.NewRows([]string{"donations", "amount"}).AddRow(4, "2500.00"))

	totals, err := repo.SuccessfulTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, totals.Count)
	assert.True(t, decimal.RequireFromString("2500").Equal(totals.Amount))
}
