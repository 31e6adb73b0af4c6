package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSchedule(t *testing.T) {
	now := time.Now()
	rows := BuildSchedule(7, 1000000, 0, now)
	require.Len(t, rows, 5)

	wantMilestones := []string{"Booking Token", "Allotment", "Agreement Signing", "Bank Disbursement", "Possession"}
	wantAmounts := []float64{100000, 250000, 100000, 600000, 50000}
	wantPayers := []string{PayerCustomer, PayerCustomer, PayerCustomer, PayerBank, PayerCustomer}
	wantOffsets := []int{0, 30, 45, 60, 180}

	for i, row := range rows {
		assert.Equal(t, uint(7), row.BookingID)
		assert.Equal(t, wantMilestones[i], row.Milestone)
		assert.InDelta(t, wantAmounts[i], row.Amount, 0.001)
		assert.Equal(t, wantPayers[i], row.Payer)
		assert.Equal(t, PaymentPending, row.Status)
		require.NotNil(t, row.DueDate)
		assert.True(t, row.DueDate.Equal(now.AddDate(0, 0, wantOffsets[i])))
	}

	// The plan totals 110% of the deal amount without an explicit token.
	var total float64
	for _, row := range rows {
		total += row.Amount
	}
	assert.InDelta(t, 1100000, total, 0.001)
}

func TestBuildScheduleWithTokenAmount(t *testing.T) {
	rows := BuildSchedule(3, 1000000, 150000, time.Now())
	require.Len(t, rows, 5)

	assert.InDelta(t, 150000, rows[0].Amount, 0.001)
	assert.Equal(t, PaymentPaid, rows[0].Status)

	// Only the token row is affected.
	assert.InDelta(t, 250000, rows[1].Amount, 0.001)
	assert.Equal(t, PaymentPending, rows[1].Status)
}
