package deal_test

import (
	"testing"
	"time"

	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateTrigger(t *testing.T) {
	snapshot := deal.CustomerSnapshot{
		TenantID:             testTenantID,
		TotalVisits:          10,
		TotalSpent:           decimal.NewFromInt(1000),
		ConsecutiveDayStreak: 6,
	}

	tests := []struct {
		name     string
		trigger  deal.TriggerType
		amount   int64
		value    int64
		expected bool
	}{
		{"消費門檻達標", deal.TriggerSpendThreshold, 50, 50, true},
		{"消費門檻只看本次金額", deal.TriggerSpendThreshold, 49, 50, false},
		{"到店次數達標", deal.TriggerVisitMilestone, 0, 10, true},
		{"到店次數未達標", deal.TriggerVisitMilestone, 0, 11, false},
		{"連續天數未達標", deal.TriggerConsecutiveDays, 0, 7, false},
		{"連續天數達標", deal.TriggerConsecutiveDays, 0, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := deal.EvaluateTrigger(tt.trigger, snapshot, decimal.NewFromInt(tt.amount), decimal.NewFromInt(tt.value))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateTrigger_UnknownType_ReturnsError(t *testing.T) {
	_, err := deal.EvaluateTrigger(deal.TriggerType("Birthday"), deal.CustomerSnapshot{}, decimal.Zero, decimal.Zero)

	assert.ErrorIs(t, err, deal.ErrUnsupportedTrigger)
}

func TestTriggerTypes_AllHaveEvaluators(t *testing.T) {
	for _, tt := range deal.TriggerTypes() {
		assert.True(t, tt.IsValid(), "trigger type %q has no evaluator", tt)

		_, err := deal.EvaluateTrigger(tt, deal.CustomerSnapshot{}, decimal.Zero, decimal.Zero)
		assert.NoError(t, err, "trigger type %q", tt)
	}
}

func TestSnapshotOf_UsesPrePurchaseState(t *testing.T) {
	c, err := customer.ReconstructCustomer(customer.CustomerState{
		CustomerID:           shared.MustEntityID[customer.CustomerMarker](5),
		TenantID:             testTenantID,
		Name:                 "Bob",
		TotalDots:            40,
		TotalSpent:           decimal.NewFromInt(4),
		TotalVisits:          9,
		ConsecutiveDayStreak: 2,
		IsActive:             true,
		Version:              3,
	})
	require.NoError(t, err)

	snapshot := deal.SnapshotOf(c)
	require.NoError(t, c.RecordPurchase(decimal.NewFromInt(10), customer.Dots{}, time.Now()))

	assert.Equal(t, 9, snapshot.TotalVisits)
	assert.Equal(t, 40, snapshot.TotalDots)
	assert.Equal(t, 2, snapshot.ConsecutiveDayStreak)
	assert.True(t, snapshot.CustomerID.Equals(c.CustomerID()))
}
