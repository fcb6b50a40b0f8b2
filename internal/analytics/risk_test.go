package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRiskTiers(t *testing.T) {
	now := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	customer := CustomerAccount{ID: uuid.New(), Name: "Maria Santos"}

	tests := []struct {
		name        string
		overdueDays int
		balance     int64 // centavos
		want        enum.RiskLevel
	}{
		{"days threshold dominates", 20, 10000, enum.RiskLevelHigh},
		{"balance threshold dominates", 1, 60000, enum.RiskLevelMedium},
		{"clean customer", 0, 0, enum.RiskLevelLow},
		{"high balance alone", 0, 150000, enum.RiskLevelHigh},
		{"medium days alone", 8, 10000, enum.RiskLevelMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credits := []CreditRecord{{
				Amount:    tt.balance,
				Status:    enum.PaymentStatusPending,
				CreatedAt: now.AddDate(0, 0, -tt.overdueDays),
			}}

			risk := ClassifyRisk(customer, credits, now)

			assert.Equal(t, tt.want, risk.RiskLevel)
			assert.Equal(t, tt.balance, risk.TotalCredit)
			assert.Equal(t, tt.overdueDays, risk.OverdueDays)
		})
	}
}

func TestClassifyRiskAdvisories(t *testing.T) {
	now := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	customer := CustomerAccount{ID: uuid.New(), Name: "Juan Dela Cruz"}

	high := ClassifyRisk(customer, []CreditRecord{{
		Amount: 10000, Status: enum.PaymentStatusOverdue, CreatedAt: now.AddDate(0, 0, -20),
	}}, now)
	assert.Contains(t, high.Recommendation, "immediately")

	low := ClassifyRisk(customer, nil, now)
	assert.Equal(t, enum.RiskLevelLow, low.RiskLevel)
	assert.Contains(t, low.Recommendation, "good standing")
}

func TestClassifyRiskIgnoresSettledCredits(t *testing.T) {
	now := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	customer := CustomerAccount{ID: uuid.New(), Name: "Ana Reyes"}

	credits := []CreditRecord{
		{Amount: 200000, Status: enum.PaymentStatusPaid, CreatedAt: now.AddDate(0, 0, -30)},
		{Amount: 150000, Status: enum.PaymentStatusCancelled, CreatedAt: now.AddDate(0, 0, -25)},
		{Amount: 10000, Status: enum.PaymentStatusPending, CreatedAt: now.AddDate(0, 0, -2)},
	}

	risk := ClassifyRisk(customer, credits, now)

	assert.Equal(t, int64(10000), risk.TotalCredit)
	// Last activity is the most recent credit, regardless of status.
	assert.Equal(t, 2, risk.OverdueDays)
	assert.Equal(t, enum.RiskLevelLow, risk.RiskLevel)
}

func TestClassifyRiskWithCustomThresholds(t *testing.T) {
	now := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	customer := CustomerAccount{ID: uuid.New(), Name: "Maria Santos"}
	th := RiskThresholds{HighOverdueDays: 3, HighBalance: 100000, MediumOverdueDays: 1, MediumBalance: 50000}

	credits := []CreditRecord{{Amount: 1000, Status: enum.PaymentStatusPending, CreatedAt: now.AddDate(0, 0, -4)}}

	risk := ClassifyRiskWith(th, customer, credits, now)

	assert.Equal(t, enum.RiskLevelHigh, risk.RiskLevel)
}
