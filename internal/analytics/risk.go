package analytics

import (
	"time"

	"github.com/sarisense/sarisense-api/internal/domain/enum"
)

// RiskThresholds holds the heuristic cutoffs for credit risk tiers. Balances
// are in centavos.
type RiskThresholds struct {
	HighOverdueDays   int
	HighBalance       int64
	MediumOverdueDays int
	MediumBalance     int64
}

// DefaultRiskThresholds returns the store's stock heuristics: high risk past
// two weeks or over ₱1000 outstanding, medium past one week or over ₱500.
func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{
		HighOverdueDays:   14,
		HighBalance:       100000,
		MediumOverdueDays: 7,
		MediumBalance:     50000,
	}
}

// Advisory strings per tier. High risk is the only one that asks for
// immediate contact.
const (
	riskAdviceHigh   = "Contact customer immediately - overdue utang needs collection"
	riskAdviceMedium = "Follow up on payment within the week"
	riskAdviceLow    = "Customer is in good standing"
)

// ClassifyRisk assigns a risk tier to one credit customer using the default
// thresholds.
func ClassifyRisk(customer CustomerAccount, credits []CreditRecord, now time.Time) CreditRisk {
	return ClassifyRiskWith(DefaultRiskThresholds(), customer, credits, now)
}

// ClassifyRiskWith assigns a risk tier using explicit thresholds. The tiers
// are evaluated high before medium; the first match wins. Overdue days count
// from the customer's most recent credit activity, and the balance is the
// sum of pending and overdue obligations.
func ClassifyRiskWith(th RiskThresholds, customer CustomerAccount, credits []CreditRecord, now time.Time) CreditRisk {
	var balance int64
	var lastActivity time.Time
	for _, c := range credits {
		if c.Status == enum.PaymentStatusPending || c.Status == enum.PaymentStatusOverdue {
			balance += c.Amount
		}
		if c.CreatedAt.After(lastActivity) {
			lastActivity = c.CreatedAt
		}
	}

	overdueDays := 0
	if !lastActivity.IsZero() {
		if d := int(now.Sub(lastActivity).Hours() / 24); d > 0 {
			overdueDays = d
		}
	}

	risk := CreditRisk{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		TotalCredit:  balance,
		OverdueDays:  overdueDays,
	}

	switch {
	case overdueDays > th.HighOverdueDays || balance > th.HighBalance:
		risk.RiskLevel = enum.RiskLevelHigh
		risk.Recommendation = riskAdviceHigh
	case overdueDays > th.MediumOverdueDays || balance > th.MediumBalance:
		risk.RiskLevel = enum.RiskLevelMedium
		risk.Recommendation = riskAdviceMedium
	default:
		risk.RiskLevel = enum.RiskLevelLow
		risk.Recommendation = riskAdviceLow
	}
	return risk
}
