package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents the status of a credit (utang) obligation
type PaymentStatus int

const (
	PaymentStatusPending   PaymentStatus = 0
	PaymentStatusPaid      PaymentStatus = 1
	PaymentStatusOverdue   PaymentStatus = 2
	PaymentStatusCancelled PaymentStatus = 3
)

func (s PaymentStatus) String() string {
	return [...]string{"pending", "paid", "overdue", "cancelled"}[s]
}

// ParsePaymentStatus maps a status name to its PaymentStatus value
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch s {
	case "pending":
		return PaymentStatusPending, true
	case "paid":
		return PaymentStatusPaid, true
	case "overdue":
		return PaymentStatusOverdue, true
	case "cancelled":
		return PaymentStatusCancelled, true
	}
	return PaymentStatusPending, false
}

// IsTerminal reports whether no further transition is allowed.
// Paid and cancelled obligations are never reopened.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusCancelled
}

// CanTransitionTo reports whether the status machine allows moving to target.
// pending -> paid|overdue|cancelled, overdue -> paid|cancelled.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	if s.IsTerminal() || target == s {
		return false
	}
	switch s {
	case PaymentStatusPending:
		return target == PaymentStatusPaid || target == PaymentStatusOverdue || target == PaymentStatusCancelled
	case PaymentStatusOverdue:
		return target == PaymentStatusPaid || target == PaymentStatusCancelled
	}
	return false
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = PaymentStatusPending
	case "paid":
		*s = PaymentStatusPaid
	case "overdue":
		*s = PaymentStatusOverdue
	case "cancelled":
		*s = PaymentStatusCancelled
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
