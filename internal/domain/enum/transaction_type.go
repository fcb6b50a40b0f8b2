package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionType represents the kind of ledger entry a sale records
type TransactionType int

const (
	TransactionTypeSale       TransactionType = 0
	TransactionTypeReturn     TransactionType = 1
	TransactionTypeAdjustment TransactionType = 2
)

func (t TransactionType) String() string {
	return [...]string{"sale", "return", "adjustment"}[t]
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TransactionType(i)
		return nil
	}
	switch str {
	case "sale":
		*t = TransactionTypeSale
	case "return":
		*t = TransactionTypeReturn
	case "adjustment":
		*t = TransactionTypeAdjustment
	}
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TransactionType) Scan(value interface{}) error {
	if value == nil {
		*t = TransactionTypeSale
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TransactionType(v)
	case int:
		*t = TransactionType(v)
	}
	return nil
}
