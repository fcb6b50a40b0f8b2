package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// UserRole represents a staff member's role in the store
type UserRole int

const (
	UserRoleOwner   UserRole = 0
	UserRoleManager UserRole = 1
	UserRoleCashier UserRole = 2
)

func (r UserRole) String() string {
	return [...]string{"owner", "manager", "cashier"}[r]
}

// ParseUserRole maps a role name to its UserRole value
func ParseUserRole(s string) (UserRole, bool) {
	switch s {
	case "owner":
		return UserRoleOwner, true
	case "manager":
		return UserRoleManager, true
	case "cashier":
		return UserRoleCashier, true
	}
	return UserRoleCashier, false
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*r = UserRole(i)
		return nil
	}
	switch str {
	case "owner":
		*r = UserRoleOwner
	case "manager":
		*r = UserRoleManager
	case "cashier":
		*r = UserRoleCashier
	}
	return nil
}

func (r UserRole) Value() (driver.Value, error) {
	return int64(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	if value == nil {
		*r = UserRoleCashier
		return nil
	}
	switch v := value.(type) {
	case int64:
		*r = UserRole(v)
	case int:
		*r = UserRole(v)
	}
	return nil
}
