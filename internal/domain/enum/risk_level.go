package enum

import "encoding/json"

// RiskLevel tiers a credit customer by how likely collection is to fail
type RiskLevel int

const (
	RiskLevelLow    RiskLevel = 0
	RiskLevelMedium RiskLevel = 1
	RiskLevelHigh   RiskLevel = 2
)

func (r RiskLevel) String() string {
	return [...]string{"Low", "Medium", "High"}[r]
}

func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*r = RiskLevel(i)
		return nil
	}
	switch str {
	case "Low":
		*r = RiskLevelLow
	case "Medium":
		*r = RiskLevelMedium
	case "High":
		*r = RiskLevelHigh
	}
	return nil
}
