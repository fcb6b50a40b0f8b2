package enum

import "encoding/json"

// Priority ranks a generated recommendation. Higher values sort first.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = Priority(i)
		return nil
	}
	switch str {
	case "High":
		*p = PriorityHigh
	case "Medium":
		*p = PriorityMedium
	case "Low":
		*p = PriorityLow
	}
	return nil
}
