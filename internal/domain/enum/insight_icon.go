package enum

import "encoding/json"

// InsightIcon tags a recommendation with the pictogram the UI should render.
// The core never deals in icon component names, only in these variants.
type InsightIcon int

const (
	InsightIconPackage InsightIcon = iota
	InsightIconUsers
	InsightIconTrendingUp
	InsightIconTrendingDown
	InsightIconTarget
	InsightIconAlertTriangle
)

func (i InsightIcon) String() string {
	return [...]string{"Package", "Users", "TrendingUp", "TrendingDown", "Target", "AlertTriangle"}[i]
}

func (i InsightIcon) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

func (i *InsightIcon) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*i = InsightIcon(n)
		return nil
	}
	switch str {
	case "Package":
		*i = InsightIconPackage
	case "Users":
		*i = InsightIconUsers
	case "TrendingUp":
		*i = InsightIconTrendingUp
	case "TrendingDown":
		*i = InsightIconTrendingDown
	case "Target":
		*i = InsightIconTarget
	case "AlertTriangle":
		*i = InsightIconAlertTriangle
	}
	return nil
}
