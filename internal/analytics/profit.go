package analytics

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"
)

// ProductProfit is a product's margin totalled across every date bucket
type ProductProfit struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	QuantitySold int       `json:"quantity_sold"`
	Profit       int64     `json:"-"` // centavos
}

// MarshalJSON renders the centavo profit as a decimal peso amount
func (p ProductProfit) MarshalJSON() ([]byte, error) {
	type Alias ProductProfit
	return json.Marshal(&struct {
		Alias
		Profit float64 `json:"profit"`
	}{
		Alias:  Alias(p),
		Profit: float64(p.Profit) / 100,
	})
}

// TopProfitable folds the per-date product summaries into one total per
// product and returns the n most profitable, highest first. Ties keep the
// order products first appeared in the summaries, so the ranking is stable
// across recomputes of the same data.
func TopProfitable(s Summaries, n int) []ProductProfit {
	totals := make(map[uuid.UUID]*ProductProfit)
	var order []uuid.UUID

	for _, ps := range s.ByProduct {
		total, ok := totals[ps.ProductID]
		if !ok {
			total = &ProductProfit{ProductID: ps.ProductID, ProductName: ps.ProductName}
			totals[ps.ProductID] = total
			order = append(order, ps.ProductID)
		}
		total.QuantitySold += ps.QuantitySold
		total.Profit += ps.Profit
	}

	out := make([]ProductProfit, 0, len(order))
	for _, id := range order {
		out = append(out, *totals[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Profit > out[j].Profit
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
