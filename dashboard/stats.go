package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
)

// FilterAll selects every loaded order.
const FilterAll = "All"

// Stats holds per-status order counts and revenue. Orders without a
// recognized status are not counted.
type Stats struct {
	PendingCount   int `json:"pendingCount"`
	DispatchCount  int `json:"dispatchCount"`
	CompletedCount int `json:"completedCount"`

	PendingRevenue   decimal.Decimal `json:"pendingRevenue"`
	DispatchRevenue  decimal.Decimal `json:"dispatchRevenue"`
	CompletedRevenue decimal.Decimal `json:"completedRevenue"`
}

// Aggregate computes Stats over orders.
func Aggregate(orders []models.Order) Stats {
	s := Stats{
		PendingRevenue:   decimal.Zero,
		DispatchRevenue:  decimal.Zero,
		CompletedRevenue: decimal.Zero,
	}
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusPending:
			s.PendingCount++
			s.PendingRevenue = s.PendingRevenue.Add(o.Total)
		case models.OrderStatusDispatch:
			s.DispatchCount++
			s.DispatchRevenue = s.DispatchRevenue.Add(o.Total)
		case models.OrderStatusSuccess:
			s.CompletedCount++
			s.CompletedRevenue = s.CompletedRevenue.Add(o.Total)
		}
	}
	return s
}

// Categorized is the number of orders counted in s.
func (s Stats) Categorized() int {
	return s.PendingCount + s.DispatchCount + s.CompletedCount
}

// PendingCount is the badge on the pending filter.
func PendingCount(orders []models.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status == models.OrderStatusPending {
			n++
		}
	}
	return n
}

// NormalizeFilter maps anything that is not a recognized status to FilterAll.
func NormalizeFilter(filter string) string {
	if models.OrderStatus(filter).Valid() {
		return filter
	}
	return FilterAll
}

// Filter returns the orders matching filter, preserving order.
// FilterAll returns the full set.
func Filter(orders []models.Order, filter string) []models.Order {
	filter = NormalizeFilter(filter)
	if filter == FilterAll {
		return orders
	}
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == filter {
			out = append(out, o)
		}
	}
	return out
}

// ToggleDetails returns the order whose detail panel should be open after
// id is selected while open is showing.
func ToggleDetails(open, id string) string {
	if open == id {
		return ""
	}
	return id
}
