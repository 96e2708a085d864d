package debt

import (
	"sort"

	"github.com/shopspring/decimal"
)

// GroupedDebt aggregates the debt items sharing one grouping key.
type GroupedDebt struct {
	Name         string
	Items        []DebtItem
	TotalMonthly decimal.Decimal
	TotalPending decimal.Decimal
	MaxRemaining int
}

// GroupByInstitution groups the debt set by issuing institution, sorted by
// total pending amount descending. Ties keep the original record order.
func GroupByInstitution(items []DebtItem) []GroupedDebt {
	return groupBy(items, func(item DebtItem) string { return item.Institution })
}

// GroupByPaymentMethod groups the debt set by payment method, sorted by total
// pending amount descending. Ties keep the original record order.
func GroupByPaymentMethod(items []DebtItem) []GroupedDebt {
	return groupBy(items, func(item DebtItem) string { return item.PaymentMethod })
}

func groupBy(items []DebtItem, key func(DebtItem) string) []GroupedDebt {
	index := make(map[string]int)
	var groups []GroupedDebt

	for _, item := range items {
		name := key(item)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, GroupedDebt{
				Name:         name,
				TotalMonthly: decimal.Zero,
				TotalPending: decimal.Zero,
			})
		}

		groups[i].Items = append(groups[i].Items, item)
		groups[i].TotalMonthly = groups[i].TotalMonthly.Add(item.MonthlyAmount)
		groups[i].TotalPending = groups[i].TotalPending.Add(item.PendingAmount)
		if item.Remaining > groups[i].MaxRemaining {
			groups[i].MaxRemaining = item.Remaining
		}
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].TotalPending.GreaterThan(groups[b].TotalPending)
	})

	return groups
}
