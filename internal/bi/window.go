package bi

import (
	"github.com/funnelgen/funnelgen-manager/internal/entity"
)

// PeriodTotals are window-scoped aggregates in integer minor units. Refunds
// carry negative amounts and net the totals down.
type PeriodTotals struct {
	Revenue          int64
	NetRevenue       int64
	TransactionCount int
}

// SelectWindow partitions the order's transactions to those whose ProcessedAt
// falls inside [w.From, w.To] inclusive and sums the period totals. Input
// order is preserved; nothing is re-sorted. An empty result means the order
// had no activity in the period and must not appear in the report.
func SelectWindow(transactions []entity.Transaction, w TimeRange) ([]entity.Transaction, PeriodTotals) {
	var selected []entity.Transaction
	var totals PeriodTotals
	for _, t := range transactions {
		if t.ProcessedAt.Before(w.From) || t.ProcessedAt.After(w.To) {
			continue
		}
		selected = append(selected, t)
		totals.Revenue += t.AmountTotal
		totals.NetRevenue += t.AmountNet
		totals.TransactionCount++
	}
	return selected, totals
}
