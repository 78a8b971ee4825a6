package bi

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/funnelgen/funnelgen-manager/internal/dependency"
	"github.com/funnelgen/funnelgen-manager/internal/dto"
	"github.com/funnelgen/funnelgen-manager/internal/entity"
)

// Limit bounds for a single report.
const (
	MinLimit     = 1
	MaxLimit     = 1000
	DefaultLimit = 100
)

// Engine computes windowed order/transaction reports. It is stateless and
// read-only: every call operates on one bulk snapshot read and produces an
// independent result.
type Engine struct {
	repo dependency.BI
	now  func() time.Time
}

// New creates an engine over the given read store.
func New(repo dependency.BI) *Engine {
	return &Engine{repo: repo, now: time.Now}
}

// NewWithClock creates an engine with a fixed clock source.
func NewWithClock(repo dependency.BI, now func() time.Time) *Engine {
	return &Engine{repo: repo, now: now}
}

type windowedOrder struct {
	fact         entity.OrderFact
	transactions []entity.Transaction
	totals       PeriodTotals
}

// ListOrders runs the aggregation for one account: resolve and clamp the
// window, validate the limit, filter candidates, select per-order period
// transactions, drop orders without period activity, truncate, and summarize
// the returned set. Validation failures short-circuit before any store read.
func (e *Engine) ListOrders(ctx context.Context, accountID int, req *dto.ListOrdersRequest) (*dto.OrdersReport, error) {
	if req == nil {
		req = &dto.ListOrdersRequest{}
	}

	dateRange := Last90Days
	if req.DateRange != nil {
		parsed, err := ParseDateRange(*req.DateRange)
		if err != nil {
			return nil, err
		}
		dateRange = parsed
	}
	dateRange = EnforceMaxLookback(dateRange)

	limit := DefaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit < MinLimit || limit > MaxLimit {
		return nil, newInvalidLimitError(limit)
	}

	window := dateRange.Resolve(e.now())

	facts, err := e.repo.ListOrderFacts(ctx, accountID)
	if err != nil {
		return nil, newUpstreamReadError(err)
	}

	filter := req.Filter()
	candidates := make([]entity.OrderFact, 0, len(facts))
	for _, of := range facts {
		if MatchesFilter(&of, filter) {
			candidates = append(candidates, of)
		}
	}

	windowed, err := e.windowCandidates(ctx, accountID, candidates, window)
	if err != nil {
		return nil, err
	}

	if len(windowed) > limit {
		windowed = windowed[:limit]
	}

	report := &dto.OrdersReport{
		Success:   true,
		DateRange: dateRange.String(),
		DateFrom:  window.From.Format(dto.DateTimeFormat),
		DateTo:    window.To.Format(dto.DateTimeFormat),
		Orders:    make([]dto.OrderEntry, 0, len(windowed)),
	}

	// Summary sums stay in minor units until the final format call.
	var periodRevenue, periodNetRevenue int64
	for _, wo := range windowed {
		report.Orders = append(report.Orders, buildOrderEntry(wo))
		periodRevenue += wo.totals.Revenue
		periodNetRevenue += wo.totals.NetRevenue
	}
	report.Summary = dto.OrdersSummary{
		TotalOrders:      len(windowed),
		PeriodRevenue:    FormatMinorUnits(periodRevenue),
		PeriodNetRevenue: FormatMinorUnits(periodNetRevenue),
	}

	return report, nil
}

// windowCandidates fetches the transactions for every candidate in one bulk
// read and selects each order's window in parallel. Per-order selection is
// independent; candidate order survives via the indexed result slice, and the
// summary work above only starts after the group joins.
func (e *Engine) windowCandidates(ctx context.Context, accountID int, candidates []entity.OrderFact, window TimeRange) ([]windowedOrder, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	ids := make([]int, len(candidates))
	for i, of := range candidates {
		ids[i] = of.ID
	}
	byOrder, err := e.repo.ListTransactionsByOrderFactIDs(ctx, accountID, ids)
	if err != nil {
		return nil, newUpstreamReadError(err)
	}

	results := make([]*windowedOrder, len(candidates))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, of := range candidates {
		g.Go(func() error {
			selected, totals := SelectWindow(byOrder[of.ID], window)
			if totals.TransactionCount == 0 {
				return nil
			}
			results[i] = &windowedOrder{fact: of, transactions: selected, totals: totals}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	windowed := make([]windowedOrder, 0, len(candidates))
	for _, r := range results {
		if r != nil {
			windowed = append(windowed, *r)
		}
	}
	return windowed, nil
}

func buildOrderEntry(wo windowedOrder) dto.OrderEntry {
	of := wo.fact

	entry := dto.OrderEntry{
		ID:              of.ID,
		OrderID:         of.OrderID,
		FunnelID:        of.FunnelID.Int64,
		CustomerEmail:   of.CustomerEmail.String,
		CustomerCountry: of.CustomerCountry.String,
		HasSubscription: of.HasSubscription,
		Products: dto.OrderProducts{
			MainProductID: of.MainProductID.Int64,
			BumpOffers:    of.BumpProductIDs(),
		},
		UTMData: dto.OrderUTMData{
			Source:   of.UTMSource.String,
			Medium:   of.UTMMedium.String,
			Campaign: of.UTMCampaign.String,
			Term:     of.UTMTerm.String,
			Content:  of.UTMContent.String,
		},
		LifetimeTotals: dto.OrderLifetime{
			TotalRevenue:    FormatMinorUnits(of.TotalRevenue),
			NetRevenue:      FormatMinorUnits(of.NetRevenue),
			MRRContribution: FormatMinorUnits(of.MRRContribution),
			ARRContribution: FormatMinorUnits(of.ARRContribution),
		},
		PeriodTransactions: make([]dto.TransactionEntry, 0, len(wo.transactions)),
		PeriodTotals: dto.OrderPeriodTotals{
			Revenue:          FormatMinorUnits(wo.totals.Revenue),
			NetRevenue:       FormatMinorUnits(wo.totals.NetRevenue),
			TransactionCount: wo.totals.TransactionCount,
		},
	}

	for _, t := range wo.transactions {
		entry.PeriodTransactions = append(entry.PeriodTransactions, dto.TransactionEntry{
			ID:             t.ID,
			Type:           t.Type.String(),
			TypeLabel:      t.Type.Label(),
			AmountTotal:    FormatMinorUnits(t.AmountTotal),
			AmountNet:      FormatMinorUnits(t.AmountNet),
			AmountSubtotal: FormatMinorUnits(t.AmountSubtotal),
			AmountTax:      FormatMinorUnits(t.AmountTax),
			AmountDiscount: FormatMinorUnits(t.AmountDiscount),
			CurrencyCode:   t.CurrencyCode,
			ProcessedAt:    t.ProcessedAt.Format(dto.DateTimeFormat),
		})
	}

	return entry
}
