package dto

import (
	"github.com/funnelgen/funnelgen-manager/internal/entity"
)

// DateTimeFormat is the wire format for instants in BI reports.
const DateTimeFormat = "2006-01-02 15:04:05"

// ListOrdersRequest is the tool/API input of the order aggregation engine.
// Pointer fields distinguish "absent" from zero values so that an explicit
// limit of 0 is rejected rather than defaulted.
type ListOrdersRequest struct {
	DateRange       *string `json:"date_range,omitempty"`
	ProductID       *int64  `json:"product_id,omitempty"`
	FunnelID        *int64  `json:"funnel_id,omitempty"`
	UTMSource       *string `json:"utm_source,omitempty"`
	UTMMedium       *string `json:"utm_medium,omitempty"`
	UTMCampaign     *string `json:"utm_campaign,omitempty"`
	UTMTerm         *string `json:"utm_term,omitempty"`
	UTMContent      *string `json:"utm_content,omitempty"`
	CustomerCountry *string `json:"customer_country,omitempty"`
	HasSubscription *bool   `json:"has_subscription,omitempty"`
	Limit           *int    `json:"limit,omitempty"`
}

// Filter converts the request's filter dimensions to the entity filter.
func (r *ListOrdersRequest) Filter() *entity.OrderFilter {
	return &entity.OrderFilter{
		ProductID:       r.ProductID,
		FunnelID:        r.FunnelID,
		UTMSource:       r.UTMSource,
		UTMMedium:       r.UTMMedium,
		UTMCampaign:     r.UTMCampaign,
		UTMTerm:         r.UTMTerm,
		UTMContent:      r.UTMContent,
		CustomerCountry: r.CustomerCountry,
		HasSubscription: r.HasSubscription,
	}
}

// OrdersReport is the success payload of the order aggregation engine.
type OrdersReport struct {
	Success   bool          `json:"success"`
	DateRange string        `json:"date_range"`
	DateFrom  string        `json:"date_from"`
	DateTo    string        `json:"date_to"`
	Summary   OrdersSummary `json:"summary"`
	Orders    []OrderEntry  `json:"orders"`
}

// OrdersSummary covers the returned (post-limit) order set only.
type OrdersSummary struct {
	TotalOrders      int    `json:"total_orders"`
	PeriodRevenue    string `json:"period_revenue"`
	PeriodNetRevenue string `json:"period_net_revenue"`
}

type OrderEntry struct {
	ID                 int                `json:"id"`
	OrderID            string             `json:"order_id"`
	FunnelID           int64              `json:"funnel_id"`
	CustomerEmail      string             `json:"customer_email"`
	CustomerCountry    string             `json:"customer_country"`
	HasSubscription    bool               `json:"has_subscription"`
	Products           OrderProducts      `json:"products"`
	UTMData            OrderUTMData       `json:"utm_data"`
	LifetimeTotals     OrderLifetime      `json:"lifetime_totals"`
	PeriodTransactions []TransactionEntry `json:"period_transactions"`
	PeriodTotals       OrderPeriodTotals  `json:"period_totals"`
}

type OrderProducts struct {
	MainProductID int64   `json:"main_product_id"`
	BumpOffers    []int64 `json:"bump_offers"`
}

type OrderUTMData struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Term     string `json:"term"`
	Content  string `json:"content"`
}

// OrderLifetime carries the all-time rollups, formatted.
type OrderLifetime struct {
	TotalRevenue    string `json:"total_revenue"`
	NetRevenue      string `json:"net_revenue"`
	MRRContribution string `json:"mrr_contribution"`
	ARRContribution string `json:"arr_contribution"`
}

type TransactionEntry struct {
	ID             int    `json:"id"`
	Type           string `json:"type"`
	TypeLabel      string `json:"type_label"`
	AmountTotal    string `json:"amount_total"`
	AmountNet      string `json:"amount_net"`
	AmountSubtotal string `json:"amount_subtotal"`
	AmountTax      string `json:"amount_tax"`
	AmountDiscount string `json:"amount_discount"`
	CurrencyCode   string `json:"currency_code"`
	ProcessedAt    string `json:"processed_at"`
}

// OrderPeriodTotals are the window-scoped aggregates, formatted.
type OrderPeriodTotals struct {
	Revenue          string `json:"revenue"`
	NetRevenue       string `json:"net_revenue"`
	TransactionCount int    `json:"transaction_count"`
}

// ErrorResponse is the structured failure payload of the BI surface.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
