package dto

import (
	"database/sql"
	"time"

	"github.com/funnelgen/funnelgen-manager/internal/entity"
)

// CreateOrderFactRequest is the recording subsystem's order creation payload.
type CreateOrderFactRequest struct {
	OrderID           string    `json:"order_id,omitempty"`
	FunnelID          *int64    `json:"funnel_id,omitempty"`
	MainProductID     *int64    `json:"main_product_id,omitempty"`
	Bump1ProductID    *int64    `json:"bump_1_product_id,omitempty"`
	Bump2ProductID    *int64    `json:"bump_2_product_id,omitempty"`
	HasSubscription   bool      `json:"has_subscription"`
	CustomerEmail     string    `json:"customer_email"`
	CustomerCountry   *string   `json:"customer_country,omitempty"`
	CustomerState     *string   `json:"customer_state,omitempty"`
	UTMSource         *string   `json:"utm_source,omitempty"`
	UTMMedium         *string   `json:"utm_medium,omitempty"`
	UTMCampaign       *string   `json:"utm_campaign,omitempty"`
	UTMTerm           *string   `json:"utm_term,omitempty"`
	UTMContent        *string   `json:"utm_content,omitempty"`
	OriginalOrderDate time.Time `json:"original_order_date"`
}

// ToEntity converts the request to the store insert shape.
func (r *CreateOrderFactRequest) ToEntity() *entity.OrderFactInsert {
	return &entity.OrderFactInsert{
		OrderID:           r.OrderID,
		FunnelID:          nullInt64(r.FunnelID),
		MainProductID:     nullInt64(r.MainProductID),
		Bump1ProductID:    nullInt64(r.Bump1ProductID),
		Bump2ProductID:    nullInt64(r.Bump2ProductID),
		HasSubscription:   r.HasSubscription,
		CustomerEmail:     r.CustomerEmail,
		CustomerCountry:   nullString(r.CustomerCountry),
		CustomerState:     nullString(r.CustomerState),
		UTMSource:         nullString(r.UTMSource),
		UTMMedium:         nullString(r.UTMMedium),
		UTMCampaign:       nullString(r.UTMCampaign),
		UTMTerm:           nullString(r.UTMTerm),
		UTMContent:        nullString(r.UTMContent),
		OriginalOrderDate: r.OriginalOrderDate,
	}
}

// RecordTransactionRequest is the recording subsystem's transaction payload.
// Amounts are signed integer minor units; refunds are negative.
type RecordTransactionRequest struct {
	OrderFactID    int       `json:"order_fact_id"`
	Type           string    `json:"type"`
	AmountTotal    int64     `json:"amount_total"`
	AmountNet      int64     `json:"amount_net"`
	AmountSubtotal int64     `json:"amount_subtotal"`
	AmountTax      int64     `json:"amount_tax"`
	AmountDiscount int64     `json:"amount_discount"`
	CurrencyCode   string    `json:"currency_code"`
	ProcessedAt    time.Time `json:"processed_at"`
}

// ToEntity converts the request to the store insert shape.
func (r *RecordTransactionRequest) ToEntity() *entity.TransactionInsert {
	return &entity.TransactionInsert{
		OrderFactID:    r.OrderFactID,
		Type:           entity.TransactionTypeName(r.Type),
		AmountTotal:    r.AmountTotal,
		AmountNet:      r.AmountNet,
		AmountSubtotal: r.AmountSubtotal,
		AmountTax:      r.AmountTax,
		AmountDiscount: r.AmountDiscount,
		CurrencyCode:   r.CurrencyCode,
		ProcessedAt:    r.ProcessedAt,
	}
}

// CreatedResponse acknowledges a write with the new row id.
type CreatedResponse struct {
	ID int `json:"id"`
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
