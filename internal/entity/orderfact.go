package entity

import (
	"database/sql"
	"time"
)

// OrderFact is the lifetime aggregate record for one order. Classification and
// attribution fields are immutable after creation; the revenue rollups
// accumulate as transactions are recorded and must always equal the sum of the
// order's transactions.
type OrderFact struct {
	ID              int            `db:"id"`
	AccountID       int            `db:"account_id"`
	OrderID         string         `db:"order_id"`
	FunnelID        sql.NullInt64  `db:"funnel_id"`
	MainProductID   sql.NullInt64  `db:"main_product_id"`
	Bump1ProductID  sql.NullInt64  `db:"bump_1_product_id"`
	Bump2ProductID  sql.NullInt64  `db:"bump_2_product_id"`
	HasSubscription bool           `db:"has_subscription"`
	CustomerEmail   sql.NullString `db:"customer_email"`
	CustomerCountry sql.NullString `db:"customer_country"`
	CustomerState   sql.NullString `db:"customer_state"`
	UTMSource       sql.NullString `db:"utm_source"`
	UTMMedium       sql.NullString `db:"utm_medium"`
	UTMCampaign     sql.NullString `db:"utm_campaign"`
	UTMTerm         sql.NullString `db:"utm_term"`
	UTMContent      sql.NullString `db:"utm_content"`

	// Lifetime rollups in integer minor units, maintained by the
	// transaction-recording subsystem. Never recomputed at read time.
	TotalRevenue    int64 `db:"total_revenue"`
	NetRevenue      int64 `db:"net_revenue"`
	MRRContribution int64 `db:"mrr_contribution"`
	ARRContribution int64 `db:"arr_contribution"`

	OriginalOrderDate time.Time `db:"original_order_date"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// BumpProductIDs returns the populated bump offer slots in slot order.
func (of *OrderFact) BumpProductIDs() []int64 {
	ids := make([]int64, 0, 2)
	if of.Bump1ProductID.Valid {
		ids = append(ids, of.Bump1ProductID.Int64)
	}
	if of.Bump2ProductID.Valid {
		ids = append(ids, of.Bump2ProductID.Int64)
	}
	return ids
}

// OrderFactInsert is the shape accepted by the recording subsystem when a new
// order is first seen.
type OrderFactInsert struct {
	OrderID           string         `db:"order_id" valid:"-"`
	FunnelID          sql.NullInt64  `db:"funnel_id" valid:"-"`
	MainProductID     sql.NullInt64  `db:"main_product_id" valid:"-"`
	Bump1ProductID    sql.NullInt64  `db:"bump_1_product_id" valid:"-"`
	Bump2ProductID    sql.NullInt64  `db:"bump_2_product_id" valid:"-"`
	HasSubscription   bool           `db:"has_subscription" valid:"-"`
	CustomerEmail     string         `db:"customer_email" valid:"required,email"`
	CustomerCountry   sql.NullString `db:"customer_country" valid:"-"`
	CustomerState     sql.NullString `db:"customer_state" valid:"-"`
	UTMSource         sql.NullString `db:"utm_source" valid:"-"`
	UTMMedium         sql.NullString `db:"utm_medium" valid:"-"`
	UTMCampaign       sql.NullString `db:"utm_campaign" valid:"-"`
	UTMTerm           sql.NullString `db:"utm_term" valid:"-"`
	UTMContent        sql.NullString `db:"utm_content" valid:"-"`
	OriginalOrderDate time.Time      `db:"original_order_date" valid:"required"`
}
