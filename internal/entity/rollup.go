package entity

// RollupDrift is a detected mismatch between an order fact's lifetime rollups
// and the sum of its transactions.
type RollupDrift struct {
	OrderFactID  int   `db:"order_fact_id"`
	AccountID    int   `db:"account_id"`
	TotalRevenue int64 `db:"total_revenue"`
	NetRevenue   int64 `db:"net_revenue"`
	TxnTotal     int64 `db:"txn_total"`
	TxnNet       int64 `db:"txn_net"`
}
