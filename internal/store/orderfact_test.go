package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnelgen/funnelgen-manager/internal/entity"
	gerr "github.com/funnelgen/funnelgen-manager/internal/errors"
)

func newTestStore(t *testing.T) (*MYSQLStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &MYSQLStore{db: sqlx.NewDb(db, "mysql")}, mock
}

func TestListOrderFacts(t *testing.T) {
	ms, mock := newTestStore(t)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{
		"id", "account_id", "order_id", "total_revenue", "net_revenue", "original_order_date",
	}).
		AddRow(2, 42, "ord-2", 3000, 2700, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)).
		AddRow(1, 42, "ord-1", 1000, 900, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery("SELECT (.+) FROM order_facts WHERE account_id = \\?").
		WithArgs(42).
		WillReturnRows(rows)

	facts, err := ms.BI().ListOrderFacts(ctx, 42)
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, 2, facts[0].ID)
	assert.Equal(t, "ord-2", facts[0].OrderID)
	assert.Equal(t, int64(3000), facts[0].TotalRevenue)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactionsByOrderFactIDs(t *testing.T) {
	ms, mock := newTestStore(t)
	ctx := context.Background()

	t.Run("groups by order fact id", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "order_fact_id", "account_id", "type", "amount_total", "amount_net", "currency_code", "processed_at",
		}).
			AddRow(10, 1, 42, "payment", 1000, 900, "USD", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)).
			AddRow(11, 1, 42, "refund", -500, -500, "USD", time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)).
			AddRow(20, 2, 42, "payment", 2000, 1800, "USD", time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC))

		mock.ExpectQuery("SELECT (.+) FROM transactions WHERE account_id = \\? AND order_fact_id IN").
			WithArgs(42, 1, 2).
			WillReturnRows(rows)

		byOrder, err := ms.BI().ListTransactionsByOrderFactIDs(ctx, 42, []int{1, 2})
		require.NoError(t, err)
		require.Len(t, byOrder, 2)
		require.Len(t, byOrder[1], 2)
		require.Len(t, byOrder[2], 1)
		assert.Equal(t, entity.Refund, byOrder[1][1].Type)
		assert.Equal(t, int64(-500), byOrder[1][1].AmountTotal)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty id list skips the query", func(t *testing.T) {
		byOrder, err := ms.BI().ListTransactionsByOrderFactIDs(ctx, 42, nil)
		require.NoError(t, err)
		assert.Empty(t, byOrder)
	})
}

func TestCreateOrderFact(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		ms, mock := newTestStore(t)

		mock.ExpectExec("INSERT INTO order_facts").
			WillReturnResult(sqlmock.NewResult(7, 1))

		id, err := ms.OrderFacts().CreateOrderFact(ctx, 42, &entity.OrderFactInsert{
			OrderID:           "ord-7",
			CustomerEmail:     "buyer@example.com",
			OriginalOrderDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, 7, id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid email fails before any query", func(t *testing.T) {
		ms, mock := newTestStore(t)

		_, err := ms.OrderFacts().CreateOrderFact(ctx, 42, &entity.OrderFactInsert{
			CustomerEmail:     "not-an-email",
			OriginalOrderDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		})
		require.ErrorIs(t, err, gerr.ErrInvalidInput)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate order id maps to conflict", func(t *testing.T) {
		ms, mock := newTestStore(t)

		mock.ExpectExec("INSERT INTO order_facts").
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'ord-7' for key 'uq_order_facts_account_order'"})

		_, err := ms.OrderFacts().CreateOrderFact(ctx, 42, &entity.OrderFactInsert{
			OrderID:           "ord-7",
			CustomerEmail:     "buyer@example.com",
			OriginalOrderDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		})
		require.ErrorIs(t, err, gerr.ErrOrderFactAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("blank order id gets generated", func(t *testing.T) {
		ms, mock := newTestStore(t)

		mock.ExpectExec("INSERT INTO order_facts").
			WillReturnResult(sqlmock.NewResult(8, 1))

		insert := &entity.OrderFactInsert{
			CustomerEmail:     "buyer@example.com",
			OriginalOrderDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		}
		_, err := ms.OrderFacts().CreateOrderFact(ctx, 42, insert)
		require.NoError(t, err)
		assert.NotEmpty(t, insert.OrderID)
	})
}

func validTransactionInsert() *entity.TransactionInsert {
	return &entity.TransactionInsert{
		OrderFactID:  1,
		Type:         entity.Payment,
		AmountTotal:  1000,
		AmountNet:    900,
		CurrencyCode: "USD",
		ProcessedAt:  time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRecordTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		ms, mock := newTestStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM order_facts WHERE id = \\? AND account_id = \\?").
			WithArgs(1, 42).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec("INSERT INTO transactions").
			WillReturnResult(sqlmock.NewResult(10, 1))
		mock.ExpectExec("UPDATE order_facts").
			WithArgs(int64(1000), int64(900), 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		id, err := ms.OrderFacts().RecordTransaction(ctx, 42, validTransactionInsert())
		require.NoError(t, err)
		assert.Equal(t, 10, id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("recurring payment refreshes mrr and arr", func(t *testing.T) {
		ms, mock := newTestStore(t)

		insert := validTransactionInsert()
		insert.Type = entity.RecurringPayment
		insert.AmountTotal = 2500
		insert.AmountNet = 2300

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM order_facts").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec("INSERT INTO transactions").
			WillReturnResult(sqlmock.NewResult(11, 1))
		mock.ExpectExec("UPDATE order_facts").
			WithArgs(int64(2500), int64(2300), 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE order_facts").
			WithArgs(int64(2500), int64(30000), 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, err := ms.OrderFacts().RecordTransaction(ctx, 42, insert)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown order fact", func(t *testing.T) {
		ms, mock := newTestStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM order_facts").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := ms.OrderFacts().RecordTransaction(ctx, 42, validTransactionInsert())
		require.ErrorIs(t, err, gerr.ErrOrderFactNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid type fails before any query", func(t *testing.T) {
		ms, mock := newTestStore(t)

		insert := validTransactionInsert()
		insert.Type = "wire_transfer"

		_, err := ms.OrderFacts().RecordTransaction(ctx, 42, insert)
		require.ErrorIs(t, err, gerr.ErrInvalidInput)
		assert.Contains(t, err.Error(), "invalid transaction type")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid currency fails before any query", func(t *testing.T) {
		ms, mock := newTestStore(t)

		insert := validTransactionInsert()
		insert.CurrencyCode = "US1"

		_, err := ms.OrderFacts().RecordTransaction(ctx, 42, insert)
		require.ErrorIs(t, err, gerr.ErrInvalidInput)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetOrderFactByOrderID(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		ms, mock := newTestStore(t)

		rows := sqlmock.NewRows([]string{"id", "account_id", "order_id"}).
			AddRow(1, 42, "ord-1")
		mock.ExpectQuery("SELECT (.+) FROM order_facts WHERE account_id = \\? AND order_id = \\?").
			WithArgs(42, "ord-1").
			WillReturnRows(rows)

		of, err := ms.OrderFacts().GetOrderFactByOrderID(ctx, 42, "ord-1")
		require.NoError(t, err)
		assert.Equal(t, 1, of.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		ms, mock := newTestStore(t)

		mock.ExpectQuery("SELECT (.+) FROM order_facts").
			WillReturnError(sql.ErrNoRows)

		_, err := ms.OrderFacts().GetOrderFactByOrderID(ctx, 42, "missing")
		require.ErrorIs(t, err, gerr.ErrOrderFactNotFound)
	})
}

func TestListRollupDrift(t *testing.T) {
	ms, mock := newTestStore(t)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{
		"order_fact_id", "account_id", "total_revenue", "net_revenue", "txn_total", "txn_net",
	}).AddRow(1, 42, 1000, 900, 1500, 1350)

	mock.ExpectQuery("LEFT JOIN transactions").
		WithArgs(100).
		WillReturnRows(rows)

	drift, err := ms.OrderFacts().ListRollupDrift(ctx, 100)
	require.NoError(t, err)
	require.Len(t, drift, 1)
	assert.Equal(t, 1, drift[0].OrderFactID)
	assert.Equal(t, int64(1500), drift[0].TxnTotal)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepairRollups(t *testing.T) {
	ms, mock := newTestStore(t)
	ctx := context.Background()

	mock.ExpectExec("UPDATE order_facts").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ms.OrderFacts().RepairRollups(ctx, 1))
	require.NoError(t, mock.ExpectationsWereMet())
}
