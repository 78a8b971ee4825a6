package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/funnelgen/funnelgen-manager/internal/entity"
)

//go:generate mockery --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	// BI is the read side consumed by the aggregation engine. Both methods
	// are tenant-scoped snapshot reads with no partial-result handling.
	BI interface {
		// ListOrderFacts returns the account's order facts ordered by
		// original order date descending, id descending.
		ListOrderFacts(ctx context.Context, accountID int) ([]entity.OrderFact, error)
		// ListTransactionsByOrderFactIDs returns each order's transactions
		// keyed by order fact id, in processed_at ascending insertion order.
		ListTransactionsByOrderFactIDs(ctx context.Context, accountID int, orderFactIDs []int) (map[int][]entity.Transaction, error)
	}

	// OrderFacts is the recording subsystem: it creates order facts and
	// appends transactions while maintaining the lifetime rollups.
	OrderFacts interface {
		ContextStore
		CreateOrderFact(ctx context.Context, accountID int, insert *entity.OrderFactInsert) (int, error)
		RecordTransaction(ctx context.Context, accountID int, insert *entity.TransactionInsert) (int, error)
		GetOrderFactByOrderID(ctx context.Context, accountID int, orderID string) (*entity.OrderFact, error)
		// ListRollupDrift returns order fact ids whose rollups no longer
		// equal the sum of their transactions.
		ListRollupDrift(ctx context.Context, limit int) ([]entity.RollupDrift, error)
		// RepairRollups resets an order fact's rollups from its transactions.
		RepairRollups(ctx context.Context, orderFactID int) error
	}

	Repository interface {
		BI() BI
		OrderFacts() OrderFacts
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		NamedQuery(query string, arg interface{}) (*sqlx.Rows, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
