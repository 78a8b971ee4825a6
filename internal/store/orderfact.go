package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"github.com/funnelgen/funnelgen-manager/internal/dependency"
	"github.com/funnelgen/funnelgen-manager/internal/entity"
	gerr "github.com/funnelgen/funnelgen-manager/internal/errors"
)

type biStore struct {
	*MYSQLStore
}

// BI returns the read side consumed by the aggregation engine.
func (ms *MYSQLStore) BI() dependency.BI {
	return &biStore{MYSQLStore: ms}
}

type orderFactStore struct {
	*MYSQLStore
}

// OrderFacts returns the recording subsystem.
func (ms *MYSQLStore) OrderFacts() dependency.OrderFacts {
	return &orderFactStore{MYSQLStore: ms}
}

func (bs *biStore) ListOrderFacts(ctx context.Context, accountID int) ([]entity.OrderFact, error) {
	query := `
	SELECT id, account_id, order_id, funnel_id, main_product_id,
		bump_1_product_id, bump_2_product_id, has_subscription,
		customer_email, customer_country, customer_state,
		utm_source, utm_medium, utm_campaign, utm_term, utm_content,
		total_revenue, net_revenue, mrr_contribution, arr_contribution,
		original_order_date, created_at, updated_at
	FROM order_facts
	WHERE account_id = :accountId
	ORDER BY original_order_date DESC, id DESC`

	facts, err := QueryListNamed[entity.OrderFact](ctx, bs.DB(), query, map[string]any{
		"accountId": accountID,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get order facts: %w", err)
	}
	return facts, nil
}

func (bs *biStore) ListTransactionsByOrderFactIDs(ctx context.Context, accountID int, orderFactIDs []int) (map[int][]entity.Transaction, error) {
	if len(orderFactIDs) == 0 {
		return map[int][]entity.Transaction{}, nil
	}

	query := `
	SELECT id, order_fact_id, account_id, type,
		amount_total, amount_net, amount_subtotal, amount_tax, amount_discount,
		currency_code, processed_at, created_at
	FROM transactions
	WHERE account_id = :accountId AND order_fact_id IN (:orderFactIds)
	ORDER BY processed_at ASC, id ASC`

	transactions, err := QueryListNamed[entity.Transaction](ctx, bs.DB(), query, map[string]any{
		"accountId":    accountID,
		"orderFactIds": orderFactIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get transactions: %w", err)
	}

	byOrder := make(map[int][]entity.Transaction, len(orderFactIDs))
	for _, t := range transactions {
		byOrder[t.OrderFactID] = append(byOrder[t.OrderFactID], t)
	}
	return byOrder, nil
}

func (ofs *orderFactStore) CreateOrderFact(ctx context.Context, accountID int, insert *entity.OrderFactInsert) (int, error) {
	if _, err := govalidator.ValidateStruct(insert); err != nil {
		return 0, fmt.Errorf("%w: order fact validation failed: %v", gerr.ErrInvalidInput, err)
	}
	if insert.OrderID == "" {
		insert.OrderID = uuid.New().String()
	}

	query := `
	INSERT INTO order_facts (account_id, order_id, funnel_id, main_product_id,
		bump_1_product_id, bump_2_product_id, has_subscription,
		customer_email, customer_country, customer_state,
		utm_source, utm_medium, utm_campaign, utm_term, utm_content,
		original_order_date)
	VALUES (:accountId, :orderId, :funnelId, :mainProductId,
		:bump1ProductId, :bump2ProductId, :hasSubscription,
		:customerEmail, :customerCountry, :customerState,
		:utmSource, :utmMedium, :utmCampaign, :utmTerm, :utmContent,
		:originalOrderDate)`

	id, err := ExecNamedLastId(ctx, ofs.DB(), query, map[string]any{
		"accountId":         accountID,
		"orderId":           insert.OrderID,
		"funnelId":          insert.FunnelID,
		"mainProductId":     insert.MainProductID,
		"bump1ProductId":    insert.Bump1ProductID,
		"bump2ProductId":    insert.Bump2ProductID,
		"hasSubscription":   insert.HasSubscription,
		"customerEmail":     insert.CustomerEmail,
		"customerCountry":   insert.CustomerCountry,
		"customerState":     insert.CustomerState,
		"utmSource":         insert.UTMSource,
		"utmMedium":         insert.UTMMedium,
		"utmCampaign":       insert.UTMCampaign,
		"utmTerm":           insert.UTMTerm,
		"utmContent":        insert.UTMContent,
		"originalOrderDate": insert.OriginalOrderDate,
	})
	if err != nil {
		if ofs.IsErrUniqueViolation(err) {
			return 0, gerr.ErrOrderFactAlreadyExists
		}
		return 0, fmt.Errorf("can't insert order fact: %w", err)
	}
	return id, nil
}

// RecordTransaction appends a transaction and rolls its amounts into the
// order fact's lifetime totals in the same database transaction. Recurring
// payments also refresh the MRR contribution (ARR is 12x MRR).
func (ofs *orderFactStore) RecordTransaction(ctx context.Context, accountID int, insert *entity.TransactionInsert) (int, error) {
	if _, err := govalidator.ValidateStruct(insert); err != nil {
		return 0, fmt.Errorf("%w: transaction validation failed: %v", gerr.ErrInvalidInput, err)
	}
	if !entity.ValidTransactionTypeNames[insert.Type] {
		return 0, fmt.Errorf("%w: invalid transaction type %q", gerr.ErrInvalidInput, insert.Type)
	}

	var id int
	err := ofs.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		existsQuery := `SELECT id FROM order_facts WHERE id = :orderFactId AND account_id = :accountId`
		if _, err := QueryNamedOne[struct {
			ID int `db:"id"`
		}](ctx, rep.DB(), existsQuery, map[string]any{
			"orderFactId": insert.OrderFactID,
			"accountId":   accountID,
		}); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return gerr.ErrOrderFactNotFound
			}
			return fmt.Errorf("can't check order fact: %w", err)
		}

		insertQuery := `
		INSERT INTO transactions (order_fact_id, account_id, type,
			amount_total, amount_net, amount_subtotal, amount_tax, amount_discount,
			currency_code, processed_at)
		VALUES (:orderFactId, :accountId, :type,
			:amountTotal, :amountNet, :amountSubtotal, :amountTax, :amountDiscount,
			:currencyCode, :processedAt)`

		var err error
		id, err = ExecNamedLastId(ctx, rep.DB(), insertQuery, map[string]any{
			"orderFactId":    insert.OrderFactID,
			"accountId":      accountID,
			"type":           insert.Type.String(),
			"amountTotal":    insert.AmountTotal,
			"amountNet":      insert.AmountNet,
			"amountSubtotal": insert.AmountSubtotal,
			"amountTax":      insert.AmountTax,
			"amountDiscount": insert.AmountDiscount,
			"currencyCode":   insert.CurrencyCode,
			"processedAt":    insert.ProcessedAt,
		})
		if err != nil {
			return fmt.Errorf("can't insert transaction: %w", err)
		}

		rollupQuery := `
		UPDATE order_facts
		SET total_revenue = total_revenue + :amountTotal,
			net_revenue = net_revenue + :amountNet
		WHERE id = :orderFactId`
		if err := ExecNamed(ctx, rep.DB(), rollupQuery, map[string]any{
			"amountTotal": insert.AmountTotal,
			"amountNet":   insert.AmountNet,
			"orderFactId": insert.OrderFactID,
		}); err != nil {
			return fmt.Errorf("can't update rollups: %w", err)
		}

		if insert.Type == entity.RecurringPayment {
			mrrQuery := `
			UPDATE order_facts
			SET mrr_contribution = :mrr, arr_contribution = :arr
			WHERE id = :orderFactId`
			if err := ExecNamed(ctx, rep.DB(), mrrQuery, map[string]any{
				"mrr":         insert.AmountTotal,
				"arr":         insert.AmountTotal * 12,
				"orderFactId": insert.OrderFactID,
			}); err != nil {
				return fmt.Errorf("can't update mrr rollups: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (ofs *orderFactStore) GetOrderFactByOrderID(ctx context.Context, accountID int, orderID string) (*entity.OrderFact, error) {
	query := `
	SELECT id, account_id, order_id, funnel_id, main_product_id,
		bump_1_product_id, bump_2_product_id, has_subscription,
		customer_email, customer_country, customer_state,
		utm_source, utm_medium, utm_campaign, utm_term, utm_content,
		total_revenue, net_revenue, mrr_contribution, arr_contribution,
		original_order_date, created_at, updated_at
	FROM order_facts
	WHERE account_id = :accountId AND order_id = :orderId`

	of, err := QueryNamedOne[entity.OrderFact](ctx, ofs.DB(), query, map[string]any{
		"accountId": accountID,
		"orderId":   orderID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrOrderFactNotFound
		}
		return nil, fmt.Errorf("can't get order fact: %w", err)
	}
	return &of, nil
}

func (ofs *orderFactStore) ListRollupDrift(ctx context.Context, limit int) ([]entity.RollupDrift, error) {
	query := `
	SELECT ofs.id AS order_fact_id, ofs.account_id,
		ofs.total_revenue, ofs.net_revenue,
		COALESCE(SUM(t.amount_total), 0) AS txn_total,
		COALESCE(SUM(t.amount_net), 0) AS txn_net
	FROM order_facts ofs
	LEFT JOIN transactions t ON t.order_fact_id = ofs.id
	GROUP BY ofs.id, ofs.account_id, ofs.total_revenue, ofs.net_revenue
	HAVING ofs.total_revenue <> txn_total OR ofs.net_revenue <> txn_net
	LIMIT :lim`

	drift, err := QueryListNamed[entity.RollupDrift](ctx, ofs.DB(), query, map[string]any{
		"lim": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get rollup drift: %w", err)
	}
	return drift, nil
}

func (ofs *orderFactStore) RepairRollups(ctx context.Context, orderFactID int) error {
	query := `
	UPDATE order_facts ofs
	SET ofs.total_revenue = (
			SELECT COALESCE(SUM(t.amount_total), 0) FROM transactions t
			WHERE t.order_fact_id = ofs.id),
		ofs.net_revenue = (
			SELECT COALESCE(SUM(t.amount_net), 0) FROM transactions t
			WHERE t.order_fact_id = ofs.id)
	WHERE ofs.id = :orderFactId`

	if err := ExecNamed(ctx, ofs.DB(), query, map[string]any{
		"orderFactId": orderFactID,
	}); err != nil {
		return fmt.Errorf("can't repair rollups: %w", err)
	}
	return nil
}
