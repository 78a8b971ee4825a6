package rollupcheck

import (
	"context"
	"fmt"
	"time"

	"log/slog"
)

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.checkRollups(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't check rollups",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) checkRollups(ctx context.Context) error {
	drifts, err := w.repo.OrderFacts().ListRollupDrift(ctx, w.c.BatchSize)
	if err != nil {
		return fmt.Errorf("can't list rollup drift: %w", err)
	}
	if len(drifts) == 0 {
		return nil
	}

	for _, d := range drifts {
		if err := ctx.Err(); err != nil {
			return err
		}

		slog.Default().WarnContext(ctx, "order fact rollups drifted from transaction totals",
			slog.Int("order_fact_id", d.OrderFactID),
			slog.Int("account_id", d.AccountID),
			slog.Int64("rollup_total", d.TotalRevenue),
			slog.Int64("txn_total", d.TxnTotal),
			slog.Int64("rollup_net", d.NetRevenue),
			slog.Int64("txn_net", d.TxnNet),
		)

		if !w.c.Repair {
			continue
		}
		if err := w.repo.OrderFacts().RepairRollups(ctx, d.OrderFactID); err != nil {
			slog.Default().ErrorContext(ctx, "can't repair rollups",
				slog.String("err", err.Error()),
				slog.Int("order_fact_id", d.OrderFactID),
			)
			continue
		}
		slog.Default().InfoContext(ctx, "repaired rollups",
			slog.Int("order_fact_id", d.OrderFactID),
		)
	}
	return nil
}
