package rollupcheck

import (
	"context"
	"fmt"
	"time"

	"github.com/funnelgen/funnelgen-manager/internal/dependency"
)

// Config holds configuration for the rollup check worker.
type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	BatchSize      int           `mapstructure:"batch_size"`
	Repair         bool          `mapstructure:"repair"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 15 * time.Minute,
		BatchSize:      100,
		Repair:         false,
	}
}

// Worker scans for order facts whose lifetime rollups have drifted from the
// sum of their transactions and, when repair is enabled, resets them.
type Worker struct {
	repo dependency.Repository
	c    *Config
	ctx  context.Context
	stop context.CancelFunc
}

// New creates a new rollup check worker.
func New(c *Config, repo dependency.Repository) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = 15 * time.Minute
	}
	if c.BatchSize == 0 {
		c.BatchSize = 100
	}
	return &Worker{
		repo: repo,
		c:    c,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("rollup check worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("rollup check worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}
