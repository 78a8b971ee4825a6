package app

import (
	"context"

	"log/slog"

	"github.com/funnelgen/funnelgen-manager/config"
	httpapi "github.com/funnelgen/funnelgen-manager/internal/api/http"
	"github.com/funnelgen/funnelgen-manager/internal/apisrv/tools"
	"github.com/funnelgen/funnelgen-manager/internal/auth"
	"github.com/funnelgen/funnelgen-manager/internal/dependency"
	"github.com/funnelgen/funnelgen-manager/internal/rollupcheck"
	"github.com/funnelgen/funnelgen-manager/internal/store"
)

// App is the main application
type App struct {
	hs          *httpapi.Server
	db          dependency.Repository
	rollupCheck *rollupcheck.Worker
	c           *config.Config
	done        chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting funnelgen manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	au, err := auth.New(&a.c.Auth)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create auth",
			slog.String("err", err.Error()),
		)
		return err
	}

	toolsS := tools.New(a.db)

	a.rollupCheck = rollupcheck.New(&a.c.RollupCheck, a.db)
	if err := a.rollupCheck.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start rollup check worker",
			slog.String("err", err.Error()),
		)
		return err
	}

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, toolsS, au); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.rollupCheck != nil {
		if err := a.rollupCheck.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "cannot stop rollup check worker",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "cannot stop http server",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
