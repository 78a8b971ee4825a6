package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/funnelgen/funnelgen-manager/internal/apisrv/tools"
	"github.com/funnelgen/funnelgen-manager/internal/auth"
	"github.com/funnelgen/funnelgen-manager/internal/bi"
	"github.com/funnelgen/funnelgen-manager/internal/dto"
	gerr "github.com/funnelgen/funnelgen-manager/internal/errors"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router(ts *tools.Server, au *auth.Auth) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.c.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	})

	r.Route("/api/bi", func(r chi.Router) {
		r.Use(au.Verifier())
		r.Use(au.Authenticator())

		r.Post("/orders/list", listOrdersHandler(ts))
		r.Post("/orders", createOrderFactHandler(ts))
		r.Post("/transactions", recordTransactionHandler(ts))
	})

	return r
}

func listOrdersHandler(ts *tools.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := auth.AccountFromContext(r.Context())
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized", err.Error())
			return
		}

		req := &dto.ListOrdersRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			writeError(w, http.StatusBadRequest, "BadRequest", "can't decode request body")
			return
		}

		report, err := ts.ListOrders(r.Context(), accountID, req)
		if err != nil {
			writeToolError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func createOrderFactHandler(ts *tools.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := auth.AccountFromContext(r.Context())
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized", err.Error())
			return
		}

		req := &dto.CreateOrderFactRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			writeError(w, http.StatusBadRequest, "BadRequest", "can't decode request body")
			return
		}

		resp, err := ts.CreateOrderFact(r.Context(), accountID, req)
		if err != nil {
			writeToolError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

func recordTransactionHandler(ts *tools.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := auth.AccountFromContext(r.Context())
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized", err.Error())
			return
		}

		req := &dto.RecordTransactionRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			writeError(w, http.StatusBadRequest, "BadRequest", "can't decode request body")
			return
		}

		resp, err := ts.RecordTransaction(r.Context(), accountID, req)
		if err != nil {
			writeToolError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

// writeToolError maps domain errors onto the {error, message} failure payload.
func writeToolError(w http.ResponseWriter, err error) {
	var bErr *bi.Error
	if errors.As(err, &bErr) {
		status := http.StatusInternalServerError
		switch bErr.Kind {
		case bi.KindInvalidRange, bi.KindInvalidLimit:
			status = http.StatusBadRequest
		case bi.KindUpstreamRead:
			status = http.StatusBadGateway
		}
		writeError(w, status, bErr.Kind, bErr.Message)
		return
	}
	if errors.Is(err, gerr.ErrOrderFactNotFound) {
		writeError(w, http.StatusNotFound, "NotFound", err.Error())
		return
	}
	if errors.Is(err, gerr.ErrOrderFactAlreadyExists) {
		writeError(w, http.StatusConflict, "Conflict", err.Error())
		return
	}
	if errors.Is(err, gerr.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "BadRequest", err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "InternalError", "internal error")
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, &dto.ErrorResponse{
		Error:   kind,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't encode response",
			slog.String("err", err.Error()),
		)
	}
}

// Start starts the server
func (s *Server) Start(ctx context.Context, ts *tools.Server, au *auth.Auth) error {
	ctx, cancel := context.WithCancel(ctx)

	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    listenerAddr,
		Handler: s.router(ts, au),
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("funnelgen-manager new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else if err != nil {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		cancel()
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
