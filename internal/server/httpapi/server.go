package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/fintrackhq/fintrack/internal/logging"
	"github.com/fintrackhq/fintrack/internal/server/services"
	"github.com/gorilla/mux"
)

type Server struct {
	addr         string
	logger       logging.Logger
	auth         *services.AuthService
	transactions *services.TransactionService
	goals        *services.GoalService
	bills        *services.BillService
	categories   *services.CategoryService
}

func NewServer(
	addr string,
	logger logging.Logger,
	auth *services.AuthService,
	transactions *services.TransactionService,
	goals *services.GoalService,
	bills *services.BillService,
	categories *services.CategoryService,
) *Server {
	return &Server{
		addr:         addr,
		logger:       logger.With("module", "httpapi"),
		auth:         auth,
		transactions: transactions,
		goals:        goals,
		bills:        bills,
		categories:   categories,
	}
}

// Router builds the route table. Everything under /api sits behind the
// bearer-token gate; /auth and /health do not.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	a := r.PathPrefix("/auth").Subrouter()
	a.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	a.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	a.HandleFunc("/refresh", s.handleRefresh).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.requireAuth)

	api.HandleFunc("/transactions", s.handleListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions", s.handleCreateTransaction).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}", s.handleUpdateTransaction).Methods(http.MethodPut)
	api.HandleFunc("/transactions/{id}", s.handleDeleteTransaction).Methods(http.MethodDelete)

	api.HandleFunc("/goals", s.handleListGoals).Methods(http.MethodGet)
	api.HandleFunc("/goals", s.handleCreateGoal).Methods(http.MethodPost)
	api.HandleFunc("/goals/{id}", s.handleUpdateGoal).Methods(http.MethodPut)
	api.HandleFunc("/goals/{id}", s.handleDeleteGoal).Methods(http.MethodDelete)

	api.HandleFunc("/bills", s.handleListBills).Methods(http.MethodGet)
	api.HandleFunc("/bills", s.handleCreateBill).Methods(http.MethodPost)
	api.HandleFunc("/bills/{id}", s.handleUpdateBill).Methods(http.MethodPut)
	api.HandleFunc("/bills/{id}", s.handleDeleteBill).Methods(http.MethodDelete)

	api.HandleFunc("/categories", s.handleListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", s.handleCreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories/{name}", s.handleDeleteCategory).Methods(http.MethodDelete)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
