package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/and161185/marketplace/internal/bookings"
	"github.com/and161185/marketplace/internal/config"
	"github.com/and161185/marketplace/internal/deps"
	"github.com/and161185/marketplace/internal/errs"
	"github.com/and161185/marketplace/internal/fetchcache"
	"github.com/and161185/marketplace/internal/middleware"
	"github.com/and161185/marketplace/internal/model"
	"github.com/and161185/marketplace/internal/orders"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=server.go -destination=../mocks/mock_bookings.go -package=mocks

// Bookings is the black-box booking service as the server consumes it.
type Bookings interface {
	ListOrders(ctx context.Context, userID, scope string) ([]model.RawOrder, error)
	ListNotifications(ctx context.Context, userID string) ([]model.Notification, error)
	RecordPayment(ctx context.Context, userID, orderID string, amount decimal.Decimal) error
}

type Server struct {
	bookings    Bookings
	cache       *fetchcache.Coordinator
	transformer *orders.Transformer
	config      *config.Config
	deps        *deps.Deps
}

func NewServer(bookings Bookings, cache *fetchcache.Coordinator, transformer *orders.Transformer, config *config.Config, deps *deps.Deps) *Server {
	return &Server{
		bookings:    bookings,
		cache:       cache,
		transformer: transformer,
		config:      config,
		deps:        deps,
	}
}

func (srv *Server) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.deps.Logger))
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.CompressMiddleware(srv.deps.Logger))

	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(srv.deps.TokenManager))

		r.Get("/api/client/orders/action-needed", srv.ActionNeededOrdersHandler)
		r.Get("/api/client/dashboard/stats", srv.DashboardStatsHandler)
		r.Get("/api/client/notifications", srv.NotificationsHandler)
		r.Post("/api/client/orders/{orderID}/paid", srv.MarkOrderPaidHandler)
	})

	return router
}

func (srv *Server) Run(ctx context.Context) error {
	router := srv.buildRouter()

	server := &http.Server{
		Addr:    srv.config.RunAddress,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.deps.Logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// Cache keys, scoped per user so one client's data never serves another.
const (
	keyActionNeededOrders = "client-action-needed-orders"
	keyDashboardStats     = "client-dashboard-stats"
	keyNotifications      = "client-notifications"
)

func cacheKey(base, userID string) string {
	return base + ":" + userID
}

func (s *Server) ActionNeededOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	views, err := fetchcache.Get(r.Context(), s.cache, cacheKey(keyActionNeededOrders, user.ID),
		func(ctx context.Context) ([]model.OrderView, error) {
			raws, err := s.bookings.ListOrders(ctx, user.ID, bookings.ScopeActionNeeded)
			if err != nil {
				return nil, err
			}
			return s.transformer.TransformAll(raws), nil
		})
	if err != nil {
		s.deps.Logger.Errorf("fetch action needed orders: %v", err)
		http.Error(w, "booking service unavailable", http.StatusBadGateway)
		return
	}

	if len(views) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(views); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

func (s *Server) DashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := fetchcache.Get(r.Context(), s.cache, cacheKey(keyDashboardStats, user.ID),
		func(ctx context.Context) (model.DashboardStats, error) {
			raws, err := s.bookings.ListOrders(ctx, user.ID, bookings.ScopeAll)
			if err != nil {
				return model.DashboardStats{}, err
			}
			return orders.DeriveStats(s.transformer.TransformAll(raws)), nil
		})
	if err != nil {
		s.deps.Logger.Errorf("fetch dashboard stats: %v", err)
		http.Error(w, "booking service unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

func (s *Server) NotificationsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	notifications, err := fetchcache.Get(r.Context(), s.cache, cacheKey(keyNotifications, user.ID),
		func(ctx context.Context) ([]model.Notification, error) {
			return s.bookings.ListNotifications(ctx, user.ID)
		})
	if err != nil {
		s.deps.Logger.Errorf("fetch notifications: %v", err)
		http.Error(w, "booking service unavailable", http.StatusBadGateway)
		return
	}

	if len(notifications) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(notifications); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

func (s *Server) MarkOrderPaidHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		http.Error(w, "order id required", http.StatusBadRequest)
		return
	}

	var req model.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		http.Error(w, "invalid amount", http.StatusUnprocessableEntity)
		return
	}

	err := s.bookings.RecordPayment(r.Context(), user.ID, orderID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			http.Error(w, "order not found", http.StatusNotFound)
		default:
			s.deps.Logger.Errorf("record payment: %v", err)
			http.Error(w, "booking service unavailable", http.StatusBadGateway)
		}
		return
	}

	// the payment changed order state on the booking side, cached datasets
	// must not survive it
	s.cache.Reset()

	w.WriteHeader(http.StatusOK)
}
