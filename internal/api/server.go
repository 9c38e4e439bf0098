// Package api implements the HTTP layer for the gift-checkout service.
// Handlers are methods on *Server. Each handler file is responsible for one
// step of the flow and only imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shepherd-study/gift-checkout/internal/email"
	"github.com/shepherd-study/gift-checkout/internal/order"
	stripeinternal "github.com/shepherd-study/gift-checkout/internal/stripe"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// BaseURL is this service's own public URL, used to build the Stripe
	// success and cancel URLs. e.g. "https://gift.shepherd.study"
	BaseURL string

	// RedirectBaseURL is where the browser lands after fulfillment
	// ("<RedirectBaseURL>/success"). Empty means redirect to "/".
	RedirectBaseURL string
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// stripe creates Checkout Sessions and issues coupons.
	stripe stripeinternal.Client

	// mailer sends transactional emails (confirmation + recipient welcomes).
	mailer email.Sender

	// orders is the server-side record bridging checkout and fulfillment.
	orders *order.Store

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(
	stripeClient stripeinternal.Client,
	mailer email.Sender,
	orders *order.Store,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		stripe: stripeClient,
		mailer: mailer,
		orders: orders,
		cfg:    cfg,
		logger: logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── Checkout flow ─────────────────────────────────────────────────────────
	// The three browser-facing routes. GET / doubles as the liveness check
	// and the cancel-URL target.
	r.Get("/", s.handleLiveness)
	r.Post("/", s.handleCheckout)
	r.Get("/success", s.handleSuccess)

	return r
}

func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("App is running.."))
}
