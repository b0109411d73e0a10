// Package httpapi exposes the auth and catalog services over HTTP. Routes
// are gated by the access table in require; identity extraction happens in
// the bearer-token middleware.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"sweetshop/internal/logging"
	"sweetshop/internal/server/services"
)

type API struct {
	addr      string
	logger    logging.Logger
	auth      *services.AuthService
	sweets    *services.SweetService
	jwtSecret []byte
}

func NewAPI(addr string, l logging.Logger, as *services.AuthService, ss *services.SweetService, secretKey string) *API {
	return &API{
		addr:      addr,
		logger:    l.With("module", "http_server"),
		auth:      as,
		sweets:    ss,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the route table. Every request passes through the
// bearer-token middleware; per-route requirements are applied by require.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", a.Health)

	mux.HandleFunc("POST /auth/register", a.require(accessNone, a.Register))
	mux.HandleFunc("POST /auth/login", a.require(accessNone, a.Login))

	mux.HandleFunc("POST /sweets", a.require(accessAuthenticated, a.CreateSweet))
	mux.HandleFunc("GET /sweets", a.require(accessAuthenticated, a.ListSweets))
	mux.HandleFunc("GET /sweets/search", a.require(accessAuthenticated, a.SearchSweets))
	mux.HandleFunc("PUT /sweets/{id}", a.require(accessAuthenticated, a.UpdateSweet))
	mux.HandleFunc("DELETE /sweets/{id}", a.require(accessAdmin, a.DeleteSweet))
	mux.HandleFunc("POST /sweets/{id}/purchase", a.require(accessAuthenticated, a.PurchaseSweet))
	mux.HandleFunc("POST /sweets/{id}/restock", a.require(accessAdmin, a.RestockSweet))

	return a.withPrincipal(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *API) Run(ctx context.Context) error {
	srv := &http.Server{Addr: a.addr, Handler: a.Handler()}

	go func() {
		<-ctx.Done()
		a.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	a.logger.Info(ctx, "Starting HTTP server", "address", a.addr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
