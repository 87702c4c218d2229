// Package server serves the party page over HTTP. Every response is a full
// re-render of the loaded list, so following a party link shows the list
// with that party's details.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/partyplanner/internal/app"
	"github.com/rshade/partyplanner/internal/logging"
	"github.com/rshade/partyplanner/internal/metrics"
	"github.com/rshade/partyplanner/internal/render"
	"github.com/rshade/partyplanner/internal/state"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server hosts the page, health and metrics endpoints.
type Server struct {
	app     *app.App
	metrics *metrics.Metrics
	logger  zerolog.Logger
	addr    string
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithMetrics exposes m on /metrics and records page requests in it.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logging.ComponentLogger(l, "server")
	}
}

// New returns a server for a.
func New(a *app.App, opts ...Option) *Server {
	s := &Server{
		app:    a,
		logger: zerolog.Nop(),
		addr:   ":8080",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /parties/{id}", s.handleParty)
	mux.HandleFunc("GET /healthz", handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	return s.loggingMiddleware(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, s.app.Snapshot())
}

// handleParty renders the page with the requested party selected for this
// response only. The shared store never holds a server selection.
func (s *Server) handleParty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	snap := s.app.Snapshot()
	if _, ok := snap.Party(id); !ok {
		http.NotFound(w, r)
		return
	}

	// A failed fetch is logged by the app and the list renders unselected.
	if p, err := s.app.FetchDetail(r.Context(), id); err == nil {
		snap = snap.WithSelected(p)
	}
	s.renderPage(w, r, snap)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, snap state.Snapshot) {
	templ.Handler(render.Document(snap)).ServeHTTP(w, r)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// Run loads the party list, then serves on the configured address until ctx
// is cancelled.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve loads the party list, then serves on ln until ctx is cancelled, at
// which point in-flight requests are drained.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	// Startup failures leave the list empty; the page still renders.
	_ = s.app.Load(ctx)

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info().Ctx(ctx).Str("addr", ln.Addr().String()).Msg("serving party page")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		s.logger.Info().Ctx(ctx).Msg("server stopped")
		return nil
	})
	return g.Wait()
}
