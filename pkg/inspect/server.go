package inspect

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/reakt-dev/reakt/internal/errors"
	"github.com/reakt-dev/reakt/pkg/host"
	"github.com/reakt-dev/reakt/pkg/host/memdom"
	"github.com/reakt-dev/reakt/pkg/reakt"
	"github.com/reakt-dev/reakt/pkg/vdom"
)

// Config configures an inspector Server.
type Config struct {
	// Logger receives request and lifecycle logs. Default: slog.Default().
	Logger *slog.Logger

	// Gatherer backs GET /metrics. Default: prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// CheckOrigin validates websocket origins. Default: allow all.
	CheckOrigin func(*http.Request) bool

	// ShutdownTimeout bounds graceful shutdown in ListenAndServe.
	// Default: 5s.
	ShutdownTimeout time.Duration
}

// Server is the inspector HTTP server.
type Server struct {
	mu        sync.Mutex
	runtime   *reakt.Runtime
	container *memdom.Node
	unmount   func()
	lastErr   error

	hub      *hub
	logger   *slog.Logger
	gatherer prometheus.Gatherer
	timeout  time.Duration
	router   chi.Router
}

// New creates an inspector with nothing mounted.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "inspect")

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	s := &Server{
		hub:      newHub(logger, checkOrigin),
		logger:   logger,
		gatherer: gatherer,
		timeout:  timeout,
	}
	s.router = s.routes()
	return s
}

// Mount renders root into container with r and makes the result the
// inspected application. A previously mounted application is detached
// first.
func (s *Server) Mount(r *reakt.Runtime, root *vdom.Element, container *memdom.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unmount != nil {
		s.unmount()
		s.unmount = nil
	}
	s.runtime, s.container = nil, nil

	unsubscribe := r.OnCommit(func(host.Node) {
		s.hub.broadcast(Message{
			Type: MessageTree,
			Pass: r.Stats().Passes,
			HTML: container.InnerHTML(),
		})
	})
	if err := r.Render(root, container); err != nil {
		unsubscribe()
		return err
	}

	s.runtime, s.container, s.unmount = r, container, unsubscribe
	s.logger.Info("application mounted", "nodes", container.Count())
	return nil
}

// ReportError records a render failure that happened inside an event
// handler. Pass it to reakt.WithErrorHandler for the mounted runtime so
// POST /nodes/{id}/events/{type} can report it.
func (s *Server) ReportError(err error) {
	s.lastErr = err
	s.hub.broadcast(Message{Type: MessageError, Error: err.Error()})
}

// Do runs fn with the mounted runtime and container while holding the
// inspector lock. It returns E045 if nothing is mounted.
func (s *Server) Do(fn func(r *reakt.Runtime, container *memdom.Node) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runtime == nil {
		return errors.New("E045")
	}
	return fn(s.runtime, s.container)
}

// Handler returns the inspector's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Clients returns the number of connected websocket clients.
func (s *Server) Clients() int {
	return s.hub.count()
}

// ListenAndServe serves the inspector on addr until ctx is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("inspector listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.hub.close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("inspector stopped")
	return nil
}

// Close disconnects all websocket clients and detaches the application.
func (s *Server) Close() {
	s.hub.close()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unmount != nil {
		s.unmount()
		s.unmount = nil
	}
	s.runtime, s.container = nil, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/tree", s.handleTree)
	r.Get("/tree.json", s.handleTreeJSON)
	r.Post("/nodes/{id}/events/{event}", s.handleDispatch)
	r.Get("/stats", s.handleStats)
	r.Handle("/metrics", metricsHandler(s.gatherer))
	r.Get("/ws", s.handleWS)
	return r
}

// logRequests logs each request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// currentHTML serializes the container. Callers hold s.mu.
func (s *Server) currentHTML(opts memdom.HTMLOptions) string {
	var buf bytes.Buffer
	for _, c := range s.container.Children() {
		_ = memdom.WriteHTML(&buf, c, opts)
	}
	return buf.String()
}
