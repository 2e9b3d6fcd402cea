// Package web provides the HTTP server and handlers for the onboarding service.
package web

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JonMunkholm/prejoin/internal/config"
	"github.com/JonMunkholm/prejoin/internal/core"
	webmw "github.com/JonMunkholm/prejoin/internal/web/middleware"
	"github.com/JonMunkholm/prejoin/internal/web/templates"
)

// EmployeeService is the domain surface the handlers need.
type EmployeeService interface {
	Submit(ctx context.Context, mr *multipart.Reader) (int64, error)
	ListEmployees(ctx context.Context) ([]core.EmployeeRecord, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

// ReadinessChecker reports whether a dependency can serve requests.
type ReadinessChecker interface {
	CheckReady(ctx context.Context) error
}

// Server is the HTTP server for the onboarding application.
type Server struct {
	service EmployeeService
	ready   ReadinessChecker
	cfg     *config.Config
	router  *chi.Mux
	server  *http.Server
}

// NewServer creates a Server. ready may be nil, in which case the readiness
// check always succeeds.
func NewServer(service EmployeeService, ready ReadinessChecker, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		ready:   ready,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(webmw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(webmw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(webmw.Metrics)
	s.router.Use(securityHeaders)
	s.router.Use(webmw.CORS)
}

// setupRoutes registers the routes. Everything except the submission runs
// under SERVER_REQUEST_TIMEOUT; a submission streams attachments for as
// long as the client keeps sending and is bounded by the body size limit.
func (s *Server) setupRoutes() {
	timeout := middleware.Timeout(s.cfg.Server.RequestTimeout)

	s.router.Group(func(r chi.Router) {
		r.Use(timeout)

		form := templ.Handler(templates.OnboardingForm(templates.DefaultFormParams()))
		r.Method(http.MethodGet, "/", form)
		r.Method(http.MethodGet, "/form.html", form)

		r.Get("/health/live", s.handleHealthLive)
		r.Get("/health/ready", s.handleHealthReady)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	})

	s.router.Route("/api/employees", func(r chi.Router) {
		r.Post("/", s.handleCreateEmployee)

		r.Group(func(r chi.Router) {
			r.Use(timeout)
			r.Get("/", s.handleListEmployees)
			r.Get("/export", s.handleExportEmployees)
		})
	})
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.server = s.httpServer()

	slog.Info("server listening", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// httpServer builds the listener configuration. Only headers get a read
// deadline: ReadTimeout would also cover the multipart body and cut off
// large uploads on slow connections.
func (s *Server) httpServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       s.cfg.Server.IdleTimeout,
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		// The form page carries its script and style inline.
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
