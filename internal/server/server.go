// Package server serves the dashboard over HTTP, as an HTML page and as a
// JSON API.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/lunadash/internal/astro"
	"github.com/ja-he/lunadash/internal/control"
	"github.com/ja-he/lunadash/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Dashboard is what the server needs from the dashboard controller.
type Dashboard interface {
	Now() time.Time
	View(now time.Time) (control.View, bool)
	Snapshot() *control.Snapshot
	Compute(ctx context.Context, at model.Coordinates) (*control.Snapshot, error)
	Calculator() *astro.Calculator
	SetLocation(ctx context.Context, query string) (*control.Snapshot, error)
	ToggleTimeFormat() []control.Row
	Picture() *model.Picture
	Settings() control.Settings
}

// Options configure a Server.
type Options struct {
	// AllowOrigins lists the origins allowed cross-origin access. Empty or
	// containing "*" allows any origin.
	AllowOrigins []string
}

// Server is the HTTP surface of the dashboard.
type Server struct {
	dashboard Dashboard
	engine    *gin.Engine
}

// New creates a server for the dashboard with all routes registered.
func New(dashboard Dashboard, opts Options) (*Server, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse page templates (%w)", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	s := &Server{dashboard: dashboard, engine: r}
	s.registerRoutes(tmpl, opts)
	return s, nil
}

func (s *Server) registerRoutes(tmpl *template.Template, opts Options) {
	r := s.engine
	r.SetHTMLTemplate(tmpl)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: originAllowed(opts.AllowOrigins),
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	r.GET("/", s.page)
	r.GET("/healthz", func(ctx *gin.Context) { ctx.String(http.StatusOK, "ok") })

	api := r.Group("/api")
	api.GET("/snapshot", resolveEndpoint(s.snapshot))
	api.GET("/phases", resolveEndpoint(s.phases))
	api.GET("/picture", resolveEndpoint(s.picture))
	api.POST("/location", resolveEndpoint(s.location))
	api.POST("/time-format", resolveEndpoint(s.timeFormat))
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until the context is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("address", addr).Msg("serving dashboard")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server on '%s' failed (%w)", addr, err)
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not shut down server (%w)", err)
		}
		return nil
	}
}

func originAllowed(origins []string) func(string) bool {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return func(string) bool { return true }
	}
	return func(origin string) bool { return slices.Contains(origins, origin) }
}
