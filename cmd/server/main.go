package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/config"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/metrics"
	"github.com/tendant/simple-recipes/pkg/simplerecipes/web"
)

func main() {
	// A missing .env file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to read .env: %v", err)
	}

	serverConfig, err := config.Load(config.WithEnv())
	if err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}
	slog.SetDefault(serverConfig.NewLogger(os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, serverConfig); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exiting")
}

func run(ctx context.Context, serverConfig *config.ServerConfig) error {
	var recorder *metrics.PrometheusRecorder
	var extra []simplerecipes.Option
	if serverConfig.EnableMetrics {
		recorder = metrics.NewPrometheusRecorder(nil)
		extra = append(extra, simplerecipes.WithFetchObserver(recorder))
	}

	svc, err := serverConfig.BuildService(extra...)
	if err != nil {
		return fmt.Errorf("failed to build service: %w", err)
	}

	server, err := NewHTTPServer(ctx, svc, serverConfig, recorder)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", serverConfig.Port),
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Simple Recipes server starting",
			"port", serverConfig.Port,
			"env", serverConfig.Environment,
			"backend", serverConfig.ContentBackend,
			"metrics", serverConfig.EnableMetrics)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// HTTPServer wires the page and API handlers for the simple-recipes service
type HTTPServer struct {
	config   *config.ServerConfig
	pages    *web.Handler
	api      *web.APIHandler
	recorder *metrics.PrometheusRecorder
}

// NewHTTPServer creates the handlers. Templates are watched for changes
// until ctx is done when TEMPLATE_DIR is set.
func NewHTTPServer(ctx context.Context, svc simplerecipes.Service, serverConfig *config.ServerConfig, recorder *metrics.PrometheusRecorder) (*HTTPServer, error) {
	filter := serverConfig.NewFilterState()

	pageOpts := []web.HandlerOption{
		web.WithFilterState(filter),
		web.WithMarkdown(serverConfig.RenderMarkdown),
	}
	if serverConfig.TemplateDir != "" {
		templates, err := web.TemplatesFromDir(ctx, serverConfig.TemplateDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load templates: %w", err)
		}
		pageOpts = append(pageOpts, web.WithTemplates(templates))
	}

	apiOpts := []web.APIOption{
		web.WithAPIFilterState(filter),
		web.WithAPIMarkdown(serverConfig.RenderMarkdown),
	}
	if serverConfig.IsDevelopment() {
		apiOpts = append(apiOpts, web.WithCORS("*"))
	}

	return &HTTPServer{
		config:   serverConfig,
		pages:    web.NewHandler(svc, pageOpts...),
		api:      web.NewAPIHandler(svc, apiOpts...),
		recorder: recorder,
	}, nil
}

// Routes sets up the HTTP routes
func (s *HTTPServer) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	if s.recorder != nil {
		r.Use(s.recorder.Middleware)
	}

	r.Get("/health", s.handleHealth)
	if s.recorder != nil {
		r.Method(http.MethodGet, "/metrics", metrics.HTTPHandler(s.recorder.Registry()))
	}

	r.Mount("/api/v1", s.api.Routes())
	r.Mount("/", s.pages.Routes())

	return r
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"status":      "healthy",
		"environment": s.config.Environment,
		"backend":     s.config.ContentBackend,
	})
}
