package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"odontoagenda/config"
	deliveryHttp "odontoagenda/internal/delivery/http"
	"odontoagenda/internal/delivery/http/handler"
	"odontoagenda/internal/delivery/http/middleware"
	"odontoagenda/internal/infrastructure/api"
	"odontoagenda/internal/repository"
	"odontoagenda/internal/usecase"
	"odontoagenda/internal/view"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize all layers
	server, err := initializeServer(cfg)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config) (*http.Server, error) {
	log := logrus.StandardLogger()

	// Initialize backend client
	apiClient := api.NewClient(cfg.API, log)
	logrus.Infof("Backend API at %s", cfg.API.BaseURL)

	// Initialize repositories
	citaRepo := repository.NewCitaRepository(apiClient, log)
	lookupRepo := repository.NewLookupRepository(apiClient, log)

	// Initialize templates
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize templates: %w", err)
	}

	// Initialize usecases
	agendaUsecase := usecase.NewAgendaUsecase(log, citaRepo)
	bookingFormUsecase := usecase.NewBookingFormUsecase(log, citaRepo, lookupRepo, nil)

	// Initialize handlers
	citasHandler := handler.NewCitasHandler(log, agendaUsecase, renderer, nil)
	bookingFormHandler := handler.NewBookingFormHandler(log, bookingFormUsecase, renderer)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(citasHandler, bookingFormHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server shutdown complete")
}
