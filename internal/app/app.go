package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
	"visionserver/internal/config"
	"visionserver/internal/logger"
	"visionserver/internal/repository/sqlite"
	"visionserver/internal/route"
	"visionserver/internal/service/journal"
	"visionserver/internal/service/telemetry"
	"visionserver/internal/service/websocket"

	"golang.org/x/sync/errgroup"
)

type App struct {
	config     *config.Config
	logger     *logger.Logger
	db         *sqlite.DB
	journal    *journal.Journal
	hubService *websocket.HubService
	telemetry  *telemetry.Service
	server     *http.Server
}

// NewApp builds every service and the HTTP router. The caller owns Close.
func NewApp(cfg *config.Config) (*App, error) {
	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := sqlite.New(cfg.JournalDSN)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	j := journal.NewJournal(sqlite.NewEventRepository(db), cfg.JournalLimit, log)
	hub := websocket.NewHubService(log)
	svc := telemetry.NewService(telemetry.WithSinks(j, hub))

	router := route.SetupRoutes(route.Dependencies{
		Telemetry: svc,
		Journal:   j,
		Hub:       hub,
		Config:    cfg,
		Logger:    log,
	})

	return &App{
		config:     cfg,
		logger:     log,
		db:         db,
		journal:    j,
		hubService: hub,
		telemetry:  svc,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler returns the fully wrapped router.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves HTTP and the live feed hub until ctx is cancelled or the listener fails,
// then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.hubService.Run(ctx)
		return nil
	})

	g.Go(func() error {
		a.logger.Info("Listening on http://localhost:%d", a.config.Port)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.config.ShutdownTimeout)*time.Second)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	stats := a.telemetry.Stats()
	a.logger.Info("Server stopped after %ds: %d sessions, %d detections, %d interactions",
		stats.Uptime, stats.TotalSessions, stats.TotalDetections, stats.TotalInteractions)
	return err
}

// Close releases the journal database and the log files.
func (a *App) Close() error {
	return errors.Join(a.db.Close(), a.logger.Close())
}
