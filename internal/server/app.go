// Package server initializes and runs the admin gateway: credential store,
// session manager, durable event log, engine, gRPC endpoint, metrics
// endpoint and log archival, with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/admingate/internal/engine"
	"github.com/dmitrijs2005/admingate/internal/eventlog"
	"github.com/dmitrijs2005/admingate/internal/eventlog/archive"
	"github.com/dmitrijs2005/admingate/internal/logging"
	"github.com/dmitrijs2005/admingate/internal/metrics"
	"github.com/dmitrijs2005/admingate/internal/server/auth"
	"github.com/dmitrijs2005/admingate/internal/server/config"
	"github.com/dmitrijs2005/admingate/internal/server/credentials"
	"github.com/dmitrijs2005/admingate/internal/server/publisher"

	gs "github.com/dmitrijs2005/admingate/internal/server/grpc"
)

// segmentFile is the log file name inside QueueDir for the file backend.
const segmentFile = "admin-events.log"

type App struct {
	config   *config.Config
	logger   logging.Logger
	sessions *auth.SessionManager
	events   eventlog.Log
	engine   engine.API
	db       *sql.DB
	// segmentPath is empty unless the file backend is active
	segmentPath string
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewDefault()

	app := &App{config: c, logger: logger}

	store, err := loadCredentials(c)
	if err != nil {
		return nil, err
	}
	app.sessions = auth.NewSessionManager(store)

	if err := app.openEventLog(); err != nil {
		return nil, err
	}

	pub := publisher.New(app.events, logger)
	app.engine = engine.NewSim(pub.Handle)

	return app, nil
}

func loadCredentials(c *config.Config) (*credentials.Store, error) {
	if c.UsersFile == "" {
		return credentials.Load(nil)
	}
	store, err := credentials.LoadFile(c.UsersFile)
	if err != nil {
		return nil, fmt.Errorf("credentials init error: %w", err)
	}
	return store, nil
}

func (app *App) openEventLog() error {
	switch app.config.QueueBackend {
	case "file":
		if err := os.MkdirAll(app.config.QueueDir, 0o750); err != nil {
			return fmt.Errorf("queue dir init error: %w", err)
		}
		app.segmentPath = filepath.Join(app.config.QueueDir, segmentFile)
		log, err := eventlog.OpenFileLog(app.segmentPath)
		if err != nil {
			return fmt.Errorf("event log init error: %w", err)
		}
		app.events = log
	case "postgres":
		db, err := sql.Open("pgx", app.config.DatabaseDSN)
		if err != nil {
			return fmt.Errorf("db init error: %w", err)
		}
		if err := eventlog.RunMigrations(context.Background(), db); err != nil {
			return fmt.Errorf("db migration error: %w", err)
		}
		app.db = db
		app.events = eventlog.NewPostgresLog(db)
	case "memory":
		app.events = eventlog.NewMemoryLog()
	default:
		return fmt.Errorf("unknown queue backend %q", app.config.QueueBackend)
	}
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.sessions, app.engine, app.events, gs.Options{
		PollInterval:   app.config.PollInterval,
		SyncResponses:  app.config.SyncCommandResponses,
		CommandTimeout: app.config.CommandTimeout,
	})

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) startMetricsServer(ctx context.Context) {

	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: metrics.Handler()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		app.logger.Error(ctx, err.Error())
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx)
		}()
	}

	if app.config.S3Bucket != "" && app.segmentPath != "" {
		a := archive.New(archive.Config{
			Region:       app.config.S3Region,
			RootUser:     app.config.S3RootUser,
			RootPassword: app.config.S3RootPassword,
			Bucket:       app.config.S3Bucket,
			BaseEndpoint: app.config.S3BaseEndpoint,
		}, app.segmentPath, app.logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Run(ctx, app.config.ArchiveInterval)
		}()
	}

	wg.Wait()

	app.shutdown()
}

// shutdown releases resources after all servers stopped: the engine first
// so pending outcomes still reach the log, then the log itself.
func (app *App) shutdown() {
	ctx := context.Background()

	app.engine.Stop()

	if err := app.events.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}

	app.logger.Info(ctx, "App stopped")
}
