package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	web "pointsboard/internal/adapters/http"
	"pointsboard/internal/adapters/http/perf"
	"pointsboard/internal/adapters/storage"
	activityStore "pointsboard/internal/adapters/storage/activity"
	studentStore "pointsboard/internal/adapters/storage/student"
	"pointsboard/internal/application/orchestrators"
	"pointsboard/internal/config"
	"pointsboard/internal/domain/badge"
	"pointsboard/internal/domain/milestone"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	slog.SetDefault(config.NewLogger(cfg, os.Stderr))
	if cfg.CSRFKeyGenerated {
		slog.Warn("csrf_key_generated", "hint", "set POINTSBOARD_CSRF_KEY so form tokens survive restart")
	}

	// Reference tables are fixed for the life of the process.
	milestones := milestone.Defaults()
	badges := badge.Defaults()
	if err := validateReferenceTables(milestones, badges); err != nil {
		log.Fatalf("invalid reference tables: %v", err)
	}

	collector := perf.NewCollector(perf.DefaultRingSize)
	stores, closeStores, err := openStores(cfg, collector)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.Store, err)
	}
	defer closeStores()

	seedDeps := orchestrators.SeedStudentsDeps{StudentStore: stores.StudentStore, ActivityStore: stores.ActivityStore}
	if err := orchestrators.ExecuteSeedStudents(context.Background(), seedDeps); err != nil {
		log.Fatalf("failed to seed students: %v", err)
	}

	srv, err := web.NewServer(stores, milestones, badges, collector)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}
	defer srv.Close()

	handler := web.NewMux(srv, web.Options{
		CSRFKey:     cfg.CSRFKey,
		Secure:      cfg.IsProduction(),
		SlowRequest: cfg.SlowRequest,
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server_event", "event", "starting", "version", version, "addr", cfg.Addr, "env", cfg.Env, "store", cfg.Store)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("server_event", "event", "shutdown_failed", "error", err.Error())
		return
	}
	slog.Info("server_event", "event", "stopped")
}

// openStores builds the student and activity stores for the configured backend.
// Both backends start empty on every run.
func openStores(cfg config.Config, collector *perf.Collector) (web.Stores, func(), error) {
	if cfg.Store == config.StoreMemory {
		return web.Stores{
			StudentStore:  studentStore.NewMemoryStore(),
			ActivityStore: activityStore.NewMemoryStore(),
		}, func() {}, nil
	}

	db, err := storage.OpenMemoryDB()
	if err != nil {
		return web.Stores{}, nil, err
	}
	timedDB := storage.NewTimedDB(db, collector, cfg.SlowQuery)
	stores := web.Stores{
		StudentStore:  studentStore.NewSQLiteStore(timedDB),
		ActivityStore: activityStore.NewSQLiteStore(timedDB),
	}
	return stores, func() { _ = timedDB.Close() }, nil
}

func validateReferenceTables(milestones []milestone.Milestone, badges []badge.Badge) error {
	var errs []error
	for _, m := range milestones {
		errs = append(errs, m.Validate())
	}
	for _, b := range badges {
		errs = append(errs, b.Validate())
	}
	return errors.Join(errs...)
}
