package main

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ersonp/timetable-sync/internal/application/handlers"
	"github.com/ersonp/timetable-sync/internal/domain/ports"
	"github.com/ersonp/timetable-sync/internal/domain/services"
	"github.com/ersonp/timetable-sync/internal/infrastructure/config"
	"github.com/ersonp/timetable-sync/internal/infrastructure/credentials"
	"github.com/ersonp/timetable-sync/internal/infrastructure/keyvalue/redis"
	"github.com/ersonp/timetable-sync/internal/infrastructure/keyvalue/sqlite"
	"github.com/ersonp/timetable-sync/internal/infrastructure/logging"
	"github.com/ersonp/timetable-sync/internal/infrastructure/timetableapi/rest"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and stores are internal.
type Deps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Timetable *handlers.TimetableHandler
	Versions  *handlers.VersionHandler
	Conflicts *handlers.ConflictHandler
	Drafts    *handlers.DraftHandler
	Results   *handlers.ResultsHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	dir, err := projectDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	kv, err := openKeyValueStore(ctx, cfg, dir, logger)
	if err != nil {
		return err
	}
	defer kv.Close()

	creds := credentials.Chain{
		credentials.Static(cfg.API.Token),
		credentials.File(tokenFilePath(cfg, dir)),
	}

	api, err := rest.NewClient(cfg.API, creds, rest.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating api client: %w", err)
	}

	observer := logging.NewFailureObserver(logger)
	detector := services.NewClashDetector()
	versionService := services.NewVersionService(api)
	draftStore := services.NewDraftStore(kv, observer)
	resultsStore := services.NewResultsStore(kv, observer)

	timetable := handlers.NewTimetableHandler(services.NewTimetableService(api, credentials.NewIdentity(creds)))

	return fn(&Deps{
		Config:    cfg,
		Logger:    logger,
		Timetable: timetable,
		Versions:  handlers.NewVersionHandler(versionService, timetable, detector),
		Conflicts: handlers.NewConflictHandler(services.NewConflictService(api), timetable),
		Drafts:    handlers.NewDraftHandler(draftStore, resultsStore, versionService, detector),
		Results:   handlers.NewResultsHandler(resultsStore),
	})
}

// openKeyValueStore opens the snapshot backend named by the config.
func openKeyValueStore(ctx context.Context, cfg *config.Config, dir string, logger *zap.Logger) (ports.KeyValueStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		store, err := redis.NewStore(ctx, cfg.Storage.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return store, nil
	default:
		store, err := sqlite.Open(ctx, cfg.SQLitePath(dir))
		if err != nil {
			return nil, fmt.Errorf("opening snapshot database: %w", err)
		}
		return store, nil
	}
}

func tokenFilePath(cfg *config.Config, dir string) string {
	path := cfg.API.TokenFile
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
