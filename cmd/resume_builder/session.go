package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/notify"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/persist"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// redisPrefix namespaces draft keys in a shared Redis.
const redisPrefix = "resume_builder:"

var (
	settings config.Config
	logger   = logging.Nop()
)

// loadSettings resolves the configuration: config file, then environment,
// then flags, then built-in defaults.
func loadSettings(_ *cobra.Command, _ []string) error {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	if storageArg != "" {
		cfg.Storage = storageArg
	}
	if storageDir != "" {
		cfg.StorageDir = storageDir
	}
	if verbose {
		cfg.Verbose = true
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logging.New(cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	settings = cfg
	logger = l
	return nil
}

// syncLogger flushes the logger. Sync fails on terminals on some platforms,
// so the error is dropped.
func syncLogger() {
	_ = logger.Sync()
}

// openStorage returns the configured backend and a function releasing it.
func openStorage(ctx context.Context, cfg config.Config, logger *zap.Logger) (persist.Storage, func(), error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return persist.NewMemoryStorage(0), func() {}, nil

	case config.StoragePostgres:
		database, err := db.Connect(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		return db.NewDraftStore(database), database.Close, nil

	case config.StorageRedis:
		r, err := persist.NewRedisStorage(ctx, cfg.RedisURL, redisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	}

	return persist.NewFileStorage(cfg.StorageDir), func() {}, nil
}

// session is one command's view of the draft.
type session struct {
	store   *store.Store
	notices *notify.Recorder
	release func()
}

func openSession(ctx context.Context) (*session, error) {
	storage, release, err := openStorage(ctx, settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", settings.Storage, err)
	}

	recorder := &notify.Recorder{}
	notifier := notify.Multi(notify.NewLogNotifier(logger), recorder)
	adapter := persist.NewAdapter(storage, persist.Options{
		Key:      settings.StorageKey,
		Delay:    settings.AutosaveDelay(),
		Notifier: notifier,
		Logger:   logger,
	})

	st, err := store.Open(ctx, store.Options{
		Persister: adapter,
		Notifier:  notifier,
		Logger:    logger,
	})
	if err != nil {
		release()
		return nil, fmt.Errorf("failed to open resume: %w", err)
	}

	return &session{store: st, notices: recorder, release: release}, nil
}

// close writes pending changes, releases the backend and reports any notices
// on stderr.
func (s *session) close(cmd *cobra.Command) error {
	err := s.store.Flush(cmd.Context())
	s.store.Close()
	s.release()

	if notices := s.notices.Notices(); len(notices) > 0 {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintNotices(notices)
	}
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// withSession runs fn against the draft and saves whatever it changed.
func withSession(cmd *cobra.Command, fn func(st *store.Store) error) (err error) {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(cmd); err == nil {
			err = cerr
		}
	}()
	return fn(s.store)
}
