package goaleasy

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tiwariank/goaleasy/internal/app"
	"github.com/tiwariank/goaleasy/internal/config"
	"github.com/tiwariank/goaleasy/internal/db"
	"github.com/tiwariank/goaleasy/internal/model"
	"github.com/tiwariank/goaleasy/internal/notify"
	"github.com/tiwariank/goaleasy/internal/store"
)

func resolveDBPath(cfg config.Config) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = app.DefaultConfigPath()
		if err != nil {
			return config.Default(), err
		}
	}
	return config.Load(path)
}

func newLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

// withDB opens the database, applies migrations, and ensures the notification
// channel before running fn.
func withDB(run func(cfg config.Config, sqldb *sql.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := resolveDBPath(cfg)
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	if err := notify.EnsureChannel(context.Background(), sqldb, cfg.Notifications.ChannelID, cfg.Notifications.ChannelName); err != nil {
		return err
	}
	return run(cfg, sqldb)
}

// withStore builds the goal store on top of the database and closes it (and
// so flushes the last snapshot) when fn returns.
func withStore(run func(cfg config.Config, s *store.Store) error) error {
	return withDB(func(cfg config.Config, sqldb *sql.DB) error {
		logger, err := newLogger()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer logger.Sync()

		opts := []store.Option{store.WithReminderHour(cfg.Notifications.ReminderHour)}
		if lang, err := model.ParseLanguage(cfg.Language); err == nil {
			opts = append(opts, store.WithDefaultLanguage(lang))
		}
		s := store.New(context.Background(), db.NewStateStore(sqldb), notify.NewScheduler(sqldb), logger, opts...)
		defer s.Close()
		return run(cfg, s)
	})
}

func parseTargetDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --target-date %q (expected YYYY-MM-DD)", raw)
	}
	return &t, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
