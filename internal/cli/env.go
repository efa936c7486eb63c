package cli

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/toolstack/addressit/internal/app"
	"github.com/toolstack/addressit/internal/config"
	"github.com/toolstack/addressit/internal/logging"
	"github.com/toolstack/addressit/internal/storage"
)

// cmdEnv is everything one command invocation needs.
type cmdEnv struct {
	cfg     config.Config
	logger  *zap.Logger
	store   *storage.Store
	session *app.Session
}

// openEnv loads config, opens the log file and the storage backend and
// starts a session on top of them.
func openEnv(ctx context.Context, v *viper.Viper) (*cmdEnv, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFileLogger(cfg.Log.Level, cfg.Log.Format, logging.ServiceName, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	session := app.Open(ctx, store, app.Options{Locale: cfg.Locale, Logger: logger})
	return &cmdEnv{cfg: cfg, logger: logger, store: store, session: session}, nil
}

func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (*storage.Store, error) {
	var kv storage.KV
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := storage.OpenSQLite(ctx, cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		kv = db
	case config.DriverRedis:
		rdb, err := storage.OpenRedis(ctx, cfg.Storage.RedisAddr, cfg.Storage.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		kv = rdb
	case config.DriverMemory:
		kv = storage.NewMemoryKV()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	logger.Debug("storage opened", zap.String("driver", cfg.Storage.Driver))
	ns := storage.Namespace{
		AppID:      cfg.Namespace.AppID,
		Version:    cfg.Namespace.Version,
		ProfileKey: cfg.Namespace.ProfileKey,
	}
	return storage.NewStore(storage.NewAdapter(kv, cfg.Storage.Driver, logger), ns, logger), nil
}

func (r *cmdEnv) Close() {
	if err := r.store.Close(); err != nil {
		r.logger.Warn("closing store failed", zap.Error(err))
	}
	_ = r.logger.Sync()
}
