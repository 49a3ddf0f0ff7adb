package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"health-intel-backend/internal/apperror"
	"health-intel-backend/internal/config"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrPoolExhausted is returned when no connection frees up within the acquire timeout
var ErrPoolExhausted = errors.New("timed out waiting for a free database connection")

// DB is the storage handle shared by every repository. It bounds the number
// of concurrent storage operations and classifies their failures.
type DB struct {
	gorm           *gorm.DB
	slots          *semaphore.Weighted
	acquireTimeout time.Duration
}

// Connect opens the configured database and applies pool settings
func Connect(cfg config.DatabaseConfig, release bool, log zerolog.Logger) (*DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	// Failures are logged once by the response layer, so gorm stays quiet in release
	gormLogger := logger.Default.LogMode(logger.Info)
	if release {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MaxConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.AcquireTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("driver", cfg.Driver).Int("max_conns", cfg.MaxConns).Msg("connected to database")

	return New(db, cfg.MaxConns, cfg.AcquireTimeout), nil
}

// New wraps an open gorm handle
func New(db *gorm.DB, maxConns int, acquireTimeout time.Duration) *DB {
	if maxConns < 1 {
		maxConns = 1
	}
	return &DB{
		gorm:           db,
		slots:          semaphore.NewWeighted(int64(maxConns)),
		acquireTimeout: acquireTimeout,
	}
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(cfg.URL), nil
	case "mysql":
		return mysql.Open(cfg.URL), nil
	case "sqlite":
		return sqlite.Open(cfg.URL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Run executes fn against the database once a pool slot is free.
// Any error fn returns is translated into the domain taxonomy here and
// nowhere else.
func (d *DB) Run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	release, err := d.acquire(ctx)
	if err != nil {
		return apperror.FromStorage(err)
	}
	defer release()

	return apperror.FromStorage(fn(d.gorm.WithContext(ctx)))
}

func (d *DB) acquire(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	waitCtx := ctx
	if d.acquireTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, d.acquireTimeout)
		defer cancel()
	}

	if err := d.slots.Acquire(waitCtx, 1); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrPoolExhausted
	}
	return func() { d.slots.Release(1) }, nil
}

// Ping performs a trivial storage round-trip
func (d *DB) Ping(ctx context.Context) error {
	return d.Run(ctx, func(tx *gorm.DB) error {
		var one int
		return tx.Raw("SELECT 1").Scan(&one).Error
	})
}

// Gorm exposes the underlying handle for migrations and tests
func (d *DB) Gorm() *gorm.DB {
	return d.gorm
}

// Close releases the connection pool
func (d *DB) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
