// Package postgres implements the key-value store contract on top of a
// single JSONB table, accessed through GORM. The table offers per-key atomic
// upserts and LIKE-based prefix scans; nothing more is assumed of it.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"washline/config"
	"washline/internal/domain/kvstore"
	"washline/internal/domain/lifecycle"
	"washline/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultTable = "kv_store"

	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// record is the GORM-specific struct for the key-value table.
type record struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value []byte `gorm:"column:value;type:jsonb;not null"`
}

// store implements kvstore.Store over the JSONB table.
type store struct {
	db    *gorm.DB
	table string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL-backed key-value store.
func New(params Params) (kvstore.Store, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres store requires a postgres configuration")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every store operation is a single-key statement; GORM's implicit
		// per-statement transaction only adds round trips here.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	table := defaultTable
	if params.Config.Store != nil && params.Config.Store.Table != "" {
		table = params.Config.Store.Table
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).Table(table).AutoMigrate(&record{}); err != nil {
				return errors.Wrap(err, "failed to migrate key-value table")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return &store{db: db, table: table}, nil
}

// Get returns the raw JSON value for key, or kvstore.ErrKeyNotFound.
func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	var rec record
	if err := s.db.WithContext(ctx).Table(s.table).
		Where("key = ?", key).
		Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kvstore.ErrKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to get key")
	}

	return rec.Value, nil
}

// Set writes value (JSON-marshaled) under key, creating or overwriting.
func (s *store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal value")
	}

	if err := s.db.WithContext(ctx).Table(s.table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&record{Key: key, Value: raw}).Error; err != nil {
		return errors.Wrap(err, "failed to set key")
	}

	return nil
}

// GetByPrefix returns all entries whose key starts with prefix, key-ascending.
func (s *store) GetByPrefix(ctx context.Context, prefix string) ([]kvstore.Entry, error) {
	var records []record
	if err := s.db.WithContext(ctx).Table(s.table).
		Where("key LIKE ?", escapeLikePattern(prefix)+"%").
		Order("key ASC").
		Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to scan prefix")
	}

	entries := make([]kvstore.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, kvstore.Entry{Key: rec.Key, Value: rec.Value})
	}

	return entries, nil
}

// escapeLikePattern neutralizes LIKE metacharacters so a prefix scan matches
// key text literally.
func escapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
