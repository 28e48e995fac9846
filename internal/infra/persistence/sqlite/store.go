// Package sqlite contains the embedded persistent key-value store backed by
// GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"

	"mydrip/config"
	"mydrip/internal/domain/lifecycle"
	"mydrip/internal/domain/repository"
	"mydrip/internal/errors"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entryModel is the single table of the store: one row per canonical key.
type entryModel struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

// TableName maps the model to its table.
func (entryModel) TableName() string {
	return "kv_entries"
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type store struct {
	db *gorm.DB
}

// New opens the sqlite-backed store and registers its shutdown hook.
func New(params Params) (repository.KVStore, error) {
	path := "mydrip.db"
	if params.Config.Storage != nil && params.Config.Storage.Path != "" {
		path = params.Config.Storage.Path
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// Repositories issue single-statement writes; multi-step atomicity
		// goes through Execute, so the implicit per-statement transaction
		// is unnecessary overhead.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite store")
	}

	if err := db.AutoMigrate(&entryModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_entries")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping sqlite store")
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return &store{db: db}, nil
}

// NewWithDB wraps an existing GORM handle. Used by the CLI, which manages
// the connection itself.
func NewWithDB(db *gorm.DB) (repository.KVStore, error) {
	if err := db.AutoMigrate(&entryModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_entries")
	}

	return &store{db: db}, nil
}

// Get returns the value stored under key, or repository.ErrKeyNotFound.
func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	return get(ctx, s.db, key)
}

// Set stores value under key, overwriting any previous value.
func (s *store) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, s.db, key, value)
}

// Delete removes key. Deleting an absent key is not an error.
func (s *store) Delete(ctx context.Context, key string) error {
	return del(ctx, s.db, key)
}

// Execute runs fn inside one database transaction.
func (s *store) Execute(ctx context.Context, fn func(tx repository.KV) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txKV{db: tx})
	})

	return errors.Wrap(err, "sqlite transaction failed")
}

// txKV is the transactional view handed to Execute callbacks.
type txKV struct {
	db *gorm.DB
}

func (t *txKV) Get(ctx context.Context, key string) ([]byte, error) {
	return get(ctx, t.db, key)
}

func (t *txKV) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, t.db, key, value)
}

func (t *txKV) Delete(ctx context.Context, key string) error {
	return del(ctx, t.db, key)
}

func get(ctx context.Context, db *gorm.DB, key string) ([]byte, error) {
	var entry entryModel
	if err := db.WithContext(ctx).First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to get key %s", key)
	}

	return entry.Value, nil
}

func set(ctx context.Context, db *gorm.DB, key string, value []byte) error {
	entry := entryModel{Key: key, Value: value}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error

	return errors.Wrapf(err, "failed to set key %s", key)
}

func del(ctx context.Context, db *gorm.DB, key string) error {
	err := db.WithContext(ctx).Delete(&entryModel{}, "key = ?", key).Error

	return errors.Wrapf(err, "failed to delete key %s", key)
}
