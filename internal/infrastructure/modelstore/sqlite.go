// Package modelstore persists resolved catalog snapshots to a local sqlite
// database so restarts can serve data before the first refresh completes.
package modelstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"catalog-api/internal/domain/catalog"
	"catalog-api/internal/infrastructure/logger"
)

// ModelRecord is one persisted model: the id plus the full resolved record
// as a self-describing JSON blob. The blob layout is owned by the domain
// model's JSON tags, so schema migrations are limited to this table shape.
type ModelRecord struct {
	ID        string         `gorm:"primaryKey;size:128"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

func (ModelRecord) TableName() string { return "model_records" }

// SQLiteRepository implements catalog.ModelRepository on a local sqlite file.
type SQLiteRepository struct {
	db *gorm.DB
}

// New opens (creating if needed) the sqlite database at path and migrates
// the snapshot table.
func New(path string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite db %q: %w", path, err)
	}
	if err := db.AutoMigrate(&ModelRecord{}); err != nil {
		return nil, fmt.Errorf("migrate model_records: %w", err)
	}

	log := logger.GetLogger()
	log.Info().Str("path", path).Msg("snapshot database ready")
	return &SQLiteRepository{db: db}, nil
}

// ReplaceAll swaps the persisted snapshot for the given batch in one
// transaction: full delete then insert, mirroring the in-memory semantics.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, models []*catalog.Model) error {
	now := time.Now().UTC()

	rows := make([]ModelRecord, 0, len(models))
	for _, m := range models {
		blob, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshal model %q: %w", m.ID, err)
		}
		rows = append(rows, ModelRecord{ID: m.ID, Data: datatypes.JSON(blob), UpdatedAt: now})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ModelRecord{}).Error; err != nil {
			return fmt.Errorf("clear model_records: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			return fmt.Errorf("insert model_records: %w", err)
		}
		return nil
	})
}

// LoadAll reads every persisted record back into domain models. Rows that no
// longer unmarshal are skipped with a warning rather than failing the whole
// restore.
func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]*catalog.Model, error) {
	var rows []ModelRecord
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load model_records: %w", err)
	}

	log := logger.GetLogger()
	models := make([]*catalog.Model, 0, len(rows))
	for _, row := range rows {
		var m catalog.Model
		if err := json.Unmarshal(row.Data, &m); err != nil {
			log.Warn().Err(err).Str("model_id", row.ID).Msg("skipping unreadable persisted record")
			continue
		}
		models = append(models, &m)
	}
	return models, nil
}
