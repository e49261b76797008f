package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// blobRow is the single table used by the SQL backends: one row per
// collection key.
type blobRow struct {
	Key       string `gorm:"column:blob_key;primaryKey;type:varchar(191)"`
	Value     []byte `gorm:"column:blob_value"`
	UpdatedAt time.Time
}

func (blobRow) TableName() string { return "catalog_blobs" }

// SQL stores blobs in a relational database through GORM. Both the MySQL
// and SQLite dialectors are supported; see Open.
type SQL struct {
	db *gorm.DB
}

// OpenSQL connects through the given dialector, verifies connectivity and
// migrates the blob table.
func OpenSQL(dialector gorm.Dialector) (*SQL, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := db.AutoMigrate(&blobRow{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQL{db: db}, nil
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row blobRow
	err := s.db.WithContext(ctx).First(&row, "blob_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Value, true, nil
}

func (s *SQL) Put(ctx context.Context, key string, value []byte) error {
	row := blobRow{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blob_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"blob_value", "updated_at"}),
	}).Create(&row).Error
}
