package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"mkd-reporter/internal/models"
	"mkd-reporter/internal/report"
	"mkd-reporter/pkg/logger"
)

// CleanupMode selects how a batch's prior rows are cleared before insert.
type CleanupMode int

const (
	// CleanupByDate deletes only the batch date's rows, preserving history.
	CleanupByDate CleanupMode = iota
	// CleanupTruncate empties the whole table, destroying older dates.
	CleanupTruncate
)

func (m CleanupMode) String() string {
	if m == CleanupTruncate {
		return "truncate"
	}
	return "date"
}

// ParseCleanupMode is lenient: unknown values fall back to CleanupByDate.
func ParseCleanupMode(s string) CleanupMode {
	if s == "truncate" {
		return CleanupTruncate
	}
	return CleanupByDate
}

// Open connects to MySQL and tunes the connection pool.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Store is the full-replace sink for daily metrics. Clear and insert are two
// separate statements: a crash between them leaves the batch window empty.
type Store struct {
	db      *gorm.DB
	cleanup CleanupMode
	log     *logger.Logger
}

func New(db *gorm.DB, cleanup CleanupMode, log *logger.Logger) *Store {
	return &Store{db: db, cleanup: cleanup, log: log}
}

// EnsureSchema creates the target table if absent. Idempotent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.SkuDailyMetric{})
}

// Replace clears the batch's identity scope per the cleanup mode, then bulk
// inserts the new rows tagged with the batch date.
func (s *Store) Replace(ctx context.Context, rows []report.OutputRow, batchDate time.Time) (int64, error) {
	cleared, err := s.clear(ctx, batchDate)
	if err != nil {
		return cleared, fmt.Errorf("failed to clear batch: %w", err)
	}
	if cleared > 0 {
		s.log.Infof("cleared %d stale rows", cleared)
	}

	metrics := toMetrics(rows, batchDate)
	if err := s.db.WithContext(ctx).CreateInBatches(metrics, 100).Error; err != nil {
		return cleared, fmt.Errorf("failed to insert batch: %w", err)
	}
	return cleared, nil
}

func (s *Store) clear(ctx context.Context, batchDate time.Time) (int64, error) {
	if s.cleanup == CleanupTruncate {
		table := (models.SkuDailyMetric{}).TableName()
		return 0, s.db.WithContext(ctx).Exec("TRUNCATE TABLE " + table).Error
	}
	res := s.db.WithContext(ctx).
		Where("data_date = ?", batchDate).
		Delete(&models.SkuDailyMetric{})
	return res.RowsAffected, res.Error
}

// ClearDate removes one date's rows regardless of cleanup mode.
func (s *Store) ClearDate(ctx context.Context, date time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("data_date = ?", date).
		Delete(&models.SkuDailyMetric{})
	return res.RowsAffected, res.Error
}

// Rebuild drops and recreates the table. Destroys all data.
func (s *Store) Rebuild(ctx context.Context) error {
	migrator := s.db.WithContext(ctx).Migrator()
	if migrator.HasTable(&models.SkuDailyMetric{}) {
		if err := migrator.DropTable(&models.SkuDailyMetric{}); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	return s.EnsureSchema(ctx)
}

// TotalCount returns the number of persisted rows across all dates.
func (s *Store) TotalCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.SkuDailyMetric{}).Count(&count).Error
	return count, err
}

// DateCount is one entry of the per-date row distribution.
type DateCount struct {
	DataDate time.Time `gorm:"column:data_date"`
	Count    int64     `gorm:"column:count"`
}

// DateDistribution returns row counts for the most recent dates.
func (s *Store) DateDistribution(ctx context.Context, limit int) ([]DateCount, error) {
	var dist []DateCount
	err := s.db.WithContext(ctx).
		Model(&models.SkuDailyMetric{}).
		Select("data_date, COUNT(*) AS count").
		Group("data_date").
		Order("data_date DESC").
		Limit(limit).
		Find(&dist).Error
	return dist, err
}

// Latest returns the most recently inserted rows.
func (s *Store) Latest(ctx context.Context, limit int) ([]models.SkuDailyMetric, error) {
	var rows []models.SkuDailyMetric
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// ByDate returns rows for one data date.
func (s *Store) ByDate(ctx context.Context, date time.Time, limit int) ([]models.SkuDailyMetric, error) {
	var rows []models.SkuDailyMetric
	err := s.db.WithContext(ctx).
		Where("data_date = ?", date).
		Order("id").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func toMetrics(rows []report.OutputRow, batchDate time.Time) []models.SkuDailyMetric {
	metrics := make([]models.SkuDailyMetric, 0, len(rows))
	for _, row := range rows {
		metrics = append(metrics, models.SkuDailyMetric{
			PlatformSPU:    row.PlatformSPU,
			SellerSKU:      row.SellerSKU,
			SellerSPU:      row.SellerSPU,
			Sales60d:       row.Sales60d,
			Sales30d:       row.Sales30d,
			Sales15d:       row.Sales15d,
			Sales7d:        row.Sales7d,
			AvgDailySales:  row.AvgDailySales,
			SellableDays:   row.SellableDays,
			AvailableStock: row.AvailableStock,
			ProfitRate7d:   row.ProfitRate7d,
			ACOAS7d:        row.ACOAS7d,
			Sales7dAgo:     row.DailySales[6],
			Sales6dAgo:     row.DailySales[5],
			Sales5dAgo:     row.DailySales[4],
			Sales4dAgo:     row.DailySales[3],
			Sales3dAgo:     row.DailySales[2],
			Sales2dAgo:     row.DailySales[1],
			Sales1dAgo:     row.DailySales[0],
			Value7dAgo:     row.DailyValues[6],
			Value6dAgo:     row.DailyValues[5],
			Value5dAgo:     row.DailyValues[4],
			Value4dAgo:     row.DailyValues[3],
			Value3dAgo:     row.DailyValues[2],
			Value2dAgo:     row.DailyValues[1],
			Value1dAgo:     row.DailyValues[0],
			DataDate:       batchDate,
		})
	}
	return metrics
}
