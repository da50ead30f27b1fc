package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SkuDailyMetric is one denormalized daily metrics row per (platform SPU,
// seller SKU). The table is derived data: every batch run fully replaces the
// rows for its data_date, so it can always be rebuilt from the source exports.
type SkuDailyMetric struct {
	ID uint `json:"id" gorm:"primaryKey"`

	PlatformSPU string `json:"platform_spu" gorm:"column:platform_spu;size:20;not null;index:idx_platform_spu;uniqueIndex:uk_sku_date,priority:1"`
	SellerSKU   string `json:"seller_sku" gorm:"column:seller_sku;size:50;not null;index:idx_seller_sku;uniqueIndex:uk_sku_date,priority:2"`
	SellerSPU   string `json:"seller_spu" gorm:"column:seller_spu;size:50"`

	Sales60d int `json:"sales_60d" gorm:"column:sales_60d;default:0"`
	Sales30d int `json:"sales_30d" gorm:"column:sales_30d;default:0"`
	Sales15d int `json:"sales_15d" gorm:"column:sales_15d;default:0"`
	Sales7d  int `json:"sales_7d" gorm:"column:sales_7d;default:0"`

	AvgDailySales  decimal.Decimal `json:"avg_daily_sales" gorm:"column:avg_daily_sales;type:decimal(10,1);default:0"`
	SellableDays   decimal.Decimal `json:"sellable_days" gorm:"column:sellable_days;type:decimal(10,2);default:0"`
	AvailableStock int             `json:"available_stock" gorm:"column:available_stock;default:0"`

	// Ratios are persisted normalized (0.125, not "12.5%"); rendering as a
	// percent string is a presentation concern.
	ProfitRate7d decimal.Decimal `json:"profit_rate_7d" gorm:"column:profit_rate_7d;type:decimal(10,4);default:0"`
	ACOAS7d      decimal.Decimal `json:"acoas_7d" gorm:"column:acoas_7d;type:decimal(10,4);default:0"`

	Sales7dAgo int `json:"sales_7d_ago" gorm:"column:sales_7d_ago;default:0"`
	Sales6dAgo int `json:"sales_6d_ago" gorm:"column:sales_6d_ago;default:0"`
	Sales5dAgo int `json:"sales_5d_ago" gorm:"column:sales_5d_ago;default:0"`
	Sales4dAgo int `json:"sales_4d_ago" gorm:"column:sales_4d_ago;default:0"`
	Sales3dAgo int `json:"sales_3d_ago" gorm:"column:sales_3d_ago;default:0"`
	Sales2dAgo int `json:"sales_2d_ago" gorm:"column:sales_2d_ago;default:0"`
	Sales1dAgo int `json:"sales_1d_ago" gorm:"column:sales_1d_ago;default:0"`

	// Value columns hold the summed line value or the mean unit price for
	// that day, depending on the configured aggregation mode.
	Value7dAgo decimal.Decimal `json:"value_7d_ago" gorm:"column:value_7d_ago;type:decimal(10,2);default:0"`
	Value6dAgo decimal.Decimal `json:"value_6d_ago" gorm:"column:value_6d_ago;type:decimal(10,2);default:0"`
	Value5dAgo decimal.Decimal `json:"value_5d_ago" gorm:"column:value_5d_ago;type:decimal(10,2);default:0"`
	Value4dAgo decimal.Decimal `json:"value_4d_ago" gorm:"column:value_4d_ago;type:decimal(10,2);default:0"`
	Value3dAgo decimal.Decimal `json:"value_3d_ago" gorm:"column:value_3d_ago;type:decimal(10,2);default:0"`
	Value2dAgo decimal.Decimal `json:"value_2d_ago" gorm:"column:value_2d_ago;type:decimal(10,2);default:0"`
	Value1dAgo decimal.Decimal `json:"value_1d_ago" gorm:"column:value_1d_ago;type:decimal(10,2);default:0"`

	DataDate  time.Time `json:"data_date" gorm:"column:data_date;type:date;index:idx_data_date;uniqueIndex:uk_sku_date,priority:3"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SkuDailyMetric) TableName() string {
	return "sku_daily_metrics"
}
