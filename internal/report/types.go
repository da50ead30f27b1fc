package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusPaid is the canonical order status that participates in the daily
// window aggregation (订单状态 == 已支付).
const StatusPaid = "已支付"

// WindowDays is the trailing aggregation horizon: buckets cover 1..7 days
// before the run date, excluding the run date itself.
const WindowDays = 7

// InventoryRow is one projected row of the inventory export (库存管理).
type InventoryRow struct {
	ProductID      string // 商品ID
	SKU            string // 商品SKU
	AvailableStock int    // 可用库存
	Sales7d        int    // 近7天销量
	Sales15d       int    // 近15天销量
	Sales30d       int    // 近30天销量
	Sales60d       int    // 近60天销量
}

// ProfitRow is one projected row of the profit analysis export (利润分析).
// Rate fields stay raw strings here: the source mixes percent strings
// ("12.5%"), plain decimals and placeholder dashes, normalized by JoinProfit.
type ProfitRow struct {
	ProductID     string // 商品ID
	NetProfitRate string // 净利率
	ACOAS         string // ACoAS
}

// OrderEvent is one projected row of the order ledger export (订单管理).
// Value holds the 销售单价/销售额 column; whether it is read as a line value
// or a unit price is decided by the aggregation mode.
type OrderEvent struct {
	OrderDate time.Time // 订单日期
	Status    string    // 订单状态
	ProductID string    // 商品ID
	SKU       string    // SKU
	Quantity  int       // 销售数量
	Value     float64   // 销售单价(MXN)
}

// DailyBucket is the aggregate for one trailing calendar day.
type DailyBucket struct {
	SalesQty   int
	SalesValue float64
}

// Record is one in-flight pipeline row per (platform SPU, seller SKU).
// Daily[i] covers (i+1) days before the run date.
type Record struct {
	PlatformSPU    string
	SellerSKU      string
	SellerSPU      string
	AvailableStock int
	Sales7d        int
	Sales15d       int
	Sales30d       int
	Sales60d       int
	AvgDailySales  float64
	SellableDays   float64
	ProfitRate7d   float64
	ACOAS7d        float64
	Daily          [WindowDays]DailyBucket
}

// Key identifies a SKU across the order ledger and the inventory snapshot.
// Both sources must use the same identifier domain or the merge step yields
// all-zero buckets.
type Key struct {
	ProductID string
	SKU       string
}

// OutputRow is one finalized row with the rounding policy applied, ready for
// the sink and the report artifact. Daily ordering matches Record.
type OutputRow struct {
	PlatformSPU    string
	SellerSKU      string
	SellerSPU      string
	Sales60d       int
	Sales30d       int
	Sales15d       int
	Sales7d        int
	AvgDailySales  decimal.Decimal // 1dp
	SellableDays   decimal.Decimal // 2dp
	ProfitRate7d   decimal.Decimal // 4dp
	ACOAS7d        decimal.Decimal // 4dp
	AvailableStock int
	DailySales     [WindowDays]int
	DailyValues    [WindowDays]decimal.Decimal // 2dp
}

// DailyAggregationMode selects how the order value column is aggregated per
// day. The two modes correspond to the two pipeline revisions that shipped.
type DailyAggregationMode int

const (
	// SumLineValue treats the value column as a line value and sums it.
	SumLineValue DailyAggregationMode = iota
	// MeanUnitPrice treats the value column as a unit price and averages it.
	MeanUnitPrice
)

func (m DailyAggregationMode) String() string {
	if m == MeanUnitPrice {
		return "mean"
	}
	return "sum"
}

// ParseDailyAggregationMode is lenient: unknown values fall back to
// SumLineValue.
func ParseDailyAggregationMode(s string) DailyAggregationMode {
	if s == "mean" {
		return MeanUnitPrice
	}
	return SumLineValue
}

// ProfitFormat selects how ratio columns are rendered at presentation
// boundaries (report artifact, API). Persistence always uses normalized
// decimals.
type ProfitFormat int

const (
	// RateDecimal renders ratios as normalized decimals ("0.1250").
	RateDecimal ProfitFormat = iota
	// RatePercentString renders ratios as percent strings ("12.50%").
	RatePercentString
)

func (f ProfitFormat) String() string {
	if f == RatePercentString {
		return "percent"
	}
	return "decimal"
}

// ParseProfitFormat is lenient: unknown values fall back to RateDecimal.
func ParseProfitFormat(s string) ProfitFormat {
	if s == "percent" {
		return RatePercentString
	}
	return RateDecimal
}
