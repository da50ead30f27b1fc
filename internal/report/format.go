package report

import (
	"github.com/shopspring/decimal"
)

// FormatOutput applies the fixed output schema and rounding policy, then
// collapses duplicate (platform SPU, seller SKU) pairs, first occurrence
// winning. This is the single authoritative dedup point of the pipeline.
//
// Rounding: quantities stay integers, monetary values round to 2 decimals,
// ratios to 4, average daily sales to 1, sellable days to 2.
func FormatOutput(records []Record) []OutputRow {
	seen := make(map[Key]struct{}, len(records))
	out := make([]OutputRow, 0, len(records))
	for _, rec := range records {
		key := Key{ProductID: rec.PlatformSPU, SKU: rec.SellerSKU}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		row := OutputRow{
			PlatformSPU:    rec.PlatformSPU,
			SellerSKU:      rec.SellerSKU,
			SellerSPU:      rec.SellerSPU,
			Sales60d:       rec.Sales60d,
			Sales30d:       rec.Sales30d,
			Sales15d:       rec.Sales15d,
			Sales7d:        rec.Sales7d,
			AvgDailySales:  round(rec.AvgDailySales, 1),
			SellableDays:   round(rec.SellableDays, 2),
			ProfitRate7d:   round(rec.ProfitRate7d, 4),
			ACOAS7d:        round(rec.ACOAS7d, 4),
			AvailableStock: rec.AvailableStock,
		}
		for i, bucket := range rec.Daily {
			row.DailySales[i] = bucket.SalesQty
			row.DailyValues[i] = round(bucket.SalesValue, 2)
		}
		out = append(out, row)
	}
	return out
}

// RenderRate renders a normalized ratio for a presentation boundary:
// "0.1250" in decimal mode, "12.50%" in percent mode.
func RenderRate(rate decimal.Decimal, format ProfitFormat) string {
	if format == RatePercentString {
		return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
	}
	return rate.StringFixed(4)
}

func round(v float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(places)
}
