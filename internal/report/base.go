package report

// BuildBase turns the inventory snapshot into the base record set, one record
// per input row in input order. No filtering: zero-stock and zero-sales rows
// stay in.
func BuildBase(rows []InventoryRow) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		avg := avgDailySales(row.Sales7d, row.Sales15d)
		records = append(records, Record{
			PlatformSPU:    row.ProductID,
			SellerSKU:      row.SKU,
			SellerSPU:      DeriveSellerSPU(row.SKU),
			AvailableStock: row.AvailableStock,
			Sales7d:        row.Sales7d,
			Sales15d:       row.Sales15d,
			Sales30d:       row.Sales30d,
			Sales60d:       row.Sales60d,
			AvgDailySales:  avg,
			SellableDays:   sellableDays(row.AvailableStock, avg),
		})
	}
	return records
}

// avgDailySales blends the 7-day and 15-day windows 60/40, favoring the
// shorter window: 0.6*s7/7 + 0.4*s15/15.
func avgDailySales(sales7d, sales15d int) float64 {
	return 0.6*float64(sales7d)/7 + 0.4*float64(sales15d)/15
}

// sellableDays is the stock runway. Zero average sales maps to 0, not
// infinity; callers must not read 0 as "no stock".
func sellableDays(stock int, avg float64) float64 {
	if avg > 0 {
		return float64(stock) / avg
	}
	return 0
}
