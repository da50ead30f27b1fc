package report

import (
	"strconv"
	"strings"
)

// JoinProfit left-joins the profit analysis rows onto the base records by
// platform SPU. Profit rows are deduplicated first (first occurrence wins),
// so cardinality is preserved 1:1. Records without a match keep zero rates.
func JoinProfit(records []Record, rows []ProfitRow) []Record {
	rates := make(map[string]ProfitRow, len(rows))
	for _, row := range rows {
		if _, seen := rates[row.ProductID]; !seen {
			rates[row.ProductID] = row
		}
	}

	out := make([]Record, len(records))
	for i, rec := range records {
		if row, ok := rates[rec.PlatformSPU]; ok {
			rec.ProfitRate7d = ParseRate(row.NetProfitRate)
			rec.ACOAS7d = ParseRate(row.ACOAS)
		}
		out[i] = rec
	}
	return out
}

// ParseRate normalizes a ratio field to a decimal ratio. Percent strings
// ("12.5%") are divided by 100, plain numbers pass through, and anything
// blank, dashed or unparseable degrades to 0 rather than failing the run.
func ParseRate(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return 0
	}
	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	if percent {
		return v / 100
	}
	return v
}
