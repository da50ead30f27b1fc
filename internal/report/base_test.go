package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBase(t *testing.T) {
	rows := []InventoryRow{
		{ProductID: "P1", SKU: "ABC-001", AvailableStock: 100, Sales7d: 7, Sales15d: 15, Sales30d: 40, Sales60d: 80},
		{ProductID: "P2", SKU: "XYZ", AvailableStock: 50, Sales7d: 0, Sales15d: 0},
	}

	records := BuildBase(rows)
	require.Len(t, records, 2)

	// 0.6*7/7 + 0.4*15/15 == 1.0, runway == 100/1.0
	assert.Equal(t, "P1", records[0].PlatformSPU)
	assert.Equal(t, "ABC-001", records[0].SellerSKU)
	assert.Equal(t, "ABC", records[0].SellerSPU)
	assert.InDelta(t, 1.0, records[0].AvgDailySales, 1e-9)
	assert.InDelta(t, 100.0, records[0].SellableDays, 1e-9)
	assert.Equal(t, 40, records[0].Sales30d)
	assert.Equal(t, 80, records[0].Sales60d)

	// Zero sales: runway is 0, not infinity, even with stock on hand.
	assert.Equal(t, "XYZ", records[1].SellerSPU)
	assert.Zero(t, records[1].AvgDailySales)
	assert.Zero(t, records[1].SellableDays)
	assert.Equal(t, 50, records[1].AvailableStock)
}

func TestBuildBase_KeepsEveryRowInOrder(t *testing.T) {
	rows := []InventoryRow{
		{ProductID: "P1", SKU: "A-1"},
		{ProductID: "P1", SKU: "A-1"}, // duplicate survives until the formatter
		{ProductID: "P2", SKU: ""},
	}

	records := BuildBase(rows)
	require.Len(t, records, 3)
	assert.Equal(t, "P1", records[0].PlatformSPU)
	assert.Equal(t, "P1", records[1].PlatformSPU)
	assert.Equal(t, "P2", records[2].PlatformSPU)
	assert.Equal(t, "", records[2].SellerSKU)
}

func TestAvgDailySales(t *testing.T) {
	tests := []struct {
		name     string
		sales7d  int
		sales15d int
		want     float64
	}{
		{"blend favors short window", 14, 15, 0.6*2 + 0.4*1},
		{"all zero", 0, 0, 0},
		{"only 15d window", 0, 30, 0.8},
		{"only 7d window", 7, 0, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := avgDailySales(tt.sales7d, tt.sales15d)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}
