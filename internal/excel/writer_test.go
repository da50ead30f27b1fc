package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mkd-reporter/internal/report"
)

func sampleRow() report.OutputRow {
	row := report.OutputRow{
		PlatformSPU:    "P1",
		SellerSKU:      "ABC-001",
		SellerSPU:      "ABC",
		Sales60d:       80,
		Sales30d:       40,
		Sales15d:       15,
		Sales7d:        7,
		AvgDailySales:  decimal.RequireFromString("1.0"),
		SellableDays:   decimal.RequireFromString("100.00"),
		ProfitRate7d:   decimal.RequireFromString("0.125"),
		ACOAS7d:        decimal.RequireFromString("0.08"),
		AvailableStock: 100,
	}
	row.DailySales[2] = 5
	row.DailyValues[2] = decimal.RequireFromString("50.00")
	return row
}

func TestWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mkddaily.xlsx")
	writer := NewWriter(path, testLogger())

	got, err := writer.Write([]report.OutputRow{sampleRow()}, report.RateDecimal)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "平台SPU", rows[0][0])
	assert.Equal(t, "近7天利润率", rows[0][9])
	assert.Equal(t, "1天前销量", rows[0][18])

	data := rows[1]
	assert.Equal(t, "P1", data[0])
	assert.Equal(t, "ABC-001", data[1])
	assert.Equal(t, "ABC", data[2])
	assert.Equal(t, "0.1250", data[9])
	// Day-3 quantity sits in the 16th position (7d..1d ago ordering).
	assert.Equal(t, "5", data[16])
}

func TestWriter_WritePercentFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mkddaily.xlsx")
	writer := NewWriter(path, testLogger())

	_, err := writer.Write([]report.OutputRow{sampleRow()}, report.RatePercentString)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Equal(t, "12.50%", rows[1][9])
	assert.Equal(t, "8.00%", rows[1][10])
}

func TestWriter_FallbackOnLockedPath(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on the target path makes SaveAs fail the same
	// way a file lock does.
	path := filepath.Join(dir, "mkddaily.xlsx")
	require.NoError(t, os.Mkdir(path, 0o755))

	writer := NewWriter(path, testLogger())
	got, err := writer.Write([]report.OutputRow{sampleRow()}, report.RateDecimal)
	require.NoError(t, err)
	assert.NotEqual(t, path, got)
	assert.Contains(t, got, "mkddaily_")

	_, err = os.Stat(got)
	assert.NoError(t, err)
}
