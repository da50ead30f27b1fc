package excel

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"mkd-reporter/internal/report"
	"mkd-reporter/pkg/logger"
)

// reportHeader is the fixed artifact schema, same column order as the
// database table.
var reportHeader = []string{
	"平台SPU", "卖家SKU", "卖家SPU",
	"近60天销量", "近30天销量", "近15天销量", "近7天销量",
	"日均销量", "可售天数", "近7天利润率", "近7天ACOAS", "在售库存",
	"7天前销量", "6天前销量", "5天前销量", "4天前销量", "3天前销量", "2天前销量", "1天前销量",
	"7天前销售额", "6天前销售额", "5天前销售额", "4天前销售额", "3天前销售额", "2天前销售额", "1天前销售额",
}

// Writer produces the xlsx report artifact.
type Writer struct {
	path string
	log  *logger.Logger
	now  func() time.Time
}

func NewWriter(path string, log *logger.Logger) *Writer {
	return &Writer{path: path, log: log, now: time.Now}
}

// Write saves the report. If the configured path cannot be written (open in
// Excel, for example), it falls back to a timestamp-suffixed name instead of
// failing the run. Returns the path actually written.
func (w *Writer) Write(rows []report.OutputRow, format report.ProfitFormat) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &reportHeader); err != nil {
		return "", err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow(sheet, cell, rowValues(row, format)); err != nil {
			return "", err
		}
	}

	err := f.SaveAs(w.path)
	if err == nil {
		return w.path, nil
	}

	fallback := fallbackPath(w.path, w.now())
	w.log.WithError(err).Warnf("%s is locked, saving as %s", w.path, fallback)
	if err := f.SaveAs(fallback); err != nil {
		return "", fmt.Errorf("failed to save report artifact: %w", err)
	}
	return fallback, nil
}

func rowValues(row report.OutputRow, format report.ProfitFormat) *[]interface{} {
	values := []interface{}{
		row.PlatformSPU, row.SellerSKU, row.SellerSPU,
		row.Sales60d, row.Sales30d, row.Sales15d, row.Sales7d,
		row.AvgDailySales.InexactFloat64(),
		row.SellableDays.InexactFloat64(),
		report.RenderRate(row.ProfitRate7d, format),
		report.RenderRate(row.ACOAS7d, format),
		row.AvailableStock,
	}
	// Columns run 7 days ago down to yesterday.
	for i := report.WindowDays - 1; i >= 0; i-- {
		values = append(values, row.DailySales[i])
	}
	for i := report.WindowDays - 1; i >= 0; i-- {
		values = append(values, row.DailyValues[i].InexactFloat64())
	}
	return &values
}

func fallbackPath(path string, now time.Time) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + now.Format("20060102_150405") + ext
}
