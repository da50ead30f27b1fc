package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"mkd-reporter/internal/report"
	"mkd-reporter/pkg/logger"
)

// Source kinds, used in MissingSourceError.
const (
	KindInventory = "inventory"
	KindProfit    = "profit"
	KindOrders    = "orders"
)

// Filename keywords identifying each export in the source directory.
const (
	keywordInventory = "库存管理"
	keywordProfit    = "利润分析"
	keywordOrders    = "订单管理"
)

// MissingSourceError reports that one of the three required source exports
// could not be located. The run aborts before any computation.
type MissingSourceError struct {
	Kind string
	Dir  string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("no %s export found in %s", e.Kind, e.Dir)
}

// Source locates and reads the three xlsx exports from a directory.
type Source struct {
	dir string
	log *logger.Logger
}

func NewSource(dir string, log *logger.Logger) *Source {
	return &Source{dir: dir, log: log}
}

// Load finds the newest export of each kind and reads the projected columns.
func (s *Source) Load() (report.Tables, error) {
	var tables report.Tables

	invPath, err := s.findLatest(keywordInventory, KindInventory)
	if err != nil {
		return tables, err
	}
	profitPath, err := s.findLatest(keywordProfit, KindProfit)
	if err != nil {
		return tables, err
	}
	orderPath, err := s.findLatest(keywordOrders, KindOrders)
	if err != nil {
		return tables, err
	}

	s.log.Infof("reading inventory export: %s", filepath.Base(invPath))
	if tables.Inventory, err = readInventory(invPath); err != nil {
		return tables, err
	}
	s.log.Infof("reading profit export: %s", filepath.Base(profitPath))
	if tables.Profit, err = readProfit(profitPath); err != nil {
		return tables, err
	}
	s.log.Infof("reading order export: %s", filepath.Base(orderPath))
	if tables.Orders, err = readOrders(orderPath); err != nil {
		return tables, err
	}
	return tables, nil
}

// findLatest picks the most recently modified xlsx whose name contains the
// keyword, skipping Office lock files (~$ prefix).
func (s *Source) findLatest(keyword, kind string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.xlsx"))
	if err != nil {
		return "", err
	}
	var best string
	var bestMod time.Time
	for _, path := range matches {
		base := filepath.Base(path)
		if strings.HasPrefix(base, "~$") || !strings.Contains(base, keyword) {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if best == "" || info.ModTime().After(bestMod) {
			best = path
			bestMod = info.ModTime()
		}
	}
	if best == "" {
		return "", &MissingSourceError{Kind: kind, Dir: s.dir}
	}
	return best, nil
}

func readInventory(path string) ([]report.InventoryRow, error) {
	rows, header, err := openSheet(path)
	if err != nil {
		return nil, err
	}
	cols, err := requireColumns(header, path,
		"商品ID", "商品SKU", "可用库存", "近7天销量", "近15天销量", "近30天销量", "近60天销量")
	if err != nil {
		return nil, err
	}
	out := make([]report.InventoryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.InventoryRow{
			ProductID:      cell(row, cols["商品ID"]),
			SKU:            cell(row, cols["商品SKU"]),
			AvailableStock: parseInt(cell(row, cols["可用库存"])),
			Sales7d:        parseInt(cell(row, cols["近7天销量"])),
			Sales15d:       parseInt(cell(row, cols["近15天销量"])),
			Sales30d:       parseInt(cell(row, cols["近30天销量"])),
			Sales60d:       parseInt(cell(row, cols["近60天销量"])),
		})
	}
	return out, nil
}

func readProfit(path string) ([]report.ProfitRow, error) {
	rows, header, err := openSheet(path)
	if err != nil {
		return nil, err
	}
	cols, err := requireColumns(header, path, "商品ID", "净利率", "ACoAS")
	if err != nil {
		return nil, err
	}
	out := make([]report.ProfitRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.ProfitRow{
			ProductID:     cell(row, cols["商品ID"]),
			NetProfitRate: cell(row, cols["净利率"]),
			ACOAS:         cell(row, cols["ACoAS"]),
		})
	}
	return out, nil
}

func readOrders(path string) ([]report.OrderEvent, error) {
	rows, header, err := openSheet(path)
	if err != nil {
		return nil, err
	}
	cols, err := requireColumns(header, path,
		"订单日期", "订单状态", "商品ID", "SKU", "销售数量", "销售单价(MXN)")
	if err != nil {
		return nil, err
	}
	out := make([]report.OrderEvent, 0, len(rows))
	for _, row := range rows {
		date, ok := parseDate(cell(row, cols["订单日期"]))
		if !ok {
			// An undatable order cannot be bucketed; it behaves like one
			// outside the window.
			continue
		}
		out = append(out, report.OrderEvent{
			OrderDate: date,
			Status:    cell(row, cols["订单状态"]),
			ProductID: cell(row, cols["商品ID"]),
			SKU:       cell(row, cols["SKU"]),
			Quantity:  parseInt(cell(row, cols["销售数量"])),
			Value:     parseFloat(cell(row, cols["销售单价(MXN)"])),
		})
	}
	return out, nil
}

// openSheet reads the first sheet and splits off the header row.
func openSheet(path string) (rows [][]string, header []string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	all, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%s has no header row", path)
	}
	return all[1:], all[0], nil
}

func requireColumns(header []string, path string, names ...string) (map[string]int, error) {
	cols := make(map[string]int, len(names))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, name := range names {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("column %q missing in %s", name, path)
		}
	}
	return cols, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// Numeric parsing is lenient: malformed cells degrade to 0 instead of
// aborting the run.
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	// Some exports format counts as "12.0"
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return int(v)
	}
	return 0
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01-02-06 15:04",
	"01-02-06",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
