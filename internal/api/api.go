package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mkd-reporter/internal/models"
	"mkd-reporter/internal/report"
	"mkd-reporter/internal/store"
)

// APIHandler serves read-only views over the persisted daily metrics table.
type APIHandler struct {
	store        *store.Store
	profitFormat report.ProfitFormat
}

func SetupRoutes(r *gin.RouterGroup, st *store.Store, profitFormat report.ProfitFormat) *APIHandler {
	handler := &APIHandler{
		store:        st,
		profitFormat: profitFormat,
	}

	reportGroup := r.Group("/report")
	{
		reportGroup.GET("/summary", handler.GetSummary)
		reportGroup.GET("/dates", handler.GetDates)
		reportGroup.GET("/latest", handler.GetLatest)
		reportGroup.GET("/rows", handler.GetRowsByDate)
	}

	return handler
}

// GetSummary returns the total persisted row count.
func (h *APIHandler) GetSummary(c *gin.Context) {
	count, err := h.store.TotalCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_rows": count})
}

// GetDates returns the per-date row distribution for the last 7 batch dates.
func (h *APIHandler) GetDates(c *gin.Context) {
	dist, err := h.store.DateDistribution(c.Request.Context(), 7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	type entry struct {
		Date  string `json:"date"`
		Count int64  `json:"count"`
	}
	entries := make([]entry, 0, len(dist))
	for _, d := range dist {
		entries = append(entries, entry{Date: d.DataDate.Format("2006-01-02"), Count: d.Count})
	}
	c.JSON(http.StatusOK, gin.H{"dates": entries})
}

// GetLatest returns the most recently inserted rows (default 10).
func (h *APIHandler) GetLatest(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 10)
	rows, err := h.store.Latest(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": h.render(rows)})
}

// GetRowsByDate returns rows for one batch date (?date=2026-08-29).
func (h *APIHandler) GetRowsByDate(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	limit := parseLimit(c.Query("limit"), 100)
	rows, err := h.store.ByDate(c.Request.Context(), date, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": h.render(rows)})
}

// render overlays the configured rate presentation on top of the raw rows.
func (h *APIHandler) render(rows []models.SkuDailyMetric) []gin.H {
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		out = append(out, gin.H{
			"platform_spu":    row.PlatformSPU,
			"seller_sku":      row.SellerSKU,
			"seller_spu":      row.SellerSPU,
			"sales_7d":        row.Sales7d,
			"available_stock": row.AvailableStock,
			"avg_daily_sales": row.AvgDailySales,
			"sellable_days":   row.SellableDays,
			"profit_rate_7d":  report.RenderRate(row.ProfitRate7d, h.profitFormat),
			"acoas_7d":        report.RenderRate(row.ACOAS7d, h.profitFormat),
			"data_date":       row.DataDate.Format("2006-01-02"),
		})
	}
	return out
}

const maxLimit = 1000

// parseLimit falls back to the endpoint's own default on a missing or
// unusable value and clamps oversized requests to the cap.
func parseLimit(s string, def int) int {
	limit, err := strconv.Atoi(s)
	if err != nil || limit <= 0 {
		return def
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
