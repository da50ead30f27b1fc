package commands

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"mkd-reporter/internal/api"
	"mkd-reporter/internal/report"
	"mkd-reporter/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only HTTP API over the metrics table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := initRuntime()

		db, err := store.Open(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		st := store.New(db, store.ParseCleanupMode(cfg.CleanupMode), log)

		if cfg.Environment != "development" {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.Default()

		r.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		apiGroup := r.Group("/api/v1")
		api.SetupRoutes(apiGroup, st, report.ParseProfitFormat(cfg.ProfitFormat))

		log.Infof("report API listening on port %s", cfg.Port)
		return r.Run(":" + cfg.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
