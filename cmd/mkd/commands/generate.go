package commands

import (
	"context"

	"github.com/spf13/cobra"

	"mkd-reporter/internal/config"
	"mkd-reporter/internal/excel"
	"mkd-reporter/internal/report"
	"mkd-reporter/internal/store"
	"mkd-reporter/pkg/logger"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"run"},
	Short:   "Generate the daily report and sync it to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := initRuntime()
		runner := buildRunner(cfg, log)

		result, err := runner.Run(cmd.Context())
		if err != nil {
			log.WithError(err).Error("report generation failed")
			return err
		}
		logResult(log, result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// buildRunner wires the pipeline boundaries. A database connection failure is
// downgraded to a skipped sink: the report artifact is still worth producing.
func buildRunner(cfg *config.Config, log *logger.Logger) *report.Runner {
	source := excel.NewSource(cfg.SourceDir, log)
	writer := excel.NewWriter(cfg.OutputFile, log)

	var sink report.Sink
	if db, err := store.Open(cfg.DatabaseURL); err != nil {
		log.WithError(err).Warn("database unavailable, sync will be skipped")
	} else {
		sink = store.New(db, store.ParseCleanupMode(cfg.CleanupMode), log)
	}

	return report.NewRunner(
		source, writer, sink, log,
		report.ParseDailyAggregationMode(cfg.DailyAggMode),
		report.ParseProfitFormat(cfg.ProfitFormat),
	)
}

func logResult(log *logger.Logger, result *report.RunResult) {
	log.Infof("batch %s: %d rows -> %s (sink: %s)",
		result.BatchDate.Format("2006-01-02"),
		result.OutputRows,
		result.ArtifactPath,
		result.SinkStatus,
	)
}

// runOnce is the scheduler entry point for a full generation cycle.
func runOnce(ctx context.Context, cfg *config.Config, log *logger.Logger) {
	result, err := buildRunner(cfg, log).Run(ctx)
	if err != nil {
		log.WithError(err).Error("scheduled report generation failed")
		return
	}
	logResult(log, result)
}
