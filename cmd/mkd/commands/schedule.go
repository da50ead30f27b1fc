package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the report pipeline on a daily cron schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := initRuntime()
		ctx := cmd.Context()

		c := cron.New(cron.WithSeconds())
		if _, err := c.AddFunc(cfg.ScheduleSpec, func() {
			runOnce(ctx, cfg, log)
		}); err != nil {
			return err
		}

		c.Start()
		log.Infof("scheduler started with spec %q", cfg.ScheduleSpec)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("scheduler stopping")
		<-c.Stop().Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}
