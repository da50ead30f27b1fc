package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mkd-reporter/internal/store"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete today's rows from the metrics table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := initRuntime()

		db, err := store.Open(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		st := store.New(db, store.ParseCleanupMode(cfg.CleanupMode), log)

		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		deleted, err := st.ClearDate(cmd.Context(), today)
		if err != nil {
			return err
		}
		fmt.Printf("deleted %d rows for %s\n", deleted, today.Format("2006-01-02"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
