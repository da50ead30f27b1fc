package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mkd-reporter/internal/store"
)

var setupYes bool

var setupCmd = &cobra.Command{
	Use:     "setup",
	Aliases: []string{"rebuild"},
	Short:   "Drop and recreate the metrics table (destroys all data)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := initRuntime()

		if !setupYes && !confirm("This drops the table and all its data. Continue? (yes/no): ") {
			fmt.Println("aborted")
			return nil
		}

		db, err := store.Open(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		st := store.New(db, store.ParseCleanupMode(cfg.CleanupMode), log)

		if err := st.Rebuild(cmd.Context()); err != nil {
			return err
		}
		log.Info("metrics table rebuilt")
		return nil
	},
}

func init() {
	setupCmd.Flags().BoolVar(&setupYes, "yes", false, "skip the confirmation prompt")
	rootCmd.AddCommand(setupCmd)
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(line)) == "yes"
}
