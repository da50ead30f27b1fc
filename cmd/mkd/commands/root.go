package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mkd-reporter/internal/config"
	"mkd-reporter/pkg/logger"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mkd",
	Short: "MKD daily SKU metrics reporter",
	Long: `MKD每日数据报表系统

Turns the inventory, profit and order exports into one denormalized daily
metrics table per SKU, written to an xlsx report and synced to MySQL.

Examples:
  mkd generate
  mkd view
  mkd clear
  mkd schedule
  mkd serve`,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initRuntime loads .env, builds the config and the logger. Every subcommand
// starts here.
func initRuntime() (*config.Config, *logger.Logger) {
	envMissing := godotenv.Load() != nil

	cfg := config.Load()
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log := logger.New(level, cfg.LogFormat)
	if envMissing {
		log.Debug("no .env file found, using environment variables")
	}
	return cfg, log
}
