package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mkd-reporter/internal/store"
)

var viewCmd = &cobra.Command{
	Use:     "view",
	Aliases: []string{"show"},
	Short:   "Show what is currently persisted in the metrics table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := initRuntime()
		ctx := cmd.Context()

		db, err := store.Open(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		st := store.New(db, store.ParseCleanupMode(cfg.CleanupMode), log)

		total, err := st.TotalCount(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("total rows: %d\n", total)

		dist, err := st.DateDistribution(ctx, 7)
		if err != nil {
			return err
		}
		if len(dist) > 0 {
			fmt.Println("\nrows per date (last 7 batches):")
			for _, d := range dist {
				fmt.Printf("  %s  %d\n", d.DataDate.Format("2006-01-02"), d.Count)
			}
		}

		rows, err := st.Latest(ctx, 10)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			fmt.Println("\nlatest 10 rows:")
			fmt.Printf("%-15s %-22s %8s %8s  %s\n", "platform_spu", "seller_sku", "sales_7d", "stock", "date")
			for _, row := range rows {
				fmt.Printf("%-15s %-22s %8d %8d  %s\n",
					row.PlatformSPU, row.SellerSKU, row.Sales7d, row.AvailableStock,
					row.DataDate.Format("2006-01-02"))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
