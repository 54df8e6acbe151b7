package cmd

import (
	"fmt"

	"craft-planner/feature/tracker"

	"github.com/spf13/cobra"
)

var (
	planQty     int
	ignoreOwned bool
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan <itemId>",
	Short: "Plan what to buy to craft an item, using owned stock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseItemID(args[0])
		if err != nil {
			return err
		}
		rt, err := bootstrap(false)
		if err != nil {
			return err
		}
		if err := rt.migrate(); err != nil {
			return err
		}

		svc := tracker.NewService(rt.source, rt.prices, rt.owned, rt.cfg.Planner, rt.logger)
		report, err := svc.Plan(cmd.Context(), id, planQty, ignoreOwned)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(report)
		}

		fmt.Printf("=== %d x %s (#%d) ===\n", report.Quantity, report.Name, report.Root)
		if !report.OwnedUsed {
			fmt.Println("Owned stock: not used")
		}
		for _, row := range report.Purchases {
			fmt.Printf("  %6d x %-30s @ %8s %-12s = %s\n", row.Quantity, row.Name, gil(row.UnitPrice), row.Origin, gil(row.Total))
		}
		fmt.Printf("Known Total: %.0f\n", report.KnownTotal)
		if !report.Complete {
			fmt.Printf("Incomplete: unpriced=%v cycles=%v truncated=%t\n", report.Unpriced, report.Cycles, report.Truncated)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(planCmd)
	planCmd.Flags().IntVar(&planQty, "qty", 1, "Units to craft")
	planCmd.Flags().BoolVar(&ignoreOwned, "ignore-owned", false, "Plan as if nothing is owned")
}
