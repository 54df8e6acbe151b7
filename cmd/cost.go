package cmd

import (
	"fmt"

	"craft-planner/feature/cost"

	"github.com/spf13/cobra"
)

// needsCmd represents the needs command
var needsCmd = &cobra.Command{
	Use:   "needs <itemId>",
	Short: "Print the full bill of materials of one unit",
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

		svc := cost.NewService(rt.source, rt.prices, rt.cfg.Planner, rt.logger)
		report, err := svc.Needs(cmd.Context(), id)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(report)
		}

		fmt.Printf("%s (#%d)\n", report.Root.Name, report.Root.ID)
		for _, row := range report.Rows {
			fmt.Printf("  %6d x %s (#%d)\n", row.Quantity, row.Name, row.ID)
		}
		return nil
	},
}

// costCmd represents the cost command
var costCmd = &cobra.Command{
	Use:   "cost <itemId>",
	Short: "Compare the market price of an item with its craft cost",
	Long: `Prices the item and its ingredients in one market snapshot, shows the root's market price
next to its craft cost, and lists the cheapest purchases to craft it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseItemID(args[0])
		if err != nil {
			return err
		}
		rt, err := bootstrap(false)
		if err != nil {
			return err
		}

		svc := cost.NewService(rt.source, rt.prices, rt.cfg.Planner, rt.logger)
		est, err := svc.Estimate(cmd.Context(), id)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(est)
		}

		fmt.Printf("=== %s (#%d) ===\n", est.Root.Name, est.Root.ID)
		fmt.Printf("Market Price: %s %s\n", gil(est.MarketPrice), est.MarketOrigin)
		fmt.Printf("Craft Cost: %s\n", gil(est.CraftCost))
		fmt.Println("Shopping List:")
		for _, row := range est.Rows {
			fmt.Printf("  %6d x %-30s @ %8s %-12s = %s\n", row.Quantity, row.Name, gil(row.UnitPrice), row.Origin, gil(row.Total))
		}
		fmt.Printf("Known Total: %.0f\n", est.KnownTotal)
		if len(est.Unpriced) > 0 {
			fmt.Printf("Unpriced: %v\n", est.Unpriced)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(needsCmd, costCmd)
}
