package cmd

import (
	"fmt"
	"strconv"

	"craft-planner/feature/tracker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ownedCmd represents the owned command
var ownedCmd = &cobra.Command{
	Use:   "owned",
	Short: "Manage owned materials per crafting goal",
}

var ownedGetCmd = &cobra.Command{
	Use:   "get <rootId>",
	Short: "Show needed, owned and remaining materials of a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := parseItemID(args[0])
		if err != nil {
			return err
		}
		svc, err := trackerService()
		if err != nil {
			return err
		}

		report, err := svc.Tracker(cmd.Context(), root)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(report)
		}

		fmt.Printf("=== %s (#%d) ===\n", report.Name, report.Root)
		fmt.Printf("  %-30s %6s %6s %6s %8s\n", "Material", "Need", "Have", "Remain", "Price")
		for _, row := range report.Materials {
			fmt.Printf("  %-30s %6d %6d %6d %8s\n", row.Name, row.Need, row.Have, row.Remain, gil(row.UnitPrice))
		}
		fmt.Printf("Left to buy: %.0f\n", report.KnownTotal)
		return nil
	},
}

var ownedSetCmd = &cobra.Command{
	Use:   "set <rootId> <itemId> <quantity>",
	Short: "Record how many units of a material are owned",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := parseItemID(args[0])
		if err != nil {
			return err
		}
		item, err := parseItemID(args[1])
		if err != nil {
			return err
		}
		qty, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[2])
		}
		svc, err := trackerService()
		if err != nil {
			return err
		}

		n, err := svc.SetOwned(cmd.Context(), root, item, qty)
		if err != nil {
			return err
		}
		zap.L().Info("Owned stock recorded", zap.Int("root", int(root)), zap.Int("item", int(item)), zap.Int("quantity", n))
		return nil
	},
}

var ownedClearCmd = &cobra.Command{
	Use:   "clear <rootId>",
	Short: "Forget all owned materials of a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := parseItemID(args[0])
		if err != nil {
			return err
		}
		svc, err := trackerService()
		if err != nil {
			return err
		}
		return svc.ClearOwned(cmd.Context(), root)
	},
}

func trackerService() (*tracker.Service, error) {
	rt, err := bootstrap(true)
	if err != nil {
		return nil, err
	}
	if err := rt.migrate(); err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(rt.logger)
	return tracker.NewService(rt.source, rt.prices, rt.owned, rt.cfg.Planner, rt.logger), nil
}

func init() {
	RootCmd.AddCommand(ownedCmd)
	ownedCmd.AddCommand(ownedGetCmd, ownedSetCmd, ownedClearCmd)
}
