package cmd

import (
	"context"

	"craft-planner/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check gamedata storage and the owned stock schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// gamedataCmd represents the integrity gamedata command
var gamedataCmd = &cobra.Command{
	Use:   "gamedata",
	Short: "Check the recipe and item documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the owned stock database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, gamedataCmd, serverCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, structure, gamedata, server bool) error {
	rt, err := bootstrap(false)
	if err != nil {
		return err
	}
	logg := rt.logger
	svc := integrity.NewService(rt.client, rt.cfg.Storage, logg, rt.db)

	if structure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return err
		}

		switch {
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		case fixFlag:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			if err := svc.FixStructure(ctx, missing); err != nil {
				return err
			}
			logg.Info("Structure fixed successfully.")
		default:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Run with --fix to create missing folders.")
		}
	}

	if gamedata {
		logg.Info("Checking gamedata files...")
		report, err := svc.CheckGameData(ctx)
		if err != nil {
			return err
		}
		if jsonOutput {
			if err := printJSON(report); err != nil {
				return err
			}
		}

		switch {
		case len(report.Missing) > 0:
			logg.Warn("Missing gamedata files detected", zap.Strings("missing", report.Missing))
		case len(report.Errors) > 0:
			logg.Error("GameData files could not be decoded", zap.Strings("errors", report.Errors))
		default:
			logg.Info("GameData files are present.",
				zap.Int("recipes", report.Recipes),
				zap.Int("items", report.Items),
				zap.Int("unnamed", len(report.Unnamed)),
			)
		}
	}

	if server {
		logg.Info("Checking server schema integrity...")
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
			return nil
		}
		if report.Matched {
			logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
			return nil
		}

		logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
		for table, tbl := range report.Tables {
			if tbl.Status == "ok" {
				continue
			}
			if len(tbl.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
			}
			if len(tbl.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}
	return nil
}
