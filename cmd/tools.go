package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hexstrike-ai/internal/engine"
	"github.com/hexstrike-ai/internal/registry"
	"github.com/hexstrike-ai/internal/report"
)

var toolsCmd = &cobra.Command{
	Use:   "tools [target]",
	Short: "Select the most effective tools for a target",
	Long: `Rank security tools for a target based on per-target-type
effectiveness tables and the planning objective.

Objectives:
  quick          top 3 tools by effectiveness
  comprehensive  every tool above the effectiveness threshold
  stealth        low-noise tools only

Examples:
  hexstrike tools https://example.com --objective quick
  hexstrike tools 10.0.0.5 --objective comprehensive --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.Flags().StringP("objective", "o", "comprehensive", "planning objective (quick,comprehensive,stealth)")

	viper.BindPFlag("tools.objective", toolsCmd.Flags().Lookup("objective"))
}

func runTools(cmd *cobra.Command, args []string) error {
	target := args[0]
	objective := viper.GetString("tools.objective")

	profile, err := analyzeTarget(cmd.Context(), target, false)
	if err != nil {
		return err
	}

	eng := engine.New(cfg, log)
	selected := eng.SelectOptimalTools(profile, objective)

	reg := registry.New(log)
	missing := reg.MissingTools(selected)

	if len(missing) > 0 {
		log.Warn("Some selected tools are not installed", "missing", len(missing))
	}

	renderer := report.NewRenderer(cfg, log)
	return renderer.RenderTools(os.Stdout, selected, missing, viper.GetString("format"))
}
