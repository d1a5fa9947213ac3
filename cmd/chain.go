package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hexstrike-ai/internal/engine"
	"github.com/hexstrike-ai/internal/registry"
	"github.com/hexstrike-ai/internal/report"
)

var chainCmd = &cobra.Command{
	Use:   "chain [target]",
	Short: "Plan an ordered attack chain for a target",
	Long: `Build a multi-step attack plan for a target: which tools to run, in
what order, with which parameters, plus time and success estimates.

Examples:
  hexstrike chain https://example.com
  hexstrike chain 192.168.1.1 --objective comprehensive
  hexstrike chain ./challenge.bin --objective ctf --commands`,
	Args: cobra.ExactArgs(1),
	RunE: runChain,
}

func init() {
	rootCmd.AddCommand(chainCmd)

	chainCmd.Flags().StringP("objective", "o", "comprehensive", "planning objective (quick,comprehensive,stealth,ctf,aws,...)")
	chainCmd.Flags().Bool("commands", false, "print the assembled command line for each step")
	chainCmd.Flags().Bool("enrich", false, "run live enrichment before planning")

	viper.BindPFlag("chain.objective", chainCmd.Flags().Lookup("objective"))
	viper.BindPFlag("chain.commands", chainCmd.Flags().Lookup("commands"))
	viper.BindPFlag("chain.enrich", chainCmd.Flags().Lookup("enrich"))
}

func runChain(cmd *cobra.Command, args []string) error {
	target := args[0]
	objective := viper.GetString("chain.objective")

	profile, err := analyzeTarget(cmd.Context(), target, viper.GetBool("chain.enrich"))
	if err != nil {
		return err
	}

	eng := engine.New(cfg, log)
	chain := eng.CreateAttackChain(profile, objective)

	renderer := report.NewRenderer(cfg, log)
	format := viper.GetString("format")
	if err := renderer.RenderChain(os.Stdout, chain, format); err != nil {
		return err
	}

	if viper.GetBool("chain.commands") && format == "table" {
		reg := registry.New(log)
		fmt.Println()
		for i, step := range chain.Steps {
			marker := " "
			if !reg.IsAvailable(step.Tool) {
				marker = "!"
			}
			fmt.Printf("%s %2d. %s\n", marker, i+1, reg.Command(step.Tool, step.Parameters))
		}
	}

	return nil
}
