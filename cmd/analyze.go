package cmd

import (
	"context"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hexstrike-ai/internal/cache"
	"github.com/hexstrike-ai/internal/engine"
	"github.com/hexstrike-ai/internal/recon"
	"github.com/hexstrike-ai/internal/report"
	"github.com/hexstrike-ai/pkg/models"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [target]",
	Short: "Analyze a target and score its attack surface",
	Long: `Classify a target, detect its technology stack and compute its
attack-surface score, risk level and classification confidence.

The target can be a URL, an IP address, a domain name or a binary path.

Examples:
  hexstrike analyze https://example.com
  hexstrike analyze 192.168.1.1 --format json
  hexstrike analyze https://blog.example.com --enrich`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Bool("enrich", false, "run live enrichment (subdomains, fingerprint, crawl)")
	analyzeCmd.Flags().Bool("refresh", false, "ignore any cached profile for this target")

	viper.BindPFlag("analyze.enrich", analyzeCmd.Flags().Lookup("enrich"))
	viper.BindPFlag("analyze.refresh", analyzeCmd.Flags().Lookup("refresh"))
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	target := args[0]

	profile, err := analyzeTarget(cmd.Context(), target, viper.GetBool("analyze.enrich"))
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(cfg, log)
	return renderer.RenderProfile(os.Stdout, profile, viper.GetString("format"))
}

// analyzeTarget runs the engine for a target, honoring cache flags and the
// caller's enrichment request. It is shared by the analyze, tools and chain
// commands; each command resolves its own --enrich flag.
func analyzeTarget(ctx context.Context, target string, enrich bool) (*models.TargetProfile, error) {
	cfg.Engine.SkipDNSResolution = cfg.Engine.SkipDNSResolution || viper.GetBool("no-dns")

	useCache := !viper.GetBool("no-cache")
	var store *cache.Manager
	if useCache {
		var err error
		store, err = cache.NewManager(cfg, log)
		if err != nil {
			return nil, err
		}

		if !viper.GetBool("analyze.refresh") {
			if profile, err := store.GetProfile(ctx, target); err == nil {
				log.Debug("Using cached profile", "target", target)
				return profile, nil
			}
		}
	}

	eng := engine.New(cfg, log)
	profile := eng.AnalyzeTarget(ctx, target)

	if enrich || cfg.Recon.Enabled {
		spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
			spinner.WithSuffix(" enriching target..."))
		spin.Start()

		recon.NewEnricher(cfg, log).Enrich(ctx, profile)
		eng.Rescore(profile)

		spin.Stop()
	}

	if store != nil {
		if err := store.SetProfile(ctx, profile); err != nil {
			log.Warn("Failed to cache profile", "target", target, "error", err)
		}
	}

	return profile, nil
}
