package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hexstrike-ai/internal/config"
	"github.com/hexstrike-ai/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	log     logger.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hexstrike",
	Short: "AI-driven penetration testing decision engine",
	Long: `HexStrike analyzes a target, scores its attack surface and plans which
security tools to run against it and in what order.

Features:
- Target classification (web app, API, network host, cloud, binary)
- Attack-surface scoring with risk and confidence estimation
- Tool ranking from per-target-type effectiveness tables
- Per-tool parameter optimization
- Multi-step attack-chain planning with success-probability estimation
- Optional live enrichment (subdomains, fingerprinting, endpoint crawl)`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(config *config.Config, logger logger.Logger) error {
	cfg = config
	log = logger
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hexstrike.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("format", "table", "output format (table,json,yaml)")
	rootCmd.PersistentFlags().Bool("no-dns", false, "skip DNS resolution during analysis")
	rootCmd.PersistentFlags().Bool("no-cache", false, "bypass the profile cache")

	// Bind flags to viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("no-dns", rootCmd.PersistentFlags().Lookup("no-dns"))
	viper.BindPFlag("no-cache", rootCmd.PersistentFlags().Lookup("no-cache"))

	// Add completion command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:
$ source <(hexstrike completion bash)

Zsh:
$ source <(hexstrike completion zsh)

Fish:
$ hexstrike completion fish | source
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				cmd.Root().GenPowerShellCompletion(os.Stdout)
			}
		},
	})
}

// initConfig reads in config file and ENV variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".hexstrike" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath("./configs")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hexstrike")
	}

	viper.AutomaticEnv() // read in environment variables that match

	viper.ReadInConfig()
}
