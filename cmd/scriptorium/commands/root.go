// Package commands implements the CLI commands for scriptorium.
package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/scriptorium/internal/config"
	"github.com/jmylchreest/scriptorium/internal/logger"
	"github.com/jmylchreest/scriptorium/internal/output"
)

var rootCmd = &cobra.Command{
	Use:   "scriptorium",
	Short: "Plain text extraction for classical texts",
	Long: `Scriptorium extracts readable plain text from classical-text sources.

It crawls the PHI Latin texts site page by page, and converts Perseus
beta code XML into tokenized Unicode Greek.

Examples:
  # Crawl the built-in PHI text (Lucretius, De Rerum Natura)
  scriptorium phi > lucretius.txt

  # Crawl another PHI work, stopping after 20 pages
  scriptorium phi --url http://latin.packhum.org/loc/474/1/0 --max-pages 20

  # Extract a Perseus file
  scriptorium perseus hom.il_gk.xml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		started = true
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.scriptorium.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "suppress progress output")
	flags.Bool("log-json", false, "write logs as JSON")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", string(output.FormatText), "output format: "+output.FormatNames())
	flags.Bool("pretty", true, "indent json output")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("log_json", flags.Lookup("log-json"))
	_ = viper.BindPFlag("output.path", flags.Lookup("output"))
	_ = viper.BindPFlag("output.format", flags.Lookup("format"))
	_ = viper.BindPFlag("output.pretty", flags.Lookup("pretty"))

	config.SetDefaults(viper.GetViper())
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".scriptorium")
		viper.SetConfigType("yaml")
	}

	// Environment variables: phi.max_pages -> SCRIPTORIUM_PHI_MAX_PAGES
	viper.SetEnvPrefix("SCRIPTORIUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// started is set once flags and args are accepted; from then on RunE
// reports its own errors.
var started bool

// Execute runs the root command. Errors raised by cobra before a command
// runs (unknown flags, wrong arg count) are logged here.
func Execute() error {
	started = false
	cmd, err := rootCmd.ExecuteC()
	if err != nil && !started {
		logger.Error("invalid invocation", "command", cmd.CommandPath(), "error", err)
	}
	return err
}

// loadConfig decodes the merged configuration and sets up logging.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return config.Config{}, err
	}

	logger.Init(logger.Options{
		Debug: cfg.Debug,
		Quiet: cfg.Quiet,
		JSON:  cfg.LogJSON,
	})
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("config file loaded", "path", used)
	}
	return cfg, nil
}
