package cli

import (
	"fmt"
	"os"

	"github.com/LeJamon/xrplmodel/internal/config"
	"github.com/LeJamon/xrplmodel/internal/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile   string
	debug        bool
	outputFormat string

	cfg = config.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xrplflags",
	Short: "xrplflags - decode and encode XRPL flag fields",
	Long: `xrplflags converts the numeric Flags field of XRPL transactions and ledger
entries to named booleans and back. Every catalog of transaction and ledger
entry flags is available by entity name, e.g. Payment, TrustSet, RippleState
or AccountRoot.`,
	Version:           "0.1.0-dev",
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable normally suppressed debug logging")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "output format: text, json or yaml (overrides config)")
}

// initConfig reads in config file and ENV variables, then applies command line overrides.
func initConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}

	if outputFormat != "" {
		loaded.Output.Format = outputFormat
		if err := loaded.Output.Validate(); err != nil {
			return fmt.Errorf("--format: %w", err)
		}
	}
	if debug {
		loaded.Log.Level = "debug"
	}

	if err := log.SetLogger(loaded.Log.Level, loaded.Log.JSON, loaded.Log.Color); err != nil {
		return err
	}
	log.Debug("configuration loaded", "path", loaded.GetConfigPath(), "format", loaded.Output.Format)

	cfg = loaded
	return nil
}
