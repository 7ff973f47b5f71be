package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mj1618/pinwin/internal/config"
	"github.com/mj1618/pinwin/internal/output"
	"github.com/mj1618/pinwin/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pinwin",
	Short: "List, focus and pin desktop windows",
	Long: `pinwin lists the visible top-level windows on the desktop and lets you
focus a window or pin it always-on-top.

Windows are identified by their handle, shown in hex by 'pinwin list'.
Handles may be given in decimal or 0x-prefixed hex.`,
	SilenceUsage: true,
}

// appConfig is the configuration loaded by the root command before any
// subcommand runs.
var appConfig = config.Default()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default <user config dir>/pinwin/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		path, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err := config.New(path)
		if err != nil {
			return err
		}
		if name, _ := rootCmd.PersistentFlags().GetString("log-level"); name != "" {
			if _, err := config.ParseLevel(name); err != nil {
				return err
			}
			cfg.Log.Level = name
		}
		appConfig = cfg

		return setupLogging(cmd, cfg)
	}
}

// setupLogging installs the default slog logger. Logs go to stderr, except
// under the TUI where they would corrupt the screen: there they go to
// PINWIN_LOG_FILE or nowhere.
func setupLogging(cmd *cobra.Command, cfg *config.Config) error {
	var w io.Writer = os.Stderr
	if cmd.Name() == uiCmd.Name() {
		w = io.Discard
		if path := config.LogFile(); path != "" {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			w = f
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel()})))
	return nil
}

func configPath() string {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	return path
}
