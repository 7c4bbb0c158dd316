package main

import (
	"context"
	"fmt"
	"os"

	"github.com/philipparndt/heightmap2obj/internal/config"
	"github.com/philipparndt/heightmap2obj/internal/logger"
	"github.com/philipparndt/heightmap2obj/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFile    string

	// cfg is the effective configuration, loaded before any command runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "heightmap2obj",
	Short: "Convert grayscale heightmaps into OBJ meshes",
	Long: `heightmap2obj turns a grayscale image into a quad mesh in Wavefront OBJ
format. Every pixel becomes a vertex whose height follows the pixel
brightness: black is 0 and white is the maximum height.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, used, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			loaded.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			loaded.Logging.LogFile = logFile
		}
		cfg = loaded

		if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		if used != "" {
			logger.Sugar.Debugf("using config file %s", used)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this file")
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
