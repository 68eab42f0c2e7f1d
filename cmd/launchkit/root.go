package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reglet-dev/launchkit/internal/infrastructure/adapters"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "launchkit",
	Short: "Build and install desktop launchers",
	Long: `launchkit builds freedesktop desktop entries (.desktop launchers) from
a small YAML or HCL manifest, previews them, and installs them into
~/.local/share/applications so the desktop picks them up.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.launchkit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().String("applications-dir", "", "install into this directory instead of ~/.local/share/applications")
	rootCmd.PersistentFlags().String("permission-mode", "", "how to mark launchers executable: command or mode")
	rootCmd.PersistentFlags().Bool("strict-permissions", false, "fail when a launcher cannot be made executable")

	_ = viper.BindPFlag("install.applications_dir", rootCmd.PersistentFlags().Lookup("applications-dir"))
	_ = viper.BindPFlag("install.permission_mode", rootCmd.PersistentFlags().Lookup("permission-mode"))
	_ = viper.BindPFlag("install.strict_permissions", rootCmd.PersistentFlags().Lookup("strict-permissions"))

	rootCmd.AddCommand(
		newRenderCmd(),
		newInstallCmd(),
		newUninstallCmd(),
		newStatusCmd(),
		newNewCmd(),
		newCategoriesCmd(),
		newEnvironmentsCmd(),
		newSchemaCmd(),
		newVersionCmd(),
	)
}

// initConfig loads configuration from the config file and environment.
// Environment variables use the LAUNCHKIT_ prefix, e.g.
// LAUNCHKIT_INSTALL_APPLICATIONS_DIR.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		path, err := adapters.DefaultConfigPath()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}
		viper.SetConfigFile(path)
	}
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LAUNCHKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
