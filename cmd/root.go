package cmd

import (
	"fmt"

	"golang-netcfg/internal/pkg/config"
	"golang-netcfg/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configFlag   string
	logLevelFlag string

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "golang-netcfg",
	Short: "golang-netcfg lists and changes Windows network interface addressing",
	Long: `golang-netcfg shows a menu with three operations: list the IP configuration
(ipconfig /all), enable DHCP on an interface, or assign a static address to an
interface (netsh interface ip set address). Run without a subcommand for the menu.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sh, err := newShell(cmd)
		if err != nil {
			return err
		}
		return sh.Run(cmd.Context())
	},
}

// Execute runs the root command and exits non-zero when the chosen operation failed.
// Interrupts keep their default behaviour so Ctrl+C ends the process at a prompt.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadConfig reads the optional config file, applies flag overrides and
// initializes logging. Without --config the built-in defaults are used.
func loadConfig(cmd *cobra.Command) error {
	c := config.Default()
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		c = loaded
	}

	if logLevelFlag != "" {
		c.Logging.Level = logLevelFlag
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}

	c.Logging.Output = cmd.ErrOrStderr()
	logging.InitLogger(c.Logging)
	cfg = c

	logging.GetLogger().WithField("config_file", configFlag).Debug("Configuration loaded")
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
}
