// Package cli wires configuration, logging and storage into the addressit
// command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toolstack/addressit/internal/config"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree around its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "addressit",
		Short: "Checklist manager for changing your address when moving",
		Long: `Address-It keeps a checklist of everyone who needs your new address:
authorities, banks, insurers, employers and more. Without a subcommand it
starts the interactive terminal UI.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, v)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .addressit.yaml)")
	flags.String("data-dir", "", "directory for the database, log and import inbox")
	flags.String("storage", "", "storage driver: sqlite, redis or memory")
	flags.String("redis-addr", "", "redis address for the redis driver")
	flags.String("locale", "", "locale used to pick the first language (default $LANG)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.BoolP("verbose", "v", false, "debug logging")

	root.AddCommand(
		newStatusCmd(v),
		newPresetsCmd(v),
		newSetupCmd(v),
		newExportCmd(v),
		newImportCmd(v),
		newReportCmd(v),
		newResetCmd(v),
		newAddressCmd(v),
		newProfileCmd(v),
	)
	return root
}

var flagKeys = map[string]string{
	"data-dir":   "data_dir",
	"storage":    "storage.driver",
	"redis-addr": "storage.redis_addr",
	"locale":     "locale",
	"log-level":  "log.level",
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".addressit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	config.BindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		// No config file is fine; defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		v.Set("log.level", "debug")
	}
	return nil
}
