package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZacxDev/go-docsite/config"
	"github.com/ZacxDev/go-docsite/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	settingsFile string
	v            = viper.New()
	settings     config.Settings
	logger       = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "docsite - typed configuration for documentation sites",
	Long: `docsite loads, validates and publishes the configuration of a documentation
site: its title, navigation menu, path-scoped sidebars and social links.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (default is ./docsite.yaml)")
	rootCmd.PersistentFlags().String("site", "site.yaml", "site config file, empty for the built-in config")
	rootCmd.PersistentFlags().String("origin", "http://localhost:9010", "public base url of the site")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().String("log-format", "console", "log format: console or json")

	bindFlag("site", rootCmd.PersistentFlags().Lookup("site"))
	bindFlag("origin", rootCmd.PersistentFlags().Lookup("origin"))
	bindFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initializeConfig(_ *cobra.Command) error {
	v.SetDefault("port", "9010")
	v.SetDefault("docs_root", ".")
	v.SetDefault("out_dir", "public")

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("docsite")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("DOCSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	settingsErr := v.ReadInConfig()
	if settingsErr != nil {
		if _, ok := settingsErr.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(settingsErr, "failed to read settings file")
		}
	}

	if err := v.Unmarshal(&settings); err != nil {
		return errors.Wrap(err, "unable to decode settings")
	}

	var err error
	logger, err = utils.NewLogger(os.Stderr, settings.LogLevel, settings.LogFormat)
	if err != nil {
		return err
	}

	if settingsErr == nil {
		logger.Debug().Str("file", v.ConfigFileUsed()).Msg("using settings file")
	}

	return nil
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
