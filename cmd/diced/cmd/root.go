package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/axelarnetwork/dicegame/vald"
)

const (
	// AppName is the name of the binary
	AppName = "diced"

	flagHome      = "home"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagLogFile   = "log-file"

	logFormatPlain = "plain"
	logFormatJSON  = "json"
)

// DefaultNodeHome is the default home directory for the configuration and the reveal journal
var DefaultNodeHome = os.ExpandEnv("$HOME/." + AppName)

// NewRootCmd creates a new root command for diced. It is called once in the main function.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          AppName,
		Short:        "Verifiable block hash dice game client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := readConfig(cmd)
			if err != nil {
				return err
			}

			logger, err := newLogger(v)
			if err != nil {
				return err
			}

			vald.SetCmdContext(cmd, &vald.Context{Viper: v, Logger: logger})
			return nil
		},
	}

	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)
	rootCmd.PersistentFlags().String(flagHome, DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "the logging level (trace|debug|info|warn|error|fatal|panic)")
	rootCmd.PersistentFlags().String(flagLogFormat, logFormatPlain, "the logging format (plain|json)")
	rootCmd.PersistentFlags().String(flagLogFile, "", "write logs to this file instead of stderr, rotating it when it grows too large")

	rootCmd.AddCommand(
		vald.GetWatchCommand(),
		vald.GetStatusCommand(),
		vald.GetBetCommand(),
		vald.GetRollCommand(),
		vald.GetVerifyBlockCommand(),
		vald.GetVerifyHeadersCommand(),
		vald.GetHealthCheckCommand(),
		vald.GetConfigCommand(),
	)

	return rootCmd
}

// normalizeFlagName accepts snake case spellings of flags, matching the keys in config.toml
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// readConfig layers flags over environment variables over <home>/config.toml
func readConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	home := v.GetString(flagHome)
	v.SetDefault("journal_dir", filepath.Join(home, "journal"))

	v.SetConfigFile(filepath.Join(home, "config.toml"))
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return v, nil
}

func newLogger(v *viper.Viper) (log.Logger, error) {
	var out io.Writer = os.Stderr
	if file := v.GetString(flagLogFile); file != "" {
		out = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     28,
		}
	}

	var logWriter io.Writer
	switch strings.ToLower(v.GetString(flagLogFormat)) {
	case logFormatPlain:
		logWriter = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: out != os.Stderr}
	case logFormatJSON:
		logWriter = out
	default:
		return nil, fmt.Errorf("unknown log format %s", v.GetString(flagLogFormat))
	}

	logLvlStr := v.GetString(flagLogLevel)
	logLvl, err := zerolog.ParseLevel(logLvlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", logLvlStr, err)
	}

	return log.NewCustomLogger(zerolog.New(logWriter).Level(logLvl).With().Timestamp().Logger()), nil
}
