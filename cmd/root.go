package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/wallet-accounts-cli/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Commands annotated with skipWireAnnotation run without loading the
// registry or touching any store.
const skipWireAnnotation = "wa/skip-wire"

type rootOptions struct {
	configFile string
	verbose    bool
}

// rootCommand closes the wired app once the command tree has run, whether
// the command succeeded or not.
type rootCommand struct {
	*cobra.Command
	app *app
}

func (r *rootCommand) Execute() error {
	err := r.Command.Execute()
	return errors.Join(err, r.app.close())
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *rootCommand {
	opts := &rootOptions{}
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "wa",
		Short:         "Wallet Accounts CLI (wa): manage multiple wallet accounts",
		Long:          "wa keeps several wallet identities on one machine, each backed by its own seed in the secret store, and switches the single live wallet session between them.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(viper.New(), opts.configFile)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd, cfg.LogLevel, opts.verbose)
			if err != nil {
				return err
			}
			app.logger = logger

			if cmd.Annotations[skipWireAnnotation] == "true" {
				return nil
			}

			if err := app.wire(cmd.Context(), cfg); err != nil {
				return err
			}

			return app.start(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default ~/.wallet-accounts/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newAvatarsCmd(app),
		newStatusCmd(app),
	)

	return &rootCommand{Command: rootCmd, app: app}
}

func newLogger(cmd *cobra.Command, level string, verbose bool) (*zap.Logger, error) {
	atomicLevel := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if strings.TrimSpace(level) != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", config.LogLevelKey, err)
		}
		atomicLevel.SetLevel(parsed)
	}
	if verbose {
		atomicLevel.SetLevel(zapcore.DebugLevel)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(cmd.ErrOrStderr()),
		atomicLevel,
	)

	return zap.New(core).Named("wa"), nil
}
