package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"carfactory/pkg/car"
	"carfactory/pkg/version"
)

// Config captures CLI flags so the factory can run with a single Run call.
type Config struct {
	showVersion bool
	verbose     bool
}

// Run builds the root command and processes the client requests in order.
// A nil logger is replaced by a production zap logger honoring --verbose.
func Run(ctx context.Context, args []string, out io.Writer, logger *zap.Logger) error {
	cmd := newRootCommand(out, logger)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCommand(out io.Writer, logger *zap.Logger) *cobra.Command {
	var cfg Config
	ownLogger := logger == nil

	cmd := &cobra.Command{
		Use:           "carfactory",
		Short:         "Build the day's client car orders",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !ownLogger {
				return nil
			}
			config := zap.NewProductionConfig()
			if cfg.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if ownLogger && logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.showVersion {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "carfactory version %s\n", version.Version())
				return err
			}
			requests, err := parseRequests(defaultRequests)
			if err != nil {
				return err
			}
			return process(cmd.Context(), car.NewFactory(cmd.OutOrStdout(), logger), requests, logger)
		},
	}
	if out != nil {
		cmd.SetOut(out)
	}

	cmd.Flags().BoolVar(&cfg.showVersion, "version", false, "Show the application version")
	cmd.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

// process builds each request sequentially and stops at the first mismatch.
func process(ctx context.Context, factory *car.Factory, requests []Request, logger *zap.Logger) error {
	for i, req := range requests {
		if err := ctx.Err(); err != nil {
			return err
		}
		built := factory.Build(req.Color, req.Transmission, req.Convertible)
		if err := verify(i, req, built); err != nil {
			return err
		}
	}
	logger.Info("client requests fulfilled", zap.Int("count", len(requests)))
	return nil
}
