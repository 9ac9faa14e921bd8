// Command nubcircle writes the unit circle as a nub file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/nub"
)

const defaultOutput = "circle.nub"

type options struct {
	output  string
	verbose bool
}

func newRootCmd(newLogger func(verbose bool) *zap.Logger) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "nubcircle",
		Short:         "Write the unit circle as a nub file",
		Long:          "nubcircle encodes the nine-point rational unit circle in the nub version 3 format and writes it to a file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.verbose)
			defer logger.Sync()
			return run(logger, opts.output)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", defaultOutput, "file to write")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

func run(logger *zap.Logger, output string) error {
	c := nub.UnitCircle.Curve()
	logger.Debug("encoding curve",
		zap.Stringer("center", nub.UnitCircle.Center),
		zap.Float64("radius", nub.UnitCircle.Radius),
		zap.Int("points", c.Len()))
	if err := nub.WriteFile(output, c); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Info("wrote curve",
		zap.String("path", output),
		zap.Int("points", c.Len()),
		zap.Int("knots", len(c.Knots())),
		zap.Int("bytes", nub.EncodedLen(c.Len())))
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

func main() {
	logger := newLogger(false)
	if err := newRootCmd(newLogger).Execute(); err != nil {
		logger.Fatal("nubcircle failed", zap.Error(err))
	}
}
