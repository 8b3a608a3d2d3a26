package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fixedmath "github.com/tphakala/go-fixedmath"
	"github.com/tphakala/go-fixedmath/fixed"
	"github.com/tphakala/go-fixedmath/internal/accuracy"
	"github.com/tphakala/go-fixedmath/internal/builder"
	"github.com/tphakala/go-fixedmath/internal/cli"
	"github.com/tphakala/go-fixedmath/internal/oracle"
)

// ErrThreshold is returned when a function exceeds --fail-above or is not monotonic.
var ErrThreshold = errors.New("accuracy threshold exceeded")

type options struct {
	samples      int
	format       int
	oracleDigits int
	policyPath   string
	failAbove    float64
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "fxreport [function...]",
		Short:         "Report the accuracy of the fixed-point functions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := cli.NewLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			err = run(cmd.OutOrStdout(), logger, opts, args)
			if err != nil {
				logger.Error("fxreport failed", zap.Error(err))
			}
			return err
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return cli.Usage(err) })

	cmd.Flags().IntVarP(&opts.samples, "samples", "n", defaultSamples, "samples per function")
	cmd.Flags().IntVarP(&opts.format, "format", "f", defaultFormat, "fractional bits of the evaluation format")
	cmd.Flags().IntVar(&opts.oracleDigits, "oracle-digits", 0, "compare against the high-precision oracle at this many digits (0 uses float64)")
	cmd.Flags().StringVar(&opts.policyPath, "policy", "", "YAML policy file to build the tables from")
	cmd.Flags().Float64Var(&opts.failAbove, "fail-above", 0, "exit non-zero when a maximum error exceeds this value (0 disables)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")
	return cmd
}

func run(stdout io.Writer, logger *zap.Logger, opts options, args []string) error {
	if opts.format < 0 || opts.format > fixed.MaxFracBits {
		return cli.Usage(fmt.Errorf("format %d outside [0, %d]", opts.format, fixed.MaxFracBits))
	}
	if opts.samples < 2 {
		return cli.Usage(fmt.Errorf("need at least 2 samples, got %d", opts.samples))
	}

	funcs, err := selectFuncs(args)
	if err != nil {
		return cli.Usage(err)
	}
	e, err := loadEngine(logger, opts.policyPath)
	if err != nil {
		return err
	}

	var ref *oracle.Oracle
	if opts.oracleDigits > 0 {
		if ref, err = oracle.New(opts.oracleDigits); err != nil {
			return cli.Usage(err)
		}
	}

	failed := 0
	for _, fn := range funcs {
		c, ok := accuracy.CaseFor(e, fn)
		if !ok {
			logger.Warn("no table for function", zap.Stringer("func", fn))
			continue
		}
		if ref != nil {
			if oref, err := accuracy.OracleRef(ref, oracleName(fn)); err == nil {
				c.Ref = oref
			} else {
				logger.Debug("no oracle reference, using float64", zap.Stringer("func", fn), zap.Error(err))
			}
		}

		rep, err := accuracy.Measure(c, opts.format, opts.samples)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, rep)
		logger.Debug("measured", zap.Stringer("func", fn), zap.Int("skipped", rep.Skipped))

		if rep.Violations > 0 || (opts.failAbove > 0 && rep.MaxAbs > opts.failAbove) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d function(s): %w", failed, ErrThreshold)
	}
	return nil
}

// selectFuncs parses function names; none selects every function.
func selectFuncs(args []string) ([]fixedmath.Func, error) {
	if len(args) == 0 {
		return fixedmath.Funcs(), nil
	}
	out := make([]fixedmath.Func, 0, len(args))
	for _, a := range args {
		fn, err := fixedmath.ParseFunc(a)
		if err != nil {
			return nil, err
		}
		out = append(out, fn)
	}
	return out, nil
}

// oracleName maps a function to the oracle function of the same name.
func oracleName(fn fixedmath.Func) string {
	if fn == fixedmath.FuncAtanFast {
		return "atan"
	}
	return fn.String()
}

func loadEngine(logger *zap.Logger, policyPath string) (*fixedmath.Engine, error) {
	if policyPath == "" {
		logger.Debug("using compiled-in tables")
		return fixedmath.LoadDefault()
	}
	p, err := builder.LoadPolicy(policyPath)
	if err != nil {
		return nil, err
	}
	b, err := builder.New(p, builder.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	res, err := b.Build()
	if err != nil {
		return nil, err
	}
	return res.Engine()
}
