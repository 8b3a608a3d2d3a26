package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tphakala/go-fixedmath/internal/builder"
	"github.com/tphakala/go-fixedmath/internal/cli"
	"github.com/tphakala/go-fixedmath/internal/codegen"
)

type options struct {
	policyPath string
	digits     int
	pkg        string
	builtin    bool
	verbose    bool
}

// request is the parsed positional arguments.
type request struct {
	tables   []string
	output   string
	entries  int // zero keeps the policy counts
	fracBits int // zero keeps the policy formats
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "fxgen <function|all> [output] [entries] [fracbits]",
		Short: "Generate fixed-point lookup tables as Go source",
		Args: func(cmd *cobra.Command, args []string) error {
			return cli.Usage(cobra.RangeArgs(1, maxArgs)(cmd, args))
		},
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
				logger.Error("fxgen failed", zap.Error(err))
				if cli.ExitCode(err) == cli.ExitUsage {
					fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
				}
			}
			return err
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return cli.Usage(err) })

	cmd.Flags().StringVar(&opts.policyPath, "policy", "", "YAML policy file overriding the canonical table designs")
	cmd.Flags().IntVar(&opts.digits, "digits", 0, "decimal digits of the reference values (0 keeps the policy value)")
	cmd.Flags().StringVar(&opts.pkg, "package", codegen.DefaultPackage, "package name of the generated file")
	cmd.Flags().BoolVar(&opts.builtin, "builtin", false, "write the compiled-in tables of package fixedmath")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every region as it is built")
	return cmd
}

func run(stdout io.Writer, logger *zap.Logger, opts options, args []string) error {
	policy := builder.DefaultPolicy()
	if opts.policyPath != "" {
		p, err := builder.LoadPolicy(opts.policyPath)
		if err != nil {
			return err
		}
		policy = p
	}
	if opts.digits != 0 {
		policy.Digits = opts.digits
	}

	req, err := parseArgs(policy, args)
	if err != nil {
		return cli.Usage(err)
	}
	policy, err = req.apply(policy)
	if err != nil {
		return cli.Usage(err)
	}

	logger.Info("building tables",
		zap.Strings("tables", req.tables),
		zap.Int("digits", policy.Digits))
	b, err := builder.New(policy, builder.WithLogger(logger))
	if err != nil {
		return cli.Usage(err)
	}
	res, err := b.Build()
	if err != nil {
		return fmt.Errorf("building tables: %w", err)
	}

	src, err := codegen.Generate(res, codegen.Options{Package: opts.pkg, Generator: "fxgen", Builtin: opts.builtin})
	switch {
	case errors.Is(err, codegen.ErrFormat):
		logger.Warn("writing unformatted source", zap.Error(err))
	case errors.Is(err, codegen.ErrInvalidPackage):
		return cli.Usage(err)
	case err != nil:
		return err
	}

	if req.output == "" || req.output == stdoutPath {
		_, err = stdout.Write(src)
		return err
	}
	if err := os.WriteFile(req.output, src, outputMode); err != nil {
		return fmt.Errorf("writing %s: %w", req.output, err)
	}
	logger.Info("wrote tables", zap.String("path", req.output), zap.Int("bytes", len(src)))
	return nil
}

// parseArgs resolves the positional arguments against policy.
func parseArgs(policy builder.Policy, args []string) (request, error) {
	var req request

	name := strings.ToLower(args[argFunction])
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	if name == allTables {
		req.tables = policy.Names()
	} else {
		if _, ok := policy.Tables[name]; !ok {
			return req, fmt.Errorf("unknown function %q, want one of %s or %s",
				args[argFunction], strings.Join(policy.Names(), ", "), allTables)
		}
		req.tables = []string{name}
	}

	if len(args) > argOutput {
		req.output = args[argOutput]
	}
	var err error
	if len(args) > argEntries {
		if req.entries, err = positiveInt("entries", args[argEntries]); err != nil {
			return req, err
		}
	}
	if len(args) > argFracBits {
		if req.fracBits, err = positiveInt("fracbits", args[argFracBits]); err != nil {
			return req, err
		}
	}
	return req, nil
}

func positiveInt(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number", what, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", what, n)
	}
	return n, nil
}

// apply restricts policy to the requested tables and applies the overrides.
func (r request) apply(policy builder.Policy) (builder.Policy, error) {
	p, err := policy.Only(r.tables...)
	if err != nil {
		return p, err
	}
	for _, name := range r.tables {
		if r.entries > 0 {
			if p, err = p.WithEntries(name, r.entries); err != nil {
				return p, err
			}
		}
		if r.fracBits > 0 {
			if p, err = p.WithFracBits(name, r.fracBits); err != nil {
				return p, err
			}
		}
	}
	return p, p.Validate()
}
