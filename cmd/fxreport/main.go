// Command fxreport measures the accuracy of the fixed-point functions.
//
// Usage:
//
//	fxreport [function...] [flags]
//
// For every function (all of them by default) it samples the function's
// reporting interval, compares against float64 references, or against the
// high-precision oracle with --oracle-digits, and prints the maximum, mean,
// RMS, and 99th-percentile absolute error plus any monotonicity violations.
package main

import (
	"os"

	"github.com/tphakala/go-fixedmath/internal/cli"
)

// Defaults
const (
	defaultSamples = 100001
	defaultFormat  = 40
)

func main() {
	os.Exit(cli.ExitCode(newRootCmd().Execute()))
}
