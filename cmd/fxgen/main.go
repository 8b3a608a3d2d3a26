// Command fxgen builds fixed-point lookup tables and writes them out as a
// self-contained Go source file.
//
// Usage:
//
//	fxgen <function|all> [output] [entries] [fracbits] [flags]
//
// The function is a table name (acos, atan, atan_fast, sin, tan, log2) or
// one of the functions served by a table (asin, cos, atan2). Without an
// output path, or with "-", the source goes to stdout. Entries rescales the
// bracket count of the selected tables and fracbits overrides their format.
//
// With --builtin the file belongs to package fixedmath and declares only the
// compiled-in tables; the root package regenerates its tables_gen.go this
// way through go generate.
package main

import (
	"os"

	"github.com/tphakala/go-fixedmath/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(newRootCmd().Execute()))
}
