package fixedmath

import "sync"

//go:generate go run ./cmd/fxgen all tables_gen.go --builtin

// builtin evaluates the compiled-in canonical tables of tables_gen.go.
var builtin = newEngine(defaultTables)

var validateDefault = sync.OnceValue(defaultTables.Validate)

// LoadDefault returns the process-wide engine over the compiled-in
// canonical tables after checking their invariants once. It returns the
// same engine as Default.
func LoadDefault() (*Engine, error) {
	if err := validateDefault(); err != nil {
		return nil, err
	}
	return builtin, nil
}

// Default returns the process-wide engine over the compiled-in canonical
// tables. The tables are constant data, so Default neither builds nor
// allocates anything.
func Default() *Engine {
	return builtin
}
