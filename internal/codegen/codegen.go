// Package codegen writes built tables out as a self-contained Go source file.
//
// The generated file declares every table as constant-initialized arrays,
// assembles them into a fixedmath.Tables value, and exposes one evaluation
// function per available function, so a consumer pays no build cost at
// start-up. In builtin mode the file instead belongs to package fixedmath
// itself and only declares the tables behind fixedmath.Default.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strings"

	"github.com/tphakala/go-fixedmath/internal/builder"
	"github.com/tphakala/go-fixedmath/lut"
)

// Errors returned by the emitter.
var (
	ErrInvalidPackage = errors.New("codegen: invalid package name")
	ErrNoTables       = errors.New("codegen: no tables to emit")
	// ErrFormat is returned with the unformatted source when gofmt rejects it.
	ErrFormat = errors.New("codegen: formatting generated source")
)

const (
	// DefaultPackage is the package name used when Options.Package is empty.
	DefaultPackage = "fxtables"

	// BuiltinPackage is the package a builtin file belongs to.
	BuiltinPackage = "fixedmath"

	// builtinVar is the Tables variable a builtin file declares.
	builtinVar = "defaultTables"
)

// valuesPerLine controls how many array elements are written per line.
const valuesPerLine = 6

// Options controls the generated file.
type Options struct {
	Package   string
	Generator string // named in the "Code generated" header

	// Builtin emits the compiled-in tables of package fixedmath: no
	// imports of fixedmath, no engine and no wrappers. Package is ignored.
	Builtin bool
}

// binding ties a builder table name to its Tables field and wrappers.
type binding struct {
	field    string
	wrappers []wrapper
}

type wrapper struct {
	name, method, doc string
	binary            bool
}

var bindings = map[string]binding{
	builder.Acos: {"Acos", []wrapper{
		{"Acos", "Acos", "returns acos(x) in [0, π].", false},
		{"Asin", "Asin", "returns asin(x) in [-π/2, π/2].", false},
	}},
	builder.Atan: {"Atan", []wrapper{
		{"Atan", "Atan", "returns atan(x) in [-π/2, π/2].", false},
		{"Atan2", "Atan2", "returns the angle of (x, y) in [-π, π].", true},
	}},
	builder.AtanFast: {"AtanFast", []wrapper{
		{"AtanFast", "AtanFast", "returns atan(x) from the linear table.", false},
		{"Atan2Fast", "Atan2Fast", "returns atan2(y, x) from the linear table.", true},
	}},
	builder.Sin: {"Sin", []wrapper{
		{"Sin", "Sin", "returns sin(x) for x in radians.", false},
		{"Cos", "Cos", "returns cos(x) for x in radians.", false},
	}},
	builder.Tan: {"Tan", []wrapper{
		{"Tan", "Tan", "returns tan(x) for x in radians.", false},
	}},
	builder.Log2: {"Log2", []wrapper{
		{"Log2", "Log2", "returns log2(x), or math.MinInt64 for x ≤ 0.", false},
	}},
}

// Generate returns the formatted Go source for res. When formatting fails
// it returns the unformatted source together with an error wrapping
// ErrFormat.
func Generate(res *builder.Result, opts Options) ([]byte, error) {
	pkg := opts.Package
	switch {
	case opts.Builtin:
		pkg = BuiltinPackage
	case pkg == "":
		pkg = DefaultPackage
	}
	if !token.IsIdentifier(pkg) || pkg == "_" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPackage, pkg)
	}
	names := emitted(res)
	if len(names) == 0 {
		return nil, ErrNoTables
	}
	gen := opts.Generator
	if gen == "" {
		gen = "fxgen"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s from %d-digit reference values. DO NOT EDIT.\n\n", gen, res.Digits)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	if opts.Builtin {
		fmt.Fprintf(&buf, "import %q\n\n", "github.com/tphakala/go-fixedmath/lut")
	} else {
		fmt.Fprintf(&buf, "import (\n")
		fmt.Fprintf(&buf, "\tfixedmath %q\n", "github.com/tphakala/go-fixedmath")
		fmt.Fprintf(&buf, "\t%q\n", "github.com/tphakala/go-fixedmath/lut")
		fmt.Fprintf(&buf, ")\n\n")
	}

	for _, name := range names {
		emitTable(&buf, name, res.Tables[name])
	}

	if opts.Builtin {
		fmt.Fprintf(&buf, "// %s holds the canonical tables behind Default.\n", builtinVar)
		fmt.Fprintf(&buf, "var %s = Tables{\n", builtinVar)
	} else {
		fmt.Fprintf(&buf, "// Tables holds every generated table.\n")
		fmt.Fprintf(&buf, "var Tables = fixedmath.Tables{\n")
	}
	fmt.Fprintf(&buf, "\tPi: %#x,\n", res.Pi)
	for _, name := range names {
		fmt.Fprintf(&buf, "\t%s: &%s,\n", bindings[name].field, tableVar(name))
	}
	fmt.Fprintf(&buf, "}\n")
	if opts.Builtin {
		return finish(buf.Bytes())
	}
	fmt.Fprintf(&buf, "\n")

	fmt.Fprintf(&buf, "// Engine evaluates the generated tables.\n")
	fmt.Fprintf(&buf, "var Engine = mustEngine()\n\n")
	fmt.Fprintf(&buf, "func mustEngine() *fixedmath.Engine {\n")
	fmt.Fprintf(&buf, "\te, err := fixedmath.NewEngine(Tables)\n")
	fmt.Fprintf(&buf, "\tif err != nil {\n\t\tpanic(err)\n\t}\n")
	fmt.Fprintf(&buf, "\treturn e\n}\n")

	for _, name := range names {
		for _, w := range bindings[name].wrappers {
			fmt.Fprintf(&buf, "\n// %s %s\n", w.name, w.doc)
			if w.binary {
				fmt.Fprintf(&buf, "func %s(y, x int64, fracBits int) int64 { return Engine.%s(y, x, fracBits) }\n", w.name, w.method)
			} else {
				fmt.Fprintf(&buf, "func %s(x int64, fracBits int) int64 { return Engine.%s(x, fracBits) }\n", w.name, w.method)
			}
		}
	}

	return finish(buf.Bytes())
}

// finish gofmts src, returning it unformatted with ErrFormat on failure.
func finish(src []byte) ([]byte, error) {
	formatted, err := format.Source(src)
	if err != nil {
		return src, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return formatted, nil
}

// Write generates the source for res and writes it to w.
func Write(w io.Writer, res *builder.Result, opts Options) error {
	src, err := Generate(res, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// emitted returns the names of res's tables the emitter knows, in build order.
func emitted(res *builder.Result) []string {
	if res == nil {
		return nil
	}
	var out []string
	for _, name := range res.Names {
		if _, ok := bindings[name]; ok && res.Tables[name] != nil {
			out = append(out, name)
		}
	}
	return out
}

func emitTable(buf *bytes.Buffer, name string, t *lut.Table) {
	v := tableVar(name)
	for i := range t.Regions {
		r := &t.Regions[i]
		emitArray(buf, arrayVar(v, i, "Values"), r.Values)
		emitArray(buf, arrayVar(v, i, "Derivs"), r.Derivs)
		emitArray(buf, arrayVar(v, i, "Nodes"), r.Nodes)
		emitArray(buf, arrayVar(v, i, "Slopes"), r.Slopes)
		emitArray(buf, arrayVar(v, i, "Curves"), r.Curves)
	}

	fmt.Fprintf(buf, "var %s = lut.Table{\n", v)
	fmt.Fprintf(buf, "\tName: %q,\n", t.Name)
	fmt.Fprintf(buf, "\tFracBits: %d,\n", t.FracBits)
	fmt.Fprintf(buf, "\tRegions: []lut.Region{\n")
	for i := range t.Regions {
		r := &t.Regions[i]
		fmt.Fprintf(buf, "\t\t{\n")
		fmt.Fprintf(buf, "\t\t\tLo: %d, Hi: %d,\n", r.Lo, r.Hi)
		fmt.Fprintf(buf, "\t\t\tKind: lut.%s, Spacing: lut.%s,\n", r.Kind, r.Spacing)
		fmt.Fprintf(buf, "\t\t\tCount: %d,\n", r.Count)
		emitField(buf, "Values", arrayVar(v, i, "Values"), r.Values)
		emitField(buf, "Derivs", arrayVar(v, i, "Derivs"), r.Derivs)
		emitField(buf, "Nodes", arrayVar(v, i, "Nodes"), r.Nodes)
		emitField(buf, "Slopes", arrayVar(v, i, "Slopes"), r.Slopes)
		emitField(buf, "Curves", arrayVar(v, i, "Curves"), r.Curves)
		if r.Spacing == lut.Uniform {
			fmt.Fprintf(buf, "\t\t\tScale: %d, Shift: %d,\n", r.Scale, r.Shift)
		}
		fmt.Fprintf(buf, "\t\t},\n")
	}
	fmt.Fprintf(buf, "\t},\n}\n\n")
}

func emitArray(buf *bytes.Buffer, name string, vals []int64) {
	if len(vals) == 0 {
		return
	}
	fmt.Fprintf(buf, "var %s = [...]int64{", name)
	for i, x := range vals {
		if i%valuesPerLine == 0 {
			buf.WriteString("\n\t")
		} else {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%d,", x)
	}
	buf.WriteString("\n}\n\n")
}

func emitField(buf *bytes.Buffer, field, name string, vals []int64) {
	if len(vals) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t\t%s: %s[:],\n", field, name)
}

// tableVar turns a table name such as "atan_fast" into "atanFastTable".
func tableVar(name string) string {
	parts := strings.Split(name, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "") + "Table"
}

func arrayVar(table string, region int, field string) string {
	return fmt.Sprintf("%sR%d%s", table, region, field)
}
