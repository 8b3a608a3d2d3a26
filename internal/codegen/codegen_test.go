package codegen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fixedmath/internal/builder"
)

func smallResult(t *testing.T) *builder.Result {
	t.Helper()
	p, err := builder.DefaultPolicy().Only(builder.Atan, builder.Log2, builder.AtanFast)
	require.NoError(t, err)
	p.Digits = 40
	p, err = p.WithEntries(builder.Atan, 16)
	require.NoError(t, err)
	p, err = p.WithEntries(builder.Log2, 32)
	require.NoError(t, err)
	p, err = p.WithEntries(builder.AtanFast, 8)
	require.NoError(t, err)

	b, err := builder.New(p)
	require.NoError(t, err)
	res, err := b.Build()
	require.NoError(t, err)
	return res
}

// parseGenerated parses src and returns the file plus every int64 array
// literal by variable name.
func parseGenerated(t *testing.T, src []byte) (*ast.File, map[string][]int64) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "tables_gen.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source:\n%s", src)

	arrays := make(map[string][]int64)
	ast.Inspect(file, func(n ast.Node) bool {
		spec, ok := n.(*ast.ValueSpec)
		if !ok || len(spec.Values) != 1 {
			return true
		}
		lit, ok := spec.Values[0].(*ast.CompositeLit)
		if !ok {
			return true
		}
		if _, isArray := lit.Type.(*ast.ArrayType); !isArray {
			return true
		}
		vals := make([]int64, 0, len(lit.Elts))
		for _, e := range lit.Elts {
			vals = append(vals, intLiteral(t, e))
		}
		arrays[spec.Names[0].Name] = vals
		return true
	})
	return file, arrays
}

func intLiteral(t *testing.T, e ast.Expr) int64 {
	t.Helper()
	neg := false
	if u, ok := e.(*ast.UnaryExpr); ok && u.Op == token.SUB {
		neg, e = true, u.X
	}
	lit, ok := e.(*ast.BasicLit)
	require.True(t, ok, "unexpected element %T", e)
	v, err := strconv.ParseInt(lit.Value, 0, 64)
	require.NoError(t, err)
	if neg {
		return -v
	}
	return v
}

func funcNames(file *ast.File) []string {
	var out []string
	for _, d := range file.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok && fd.Name.IsExported() {
			out = append(out, fd.Name.Name)
		}
	}
	return out
}

func TestGenerateParses(t *testing.T) {
	res := smallResult(t)
	src, err := Generate(res, Options{Package: "mytables"})
	require.NoError(t, err)

	file, arrays := parseGenerated(t, src)
	assert.Equal(t, "mytables", file.Name.Name)
	assert.True(t, ast.IsGenerated(file))
	assert.ElementsMatch(t, []string{"Atan", "Atan2", "AtanFast", "Atan2Fast", "Log2"}, funcNames(file))
	assert.NotContains(t, string(src), "func Acos(")

	for _, name := range []string{builder.Atan, builder.AtanFast, builder.Log2} {
		table := res.Tables[name]
		for i, r := range table.Regions {
			prefix := tableVar(name) + "R" + strconv.Itoa(i)
			if diff := cmp.Diff(r.Values, arrays[prefix+"Values"]); diff != "" {
				t.Errorf("%s values mismatch (-want +got):\n%s", prefix, diff)
			}
			if len(r.Derivs) > 0 {
				if diff := cmp.Diff(r.Derivs, arrays[prefix+"Derivs"]); diff != "" {
					t.Errorf("%s derivs mismatch (-want +got):\n%s", prefix, diff)
				}
			}
			if len(r.Nodes) > 0 {
				if diff := cmp.Diff(r.Nodes, arrays[prefix+"Nodes"]); diff != "" {
					t.Errorf("%s nodes mismatch (-want +got):\n%s", prefix, diff)
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	res := smallResult(t)
	a, err := Generate(res, Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res, Options{}))
	if diff := cmp.Diff(string(a), buf.String()); diff != "" {
		t.Errorf("output differs between runs (-first +second):\n%s", diff)
	}
	assert.Contains(t, buf.String(), "package "+DefaultPackage)
	assert.Contains(t, buf.String(), "Code generated by fxgen")
}

func TestGenerateErrors(t *testing.T) {
	res := smallResult(t)
	for _, pkg := range []string{"1tables", "func", "my-tables", "_"} {
		_, err := Generate(res, Options{Package: pkg})
		require.ErrorIs(t, err, ErrInvalidPackage, pkg)
	}

	_, err := Generate(&builder.Result{}, Options{})
	require.ErrorIs(t, err, ErrNoTables)
	_, err = Generate(nil, Options{})
	require.ErrorIs(t, err, ErrNoTables)
}

func TestTableVar(t *testing.T) {
	tests := map[string]string{
		"acos":      "acosTable",
		"atan_fast": "atanFastTable",
		"log2":      "log2Table",
	}
	for in, want := range tests {
		assert.Equal(t, want, tableVar(in))
	}
}
