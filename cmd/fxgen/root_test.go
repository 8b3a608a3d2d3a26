package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fixedmath/internal/builder"
	"github.com/tphakala/go-fixedmath/internal/cli"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseArgs(t *testing.T) {
	policy := builder.DefaultPolicy()
	tests := []struct {
		name    string
		args    []string
		want    request
		wantErr bool
	}{
		{"single", []string{"atan"}, request{tables: []string{"atan"}}, false},
		{"alias", []string{"COS", "out.go"}, request{tables: []string{"sin"}, output: "out.go"}, false},
		{"all", []string{"all", "-", "64", "32"}, request{tables: policy.Names(), output: "-", entries: 64, fracBits: 32}, false},
		{"unknown", []string{"exp"}, request{}, true},
		{"bad entries", []string{"atan", "-", "lots"}, request{}, true},
		{"zero entries", []string{"atan", "-", "0"}, request{}, true},
		{"bad fracbits", []string{"atan", "-", "16", "4x"}, request{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(policy, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestApply(t *testing.T) {
	req := request{tables: []string{builder.Log2}, entries: 64, fracBits: 32}
	p, err := req.apply(builder.DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, []string{builder.Log2}, p.Names())
	assert.Equal(t, 64, p.Tables[builder.Log2].Entries())
	assert.Equal(t, 32, p.Tables[builder.Log2].FracBits)

	_, err = request{tables: []string{builder.Atan}, fracBits: 70}.apply(builder.DefaultPolicy())
	require.ErrorIs(t, err, builder.ErrInvalidPolicy)
}

func TestGenerateToStdout(t *testing.T) {
	out, _, err := execute(t, "atan", "-", "16", "32", "--digits", "30", "--package", "gen")
	require.NoError(t, err)
	assert.Contains(t, out, "package gen")
	assert.Contains(t, out, "func Atan(")
	assert.Contains(t, out, "func Atan2(")
	assert.Contains(t, out, "FracBits: 32")
	assert.NotContains(t, out, "func Log2(")
}

func TestGenerateBuiltin(t *testing.T) {
	out, _, err := execute(t, "log2", "-", "32", "--digits", "30", "--builtin", "--package", "ignored")
	require.NoError(t, err)
	assert.Contains(t, out, "package fixedmath\n")
	assert.Contains(t, out, "var defaultTables = Tables{")
	assert.NotContains(t, out, "fixedmath.Tables")
	assert.NotContains(t, out, "func Log2(")
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables_gen.go")
	out, _, err := execute(t, "log2", path, "32", "--digits", "30")
	require.NoError(t, err)
	assert.Empty(t, out)

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(src), "func Log2(")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"too many arguments", []string{"atan", "-", "1", "2", "3"}},
		{"unparseable entries", []string{"atan", "-", "many"}},
		{"unknown function", []string{"gamma"}},
		{"unknown flag", []string{"atan", "--nope"}},
		{"bad package", []string{"atan", "-", "16", "--digits", "30", "--package", "my-pkg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
		})
	}
}

func TestMissingPolicyFile(t *testing.T) {
	_, _, err := execute(t, "atan", "--policy", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}
