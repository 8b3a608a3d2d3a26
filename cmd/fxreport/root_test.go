package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fixedmath "github.com/tphakala/go-fixedmath"
	"github.com/tphakala/go-fixedmath/internal/cli"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestReportSelected(t *testing.T) {
	out, err := execute(t, "acos", "log2", "-n", "2001", "--fail-above", "1e-9")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "acos"))
	assert.True(t, strings.HasPrefix(lines[1], "log2"))
	assert.Contains(t, lines[0], "violations=0")
}

func TestReportAll(t *testing.T) {
	out, err := execute(t, "-n", "501", "-f", "32")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(fixedmath.Funcs()))
}

func TestReportOracle(t *testing.T) {
	out, err := execute(t, "atan", "asin", "-n", "101", "--oracle-digits", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "atan")
	assert.Contains(t, out, "asin")
}

func TestReportThreshold(t *testing.T) {
	_, err := execute(t, "atan_fast", "-n", "2001", "-f", "32", "--fail-above", "1e-12")
	require.ErrorIs(t, err, ErrThreshold)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}

func TestReportUsageErrors(t *testing.T) {
	tests := [][]string{
		{"exp"},
		{"-f", "63"},
		{"-n", "1"},
		{"--samples", "lots"},
	}
	for _, args := range tests {
		_, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err), args)
	}
}

func TestOracleName(t *testing.T) {
	assert.Equal(t, "atan", oracleName(fixedmath.FuncAtanFast))
	assert.Equal(t, "cos", oracleName(fixedmath.FuncCos))
}
