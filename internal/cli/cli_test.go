package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain", base, ExitError},
		{"usage", Usage(base), ExitUsage},
		{"wrapped usage", fmt.Errorf("parsing: %w", Usage(base)), ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
	assert.NoError(t, Usage(nil))
	assert.ErrorIs(t, Usage(base), base)
}

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		l, err := NewLogger(verbose)
		require.NoError(t, err)
		require.NotNil(t, l)
		assert.Equal(t, verbose, l.Core().Enabled(-1))
	}
	assert.NotNil(t, MustLogger(false))
}
