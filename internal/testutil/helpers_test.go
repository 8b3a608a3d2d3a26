package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	msgs []string
}

func (r *recorder) Errorf(format string, args ...any) { r.msgs = append(r.msgs, fmt.Sprintf(format, args...)) }
func (r *recorder) Helper()                           {}

func TestAssertNonDecreasing(t *testing.T) {
	r := &recorder{}
	assert.True(t, AssertNonDecreasing(r, []int64{1, 1, 2, 5}))
	assert.Empty(t, r.msgs)

	assert.False(t, AssertNonDecreasing(r, []int64{1, 3, 2}, "window %s", "near one"))
	if assert.Len(t, r.msgs, 1) {
		assert.Contains(t, r.msgs[0], "s[2]=2 < s[1]=3")
		assert.Contains(t, r.msgs[0], "window near one")
	}
}

func TestAssertNonIncreasing(t *testing.T) {
	r := &recorder{}
	assert.True(t, AssertNonIncreasing(r, []int64{5, 5, -1}))
	assert.False(t, AssertNonIncreasing(r, []int64{5, 6}, "acos"))
	if assert.Len(t, r.msgs, 1) {
		assert.Contains(t, r.msgs[0], "acos")
	}
}

func TestAssertInRangeAndRelative(t *testing.T) {
	r := &recorder{}
	assert.True(t, AssertInRange(r, 0.5, 0, 1))
	assert.False(t, AssertInRange(r, 2, 0, 1, "sin(%d)", 7))
	assert.True(t, AssertRelativeError(r, 100, 100.001, 1e-4))
	assert.False(t, AssertRelativeError(r, 100, 101, 1e-4, "tan"))
	if assert.Len(t, r.msgs, 2) {
		assert.Contains(t, r.msgs[0], "sin(7)")
		assert.Contains(t, r.msgs[1], "tan")
	}
}

func TestRawGrid(t *testing.T) {
	assert.Equal(t, []int64{-2, -1, 0, 1}, RawGrid(-2, 1, 1))
	assert.Equal(t, []int64{0, 3, 6}, RawGrid(0, 7, 3))
	assert.Nil(t, RawGrid(1, 0, 1))
	assert.Equal(t, []int64{9223372036854775806, 9223372036854775807}, RawGrid(9223372036854775806, 9223372036854775807, 1))
}
