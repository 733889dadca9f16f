package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\r\n\r\nb\n"))
	assert.Nil(t, Lines("\n\n"))
}

func TestBlocks(t *testing.T) {
	got := Blocks("a\nb\n\n\nc\n")
	assert.Equal(t, []string{"a\nb", "c"}, got)
}

func TestInts(t *testing.T) {
	got, err := Ints("  3   4\t-5 ")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, -5}, got)

	got, err = IntsSep("75,47,61", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{75, 47, 61}, got)

	_, err = Ints("1 x 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse integer "x"`)
}

func TestAllInts(t *testing.T) {
	assert.Equal(t, []int{94, 34, -22}, AllInts("Button A: X+94, Y+34 Z-22"))
	assert.Empty(t, AllInts("no digits"))
}
