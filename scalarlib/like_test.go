package scalarlib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileLikePatternWildcards(t *testing.T) {
	re, err := CompileLikePattern("h_llo%", '\\')
	require.NoError(t, err)
	require.True(t, re.MatchString("hello world"))
	require.False(t, re.MatchString("goodbye"))
}

func TestIsPlainEquality(t *testing.T) {
	require.True(t, IsPlainEquality("abc", '\\'))
	require.False(t, IsPlainEquality("a%c", '\\'))
	require.True(t, IsPlainEquality(`a\%c`, '\\'))
}

func TestUnescapeLiteral(t *testing.T) {
	require.Equal(t, "a%c", UnescapeLiteral(`a\%c`, '\\'))
}
