package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	require.NoError(t, ValidateName("Alice"))
	require.NoError(t, ValidateName(strings.Repeat("a", MaxNameLen)))
	require.ErrorIs(t, ValidateName(""), ErrNameEmpty)
	require.ErrorIs(t, ValidateName("   "), ErrNameEmpty)
	require.ErrorIs(t, ValidateName(strings.Repeat("a", MaxNameLen+1)), ErrNameTooLong)
}

func TestJoinResult_Known(t *testing.T) {
	require.True(t, JoinSuccess.Known())
	require.True(t, JoinColorTaken.Known())
	require.False(t, JoinResult("MAYBE").Known())
}
