package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	require.Equal(t, "ssh", Label(22))
	require.Equal(t, "http", Label(80))
	require.Equal(t, "https", Label(443))
}

func TestLabel_Fallback(t *testing.T) {
	for port := range fallback {
		name := Label(port)
		require.NotEmpty(t, name, "port %d", port)
		require.NotEqual(t, Unknown, name, "port %d", port)
	}
}

func TestLabel_OutOfRange(t *testing.T) {
	require.Equal(t, Unknown, Label(0))
	require.Equal(t, Unknown, Label(70000))
}
