package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxAnisotropyDefaultsToNoCeiling(t *testing.T) {
	require.Equal(t, float32(0), GetMaxAnisotropy())
}

func TestMaxAnisotropyClamp(t *testing.T) {
	defer SetMaxAnisotropy(0)

	SetMaxAnisotropy(0.5)
	require.Equal(t, float32(1), GetMaxAnisotropy())

	SetMaxAnisotropy(64)
	require.Equal(t, float32(64), GetMaxAnisotropy())

	SetMaxAnisotropy(-3)
	require.Equal(t, float32(0), GetMaxAnisotropy())
}

func TestGLErrorChecksToggle(t *testing.T) {
	defer SetGLErrorChecks(true)

	require.True(t, GetGLErrorChecks())
	SetGLErrorChecks(false)
	require.False(t, GetGLErrorChecks())
}
