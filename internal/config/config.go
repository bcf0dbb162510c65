package config

import "sync"

// GLSettings holds runtime switches for the GL resource layer
type GLSettings struct {
	mu            sync.RWMutex
	errorChecks   bool
	maxAnisotropy float32
}

var globalGLSettings = &GLSettings{
	errorChecks:   true, // glGetError after every call
	maxAnisotropy: 0,    // no ceiling
}

// GetGLErrorChecks reports whether GL calls are followed by glGetError
func GetGLErrorChecks() bool {
	globalGLSettings.mu.RLock()
	defer globalGLSettings.mu.RUnlock()
	return globalGLSettings.errorChecks
}

// SetGLErrorChecks enables or disables error draining after GL calls
func SetGLErrorChecks(enabled bool) {
	globalGLSettings.mu.Lock()
	defer globalGLSettings.mu.Unlock()
	globalGLSettings.errorChecks = enabled
}

// GetMaxAnisotropy returns the upper bound applied to requested anisotropy.
// 0 means requested levels are passed to GL unchanged.
func GetMaxAnisotropy() float32 {
	globalGLSettings.mu.RLock()
	defer globalGLSettings.mu.RUnlock()
	return globalGLSettings.maxAnisotropy
}

// SetMaxAnisotropy sets the anisotropy ceiling, usually from the driver's
// GL_MAX_TEXTURE_MAX_ANISOTROPY. Pass 0 to remove it.
func SetMaxAnisotropy(level float32) {
	globalGLSettings.mu.Lock()
	defer globalGLSettings.mu.Unlock()

	// Below 1 is not a usable ceiling; non-positive disables it
	if level <= 0 {
		level = 0
	} else if level < 1 {
		level = 1
	}

	globalGLSettings.maxAnisotropy = level
}
