package lounge

import (
	"sync"
)

// registryKey combines codec and options for cache lookup.
type registryKey struct {
	contentType string
	opts        Options
}

var (
	registry   = make(map[registryKey]*Encoder)
	registryMu sync.RWMutex
)

// Use returns a cached encoder or builds a new one.
// The encoder is cached by codec content type and options, so the first
// codec registered for a content type wins.
func Use(codec Codec, opts Options) *Encoder {
	key := registryKey{contentType: codec.ContentType(), opts: opts}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached
	}

	enc := NewEncoder(codec, opts)
	registry[key] = enc
	return enc
}

// Reset clears the encoder registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]*Encoder)
}
