package lounge

import (
	"context"
	"sync"
)

// Detector decides whether a value is a domain object.
type Detector func(v any) bool

var (
	detector   Detector
	detectorMu sync.RWMutex
)

// implementsDocument is the default detector.
func implementsDocument(v any) bool {
	_, ok := v.(Document)
	return ok
}

// SetDetector binds the detector used by IsLoungeObject and Clone.
// The mapping layer calls it once its document types are registered.
// Values the detector accepts must still implement Document.
func SetDetector(d Detector) {
	if d == nil {
		return
	}
	detectorMu.Lock()
	detector = d
	detectorMu.Unlock()

	emitDetectorBound(context.Background(), false)
}

// ResetDetector restores the lazily bound default detector.
// This is primarily useful for test isolation.
func ResetDetector() {
	detectorMu.Lock()
	defer detectorMu.Unlock()
	detector = nil
}

// currentDetector returns the bound detector, binding the default on
// first use.
func currentDetector() Detector {
	// Fast path: read-lock check
	detectorMu.RLock()
	d := detector
	detectorMu.RUnlock()
	if d != nil {
		return d
	}

	// Slow path: bind the default with write-lock
	detectorMu.Lock()
	bound := false

	// Double-check pattern
	if detector == nil {
		detector = implementsDocument
		bound = true
	}
	d = detector
	detectorMu.Unlock()

	// Listeners may call back into IsLoungeObject.
	if bound {
		emitDetectorBound(context.Background(), true)
	}
	return d
}

// IsLoungeObject reports whether v is a domain object that converts itself
// through Document.
func IsLoungeObject(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(Document); !ok {
		return false
	}
	return currentDetector()(v)
}
