// Package xtestutil provides small, hand-written test helpers shared
// across this module's package tests, in place of a generated mocking
// framework.
package xtestutil

import (
	"bytes"
	"sync"
)

// SafeBuffer is a mutex-guarded bytes.Buffer safe to hand to a logger that
// may be written to from goroutines other than the test's own.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements io.Writer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String returns the buffer's contents so far.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}
