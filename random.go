package tint

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
)

// Source supplies uniform random integers for Random.
// IntN must return a value in [0, n) for n > 0.
type Source interface {
	IntN(n int) int
}

// defaultSource draws from math/rand/v2's shared generator.
type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// sourceBox wraps the Source interface value so it can be stored in an
// atomic.Pointer.
type sourceBox struct {
	src Source
}

// srcPtr stores the active randomness source. Accessed atomically so that
// SetRandSource can be called concurrently with Random from any goroutine.
var srcPtr atomic.Pointer[sourceBox]

func init() {
	srcPtr.Store(&sourceBox{src: defaultSource{}})
}

// SetRandSource configures the randomness source used by Random.
// By default Random draws from math/rand/v2. Pass nil to restore the
// default source. Useful for deterministic colors in tests.
//
// SetRandSource is safe for concurrent use: it stores the new source
// atomically.
func SetRandSource(s Source) {
	if s == nil {
		s = defaultSource{}
	}
	srcPtr.Store(&sourceBox{src: s})
}

// Random returns a uniformly random canonical hex color in
// ["#000000", "#ffffff"]. It never fails.
func Random() string {
	n := srcPtr.Load().src.IntN(0x1000000)
	return fmt.Sprintf("#%06x", n)
}
