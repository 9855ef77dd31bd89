// SPDX-License-Identifier: MIT

// Package mtcrack: functional configuration for matrix construction and
// recovery. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: worker count never changes build output.
//   - No dead switches: each knob impacts behavior; WithWidth, WithWorkers
//     and WithMatrix are covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package mtcrack

import "runtime"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultWidth is the observation width v: one MSB per output word.
	DefaultWidth = 1

	// DefaultWorkers selects the build parallelism; 0 means
	// runtime.GOMAXPROCS(0) at build time. Elimination stays single-threaded.
	DefaultWorkers = 0

	// DefaultVerbose disables progress printing.
	DefaultVerbose = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	width   int             // observation width v; validated at entry points
	workers int             // build parallelism; 0 ⇒ GOMAXPROCS
	verbose bool            // print build/elimination progress via fmt
	matrix  *MatrixArtifact // pre-built transformation matrix, or nil
}

// WithWidth selects the observation width v: the top v bits of every
// output word become v consecutive observation bits. Supported widths
// are the powers of two 1..32; entry points reject anything else with
// ErrBadParameter.
func WithWidth(v int) Option {
	return func(o *options) { o.width = v }
}

// WithWorkers bounds the number of goroutines used by BuildMatrix.
// Values < 1 fall back to runtime.GOMAXPROCS(0). The build result is
// identical for every worker count.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithVerbose enables progress printing (build stripes, elimination
// milestones) via fmt. Off by default; the core never logs otherwise.
func WithVerbose() Option {
	return func(o *options) { o.verbose = true }
}

// WithMatrix injects a pre-built transformation matrix (built earlier,
// cloned, or loaded from a cache file) so New skips the expensive build.
// The artifact's width becomes the Cracker's width.
func WithMatrix(m *MatrixArtifact) Option {
	return func(o *options) { o.matrix = m }
}

// gatherOptions resolves defaults and applies setters in order.
func gatherOptions(opts ...Option) options {
	o := options{
		width:   DefaultWidth,
		workers: DefaultWorkers,
		verbose: DefaultVerbose,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// effectiveWorkers maps the workers knob to a concrete goroutine count.
func (o options) effectiveWorkers() int {
	if o.workers < 1 {
		return runtime.GOMAXPROCS(0)
	}

	return o.workers
}

// validWidth reports whether v is a supported observation width.
func validWidth(v int) bool {
	switch v {
	case 1, 2, 4, 8, 16, 32:
		return true
	}

	return false
}
