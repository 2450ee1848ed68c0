// Package profile provides optional runtime profiling for the confix
// command.
//
// Profiling integrates [github.com/pkg/profile] and must be enabled at
// build time with the "pprof" build tag. Without the tag every operation is
// a no-op with zero overhead, and the profiling command-line flags are
// absent.
//
// When enabled, profile data is written to the configured output directory
// with names matching the profiling mode (cpu.pprof, mem.pprof, ...), ready
// for "go tool pprof". Use [Modes] to list the supported modes.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
