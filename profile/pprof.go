//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Modes returns the sorted list of supported profiling modes when built
// with the pprof build tag.
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(modes))
	},
)

var modes = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

func start(mode, path string, quiet bool) interface{ Stop() } {
	fn, ok := modes[mode]
	if !ok {
		return ignore{}
	}

	opts := []func(*profile.Profile){fn}

	if path != "" {
		opts = append(opts, profile.ProfilePath(path))
	}

	if quiet {
		opts = append(opts, profile.Quiet)
	}

	return profile.Start(opts...)
}
