package profile

// Config functions return all supported pprof configuration parameters.
type Config func() (mode, path string, quiet bool)

// New returns a Config with the given mode, output directory, and quiet
// flag. An empty mode disables profiling.
func New(mode, path string, quiet bool) Config {
	return func() (string, string, bool) { return mode, path, quiet }
}

// Start initializes the profiler and returns an interface for stopping it.
//
// If the pprof build tag or the configured mode is unset, Start returns a
// no-op implementation. Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

type ignore struct{}

func (ignore) Stop() {}
