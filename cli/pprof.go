//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/confix-lang/confix/log"
	"github.com/confix-lang/confix/profile"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling"         placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory"                                 type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(cacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if configured.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	log.DebugContext(ctx, "pprof start",
		slog.String("mode", f.Mode),
		slog.String("dir", f.Dir),
	)

	profiler := profile.New(f.Mode, f.Dir, true).Start()

	return func() {
		log.DebugContext(ctx, "pprof stop",
			slog.String("mode", f.Mode),
			slog.String("dir", f.Dir),
		)
		profiler.Stop()
	}
}
