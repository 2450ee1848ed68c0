//go:build !pprof

package cli

import (
	"context"

	"github.com/alecthomas/kong"
)

// pprofConfig is empty when built without the pprof tag: the profiling
// flags are absent and start is a no-op.
type pprofConfig struct{}

func (pprofConfig) vars() kong.Vars { return kong.Vars{} }

func (pprofConfig) group() kong.Group { return kong.Group{} }

func (pprofConfig) start(context.Context) (stop func()) { return func() {} }
