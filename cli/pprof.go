//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pml/log"
	"github.com/ardnew/pml/profile"
)

// pprofConfig holds the profiling flags of pprof builds.
type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Profile the command run (${enum})." placeholder:"MODE" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Directory receiving profile files."                   type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": joinSeq(slices.Values(profile.Modes())),
		"pprofDir":      filepath.Join(cacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: profile.Tag, Title: "Profiling options"}
}

// start begins profiling when a mode is selected. The returned function
// stops it and must be called before the process exits.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	attrs := []slog.Attr{slog.String("mode", f.Mode), slog.String("dir", f.Dir)}

	log.DebugContext(ctx, "profiling", attrs...)

	p := profile.Profiler{Mode: f.Mode, Path: f.Dir, Quiet: true}.Start()

	return func() {
		p.Stop()
		log.DebugContext(ctx, "profile written", attrs...)
	}
}
