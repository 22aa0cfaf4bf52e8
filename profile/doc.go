// Package profile provides optional runtime profiling for the pml command.
//
// Profiling wraps [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof -o pml .
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op.
//
// # Modes
//
//   - allocs, heap, mem: memory profiles
//   - block, mutex: synchronization profiles
//   - clock, cpu: wall-clock and CPU profiles
//   - goroutine, thread: goroutine and thread creation profiles
//   - trace: execution trace
//
// # Usage
//
//	s := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}.Start()
//	defer s.Stop()
//
// From the command line:
//
//	pml --pprof-mode cpu check order.pml
//	pml --pprof-mode heap --pprof-dir ./profiles render order.pml
//
// Profiles are written as <mode>.pprof under the output directory, which
// defaults to the pprof subdirectory of the user cache directory. Analyze them
// with go tool pprof:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
// With the tag set, the package also imports [net/http/pprof], registering
// the /debug/pprof/ handlers on [net/http.DefaultServeMux].
package profile
