package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type stdoutKey struct{}

// WithStdout returns a new context.Context whose command output goes to w.
func WithStdout(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// stdout returns the writer for command output: the writer set with
// [WithStdout], else the kong application's Stdout, else os.Stdout.
func stdout(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok && w != nil {
		return w
	}

	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

type stdinKey struct{}

// WithStdin returns a new context.Context whose standard input source is r.
func WithStdin(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey{}, r)
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// Source is one order document read from a file or stdin.
type Source struct {
	Name string
	Text string
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// readSources reads every distinct source document named by paths, in order.
//
// Paths that resolve to the same file (by device/inode) are read once. All
// occurrences of "-" collapse into a single stdin source, placed last so it is
// read after all regular files. An empty list reads stdin.
func readSources(ctx context.Context, paths []string) ([]Source, error) {
	if len(paths) == 0 {
		paths = []string{stdinSource}
	}

	in := stdinFrom(ctx)
	seen := make(map[fileKey]struct{})

	var stdinKey fileKey

	stdinHasKey := false
	if f, ok := in.(*os.File); ok {
		if info, err := f.Stat(); err == nil {
			stdinKey, stdinHasKey = makeFileKey(info)
		}
	}

	var (
		srcs     []Source
		hasStdin bool
	)

	for _, path := range paths {
		if path == stdinSource {
			hasStdin = true

			continue
		}

		key, ok, err := statUniqueFile(path, seen)
		if err != nil {
			return nil, ErrReadSource.With(slog.String("file", path)).Wrap(err)
		}

		if !ok {
			continue
		}

		// Stdin given by name (e.g. /dev/stdin) joins the "-" source.
		if stdinHasKey && key == stdinKey {
			hasStdin = true

			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, ErrReadSource.With(slog.String("file", path)).Wrap(err)
		}

		srcs = append(srcs, Source{Name: path, Text: string(data)})
	}

	if hasStdin {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, ErrReadSource.With(slog.String("file", stdinSource)).Wrap(err)
		}

		srcs = append(srcs, Source{Name: stdinSource, Text: string(data)})
	}

	return srcs, nil
}

// statUniqueFile resolves path and records its identity in seen.
// It reports false if the file was already seen.
func statUniqueFile(path string, seen map[fileKey]struct{}) (fileKey, bool, error) {
	// Resolve to absolute path to handle relative path duplicates.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fileKey{}, false, err
	}

	// Resolve symlinks to their target.
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return fileKey{}, false, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false, err
	}

	key, ok := makeFileKey(info)
	if !ok {
		// No identity available; never deduplicate.
		return fileKey{}, true, nil
	}

	if _, exists := seen[key]; exists {
		return key, false, nil
	}

	seen[key] = struct{}{}

	return key, true, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
