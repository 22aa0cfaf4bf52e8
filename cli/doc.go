// Package cli contains the command line interface for pml.
//
// # Usage
//
//	pml [flags] <command> [args]
//
// Commands:
//   - check: print "valid" or the first violated rule of each order
//   - render: print validated orders as text, tree, html, json or yaml
//   - translate: print the markup an order translates to
//   - menu: print the active menu catalog
//   - edit: edit an order with live validation
//   - init: write the current flag values to the config file
//
// With no command, arguments are checked:
//
//	pml order.pml
//
// # Configuration
//
// Flags may be set in config.yaml or config.json in the user config
// directory (e.g. ~/.config/pml). See [resolve] for the YAML layout. Flags
// given on the command line take precedence.
//
// The --menu flag replaces the built-in menu with a YAML or JSON catalog,
// such as one produced by "pml menu".
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o pml .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/pml/pprof)
package cli
