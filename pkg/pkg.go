// Package pkg holds build metadata for the pml command.
//
//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the pml module embedded at build time.
// It is printed by the CLI for the --version flag.
var Version = strings.TrimSpace(version)

const (
	// Name is the canonical command identifier. It appears in help text and
	// default config and cache paths.
	Name = "pml"
	// Description is a short summary used in help output.
	Description = "Pizza order markup validator and renderer"
)
