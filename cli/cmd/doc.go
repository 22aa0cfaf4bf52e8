// Package cmd implements the pml subcommands: check, render, translate,
// menu, edit and init.
//
// Commands read order documents from the files named as arguments, or from
// stdin for "-". Output goes to the Stdout of the kong application attached
// with [WithContext].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file written by init.
	ConfigIdentifier = "config"
)
