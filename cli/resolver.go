package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/pml/log"
)

// resolve is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// The document is converted as follows:
//   - Top-level keys name flags; "log-level" and "log_level" are equivalent
//   - Nested mappings join their keys with "-", so log: {level: debug}
//     sets --log-level
//   - Sequences are kept as lists for slice flags
//   - Numbers are passed to kong as strings
//
// Example config file:
//
//	menu: ~/.config/pml/menu.yaml
//	log:
//	  level: debug
//	  format: text
//	  pretty: true
//
// Command-line flags override config file values. A file that does not parse
// is ignored with a warning.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any

	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Warn("ignoring invalid config file", slog.Any("error", err))

		return config{}, nil
	}

	cfg := make(config)
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flatten copies the entries of m into r under hyphen-joined keys.
// Underscores in keys are normalized to hyphens.
func (r config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := prefix + strings.ReplaceAll(k, "_", "-")

		switch v := v.(type) {
		case map[string]any:
			r.flatten(key+"-", v)

		case int, int64, uint64, float64:
			// Kong requires numbers as strings for parsing
			r[key] = fmt.Sprint(v)

		default:
			r[key] = v
		}
	}
}
