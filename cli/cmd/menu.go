package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/pml/pml"
)

// Menu prints the active menu catalog. The output is a valid --menu file.
type Menu struct {
	Format string `default:"yaml" enum:"yaml,json" help:"Output format (${enum})." short:"f"`
	Indent int    `default:"2"                     help:"Indent width (0 selects compact JSON/flow YAML)." short:"i"`
}

// Run executes the menu command.
func (m *Menu) Run(ctx context.Context, proc *pml.Processor) error {
	data, err := m.marshal(ctx, proc.Catalog())
	if err != nil {
		return ErrWriteOutput.With(slog.String("format", m.Format)).Wrap(err)
	}

	if _, err := fmt.Fprint(stdout(ctx), string(data)); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

func (m *Menu) marshal(ctx context.Context, c *pml.Catalog) ([]byte, error) {
	switch m.Format {
	case "json":
		var (
			data []byte
			err  error
		)

		if m.Indent > 0 {
			data, err = json.MarshalIndent(c, "", strings.Repeat(" ", m.Indent))
		} else {
			data, err = json.Marshal(c)
		}

		return append(data, '\n'), err

	default:
		opts := []yaml.EncodeOption{yaml.IndentSequence(true)}
		if m.Indent > 0 {
			opts = append(opts, yaml.Indent(m.Indent))
		} else {
			opts = append(opts, yaml.Flow(true))
		}

		return yaml.MarshalContext(ctx, c, opts...)
	}
}
