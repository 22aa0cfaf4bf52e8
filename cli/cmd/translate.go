package cmd

import (
	"context"
	"io"

	"github.com/ardnew/pml/pml"
)

// Translate prints the markup produced by the brace-to-angle translation,
// without validating it.
type Translate struct {
	Source []string `arg:"" default:"-" help:"Order file(s) or '-' for stdin." name:"source" optional:""`
}

// Run executes the translate command.
func (t *Translate) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := readSources(ctx, t.Source)
	if err != nil {
		return err
	}

	w := stdout(ctx)

	for _, src := range srcs {
		if _, err := io.WriteString(w, pml.Translate(src.Text)); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}
