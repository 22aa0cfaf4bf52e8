package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ardnew/pml/log"
	"github.com/ardnew/pml/pml"
)

// Check validates orders and prints "valid" or the first violated rule.
type Check struct {
	Hint bool `default:"true" help:"Suggest the closest menu entry for unknown values." negatable:""`

	Source []string `arg:"" default:"-" help:"Order file(s) or '-' for stdin." name:"source" optional:""`
}

// Run executes the check command. It returns [ErrRejected] if any order is
// invalid.
func (c *Check) Run(ctx context.Context, proc *pml.Processor) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := readSources(ctx, c.Source)
	if err != nil {
		return err
	}

	w := stdout(ctx)
	rejected := 0

	for _, src := range srcs {
		line := pml.Valid

		_, verr := proc.Validate(ctx, src.Text)
		if verr != nil {
			rejected++

			line = c.describe(verr)

			log.DebugContext(ctx, "order rejected",
				slog.String("source", src.Name),
				slog.Any("error", verr),
			)
		}

		if len(srcs) > 1 {
			line = src.Name + ": " + line
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	if rejected > 0 {
		return ErrRejected.With(
			slog.Int("rejected", rejected),
			slog.Int("sources", len(srcs)),
		)
	}

	return nil
}

// describe returns the user-facing message of err, with a "did you mean"
// suffix when hints are enabled and one is available.
func (c *Check) describe(err error) string {
	var perr *pml.Error
	if !errors.As(err, &perr) {
		return err.Error()
	}

	msg := perr.Message()

	if hint, ok := perr.Hint(); ok && c.Hint {
		msg += fmt.Sprintf(" (did you mean %q?)", hint)
	}

	return msg
}
