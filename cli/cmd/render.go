package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/pml/pml"
)

// Render validates orders and writes their rendered form.
type Render struct {
	Format string `default:"text" enum:"text,tree,html,json,yaml" help:"Output format (${enum})." short:"f"`
	Indent int    `default:"2"                                     help:"Indent width for text, JSON and YAML output (0 selects compact JSON/flow YAML)." short:"i"`
	Where  string `help:"Keep only pizzas matching this expression, e.g. 'Size == \"large\" && len(Items) > 0'." placeholder:"EXPR" short:"w"`

	Source []string `arg:"" default:"-" help:"Order file(s) or '-' for stdin." name:"source" optional:""`
}

// Run executes the render command. An invalid order prints its message in
// place of the rendering and stops with [ErrRejected] wrapping the
// validation error.
func (r *Render) Run(ctx context.Context, proc *pml.Processor) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var program *vm.Program

	if r.Where != "" {
		program, err = compileWhere(r.Where)
		if err != nil {
			return err
		}
	}

	srcs, err := readSources(ctx, r.Source)
	if err != nil {
		return err
	}

	w := stdout(ctx)

	for _, src := range srcs {
		order, err := proc.Process(ctx, src.Text)
		if err != nil {
			msg := pml.WrapError(err).Message()
			if len(srcs) > 1 {
				msg = src.Name + ": " + msg
			}

			if _, werr := fmt.Fprintln(w, msg); werr != nil {
				return ErrWriteOutput.Wrap(werr)
			}

			return ErrRejected.With(slog.String("source", src.Name)).Wrap(err)
		}

		if program != nil {
			order, err = order.Filter(whereFunc(program))
			if err != nil {
				return err
			}
		}

		if err := r.write(ctx, w, order); err != nil {
			return ErrWriteOutput.
				With(slog.String("source", src.Name), slog.String("format", r.Format)).
				Wrap(err)
		}
	}

	return nil
}

func (r *Render) write(ctx context.Context, w io.Writer, o *pml.Order) error {
	switch r.Format {
	case "tree":
		return formatTree(w, o)
	case "html":
		return o.FormatHTML(ctx, w)
	case "json":
		return o.FormatJSON(ctx, w, r.Indent)
	case "yaml":
		return o.FormatYAML(ctx, w, r.Indent)
	case "text", "":
		return o.Format(ctx, w, r.Indent)
	default:
		return fmt.Errorf("unknown format %q", r.Format)
	}
}
