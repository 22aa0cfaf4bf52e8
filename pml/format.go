package pml

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/microcosm-cc/bluemonday"
)

// DefaultIndent is the indent width used by the text formats.
const DefaultIndent = 2

// Format writes the order as a nested text list. Each nesting level is
// indented by indent spaces:
//
//	Order 123:
//	  Pizza 1 - large, hand-tossed, custom
//	    Toppings Whole:
//	      pepperoni
func (o *Order) Format(_ context.Context, w io.Writer, indent int) error {
	pad := func(depth int) string { return strings.Repeat(" ", depth*max(indent, 0)) }

	if _, err := fmt.Fprintf(w, "Order %s:\n", o.Number); err != nil {
		return err
	}

	for _, p := range o.Pizzas {
		if _, err := fmt.Fprintf(w, "%s%s\n", pad(1), p.Summary()); err != nil {
			return err
		}

		for _, t := range p.Toppings {
			if _, err := fmt.Fprintf(w, "%sToppings %s:\n", pad(2), t.Area); err != nil {
				return err
			}

			for _, item := range t.Items {
				if _, err := fmt.Fprintf(w, "%s%s\n", pad(3), item); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// Summary returns the one-line description of the pizza, for example
// "Pizza 1 - small, thin, Hawaiian".
func (p Pizza) Summary() string {
	return "Pizza " + p.Number + " - " + p.Size + ", " + p.Crust + ", " + p.Type
}

// String returns the order in text format with the default indent.
func (o *Order) String() string {
	var sb strings.Builder

	_ = o.Format(context.Background(), &sb, DefaultIndent)

	return sb.String()
}

// HTML list classes of each nesting level.
const (
	htmlOrderList = `<ul class="list-none mb-2.5">`
	htmlInnerList = `<ul class="list-none my-0 pl-10">`
	htmlPizzaItem = `<li class="mb-2">`
)

var htmlPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// FormatHTML writes the order as nested HTML unordered lists. All text taken
// from the order document is stripped of markup and escaped.
func (o *Order) FormatHTML(_ context.Context, w io.Writer) error {
	policy := htmlPolicy()
	text := func(s string) string { return policy.Sanitize(s) }

	var b strings.Builder

	b.WriteString(htmlOrderList)
	b.WriteString("<li>Order " + text(o.Number) + ":")

	if len(o.Pizzas) > 0 {
		b.WriteString(htmlInnerList)

		for _, p := range o.Pizzas {
			b.WriteString(htmlPizzaItem)
			b.WriteString(text(p.Summary()))

			if len(p.Toppings) > 0 {
				b.WriteString(htmlInnerList)

				for _, t := range p.Toppings {
					b.WriteString("<li>Toppings " + t.Area.String() + ":")

					if len(t.Items) > 0 {
						b.WriteString(htmlInnerList)

						for _, item := range t.Items {
							b.WriteString("<li>" + text(item) + "</li>")
						}

						b.WriteString("</ul>")
					}

					b.WriteString("</li>")
				}

				b.WriteString("</ul>")
			}

			b.WriteString("</li>")
		}

		b.WriteString("</ul>")
	}

	b.WriteString("</li></ul>")

	_, err := fmt.Fprintln(w, b.String())

	return err
}

// FormatJSON writes the order as JSON to the writer.
func (o *Order) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(o, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(o)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes the order as YAML to the writer.
func (o *Order) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, o, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}
