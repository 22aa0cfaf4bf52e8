package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/ardnew/pml/pml"
)

// treeStyle holds the styles of the tree render format. Styles are bound to
// a renderer for the output writer, so writers that are not terminals
// receive plain text.
type treeStyle struct {
	enum, order, pizza, area, item lipgloss.Style
}

func newTreeStyle(w io.Writer) treeStyle {
	r := lipgloss.NewRenderer(w)

	return treeStyle{
		enum:  r.NewStyle().Foreground(lipgloss.Color("8")).MarginRight(1),
		order: r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		pizza: r.NewStyle().Foreground(lipgloss.Color("6")),
		area:  r.NewStyle().Foreground(lipgloss.Color("3")),
		item:  r.NewStyle(),
	}
}

// orderTree builds the box-drawing tree of an order:
//
//	Order 123
//	├── Pizza 1 - large, hand-tossed, custom
//	│   └── Toppings Whole
//	│       └── pepperoni
//	└── Pizza 2 - medium, deep dish, pepperoni feast
func orderTree(o *pml.Order, s treeStyle) *tree.Tree {
	t := tree.Root(s.order.Render("Order " + o.Number)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(s.enum)

	for _, p := range o.All() {
		pt := tree.Root(s.pizza.Render(p.Summary()))

		for _, ta := range p.Toppings {
			at := tree.Root(s.area.Render("Toppings " + ta.Area.String()))

			for _, item := range ta.Items {
				at.Child(s.item.Render(item))
			}

			pt.Child(at)
		}

		t.Child(pt)
	}

	return t
}

// formatTree writes the tree render of o to w.
func formatTree(w io.Writer, o *pml.Order) error {
	_, err := fmt.Fprintln(w, orderTree(o, newTreeStyle(w)).String())

	return err
}
