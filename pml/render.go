package pml

import (
	"iter"
	"strings"
)

// Order is the rendered form of a validated order document.
type Order struct {
	Number string  `json:"number" yaml:"number"`
	Pizzas []Pizza `json:"pizzas" yaml:"pizzas"`
}

// Pizza is a single rendered pizza. Toppings is only populated for pizzas of
// the catalog's custom type.
type Pizza struct {
	Number   string        `json:"number"             yaml:"number"`
	Size     string        `json:"size"               yaml:"size"`
	Crust    string        `json:"crust"              yaml:"crust"`
	Type     string        `json:"type"               yaml:"type"`
	Toppings []ToppingArea `json:"toppings,omitempty" yaml:"toppings,omitempty"`
}

// ToppingArea lists the items placed on one area of a pizza.
type ToppingArea struct {
	Area  Area     `json:"area"  yaml:"area"`
	Items []string `json:"items" yaml:"items"`
}

// All returns an iterator over the pizzas of the order.
func (o *Order) All() iter.Seq2[int, Pizza] {
	return func(yield func(int, Pizza) bool) {
		for i, p := range o.Pizzas {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Filter returns a copy of the order keeping only the pizzas for which keep
// returns true. Pizza numbers are not renumbered.
func (o *Order) Filter(keep func(Pizza) (bool, error)) (*Order, error) {
	out := &Order{Number: o.Number}

	for _, p := range o.All() {
		ok, err := keep(p)
		if err != nil {
			return nil, err
		}

		if ok {
			out.Pizzas = append(out.Pizzas, p)
		}
	}

	return out, nil
}

// Renderer converts validated element trees into [Order] values.
type Renderer struct {
	catalog *Catalog
}

// NewRenderer returns a renderer for the given catalog.
// A nil catalog selects [DefaultCatalog].
func NewRenderer(c *Catalog) *Renderer {
	if c == nil {
		c = DefaultCatalog()
	}

	return &Renderer{catalog: c}
}

// Render builds the order described by root, preserving document order of
// pizzas, topping areas and items.
//
// Render does not validate. The tree should have passed [Validator.Validate];
// otherwise the result is unspecified, though missing elements only produce
// empty fields.
func (r *Renderer) Render(root *Element) *Order {
	order, ok := root.First("order")
	if !ok {
		return &Order{}
	}

	num, _ := order.Attr("number")
	out := &Order{Number: num}

	for _, el := range order.Find("pizza") {
		out.Pizzas = append(out.Pizzas, r.renderPizza(el))
	}

	return out
}

func (r *Renderer) renderPizza(el *Element) Pizza {
	num, _ := el.Attr("number")

	p := Pizza{
		Number: num,
		Size:   firstText(el, "size"),
		Crust:  firstText(el, "crust"),
		Type:   firstText(el, "type"),
	}

	if !r.catalog.IsCustom(p.Type) {
		return p
	}

	for _, ta := range el.Find("toppings") {
		code, _ := ta.Attr("area")
		area, _ := ParseArea(code)

		items := ta.Find("item")
		t := ToppingArea{Area: area, Items: make([]string, 0, len(items))}

		for _, it := range items {
			t.Items = append(t.Items, strings.TrimSpace(it.TextContent()))
		}

		p.Toppings = append(p.Toppings, t)
	}

	return p
}

// firstText returns the trimmed text of the first tag element below el.
func firstText(el *Element, tag string) string {
	found := el.Find(tag)
	if len(found) == 0 {
		return ""
	}

	return strings.TrimSpace(found[0].TextContent())
}
