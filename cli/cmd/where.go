package cmd

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/pml/pml"
)

// pizzaEnv returns the expression environment describing p.
//
// Number, Size, Crust and Type are strings. Toppings is a list of
// {Area, Items} maps, Areas lists the area labels and Items flattens every
// topping item.
func pizzaEnv(p pml.Pizza) map[string]any {
	var (
		areas    = make([]string, 0, len(p.Toppings))
		items    = []string{}
		toppings = make([]map[string]any, 0, len(p.Toppings))
	)

	for _, t := range p.Toppings {
		areas = append(areas, t.Area.String())
		items = append(items, t.Items...)
		toppings = append(toppings, map[string]any{
			"Area":  t.Area.String(),
			"Items": t.Items,
		})
	}

	return map[string]any{
		"Number":   p.Number,
		"Size":     p.Size,
		"Crust":    p.Crust,
		"Type":     p.Type,
		"Toppings": toppings,
		"Areas":    areas,
		"Items":    items,
	}
}

// compileWhere compiles a boolean pizza filter expression.
func compileWhere(source string) (*vm.Program, error) {
	program, err := expr.Compile(source,
		expr.Env(pizzaEnv(pml.Pizza{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, ErrFilter.With(slog.String("where", source)).Wrap(err)
	}

	return program, nil
}

// whereFunc returns a predicate for [pml.Order.Filter] that runs program.
func whereFunc(program *vm.Program) func(pml.Pizza) (bool, error) {
	return func(p pml.Pizza) (bool, error) {
		out, err := expr.Run(program, pizzaEnv(p))
		if err != nil {
			return false, ErrFilter.With(slog.String("pizza", p.Number)).Wrap(err)
		}

		keep, _ := out.(bool)

		return keep, nil
	}
}
