package pml

import (
	"log/slog"
	"strings"
)

// Valid is the result of [Check] for an order that passes every rule.
const Valid = "valid"

// Validator applies the order checklist to an element tree.
// A Validator is immutable and safe for concurrent use.
type Validator struct {
	catalog *Catalog
}

// NewValidator returns a validator for the given catalog.
// A nil catalog selects [DefaultCatalog].
func NewValidator(c *Catalog) *Validator {
	if c == nil {
		c = DefaultCatalog()
	}

	return &Validator{catalog: c}
}

// Validate returns nil if the tree describes a valid order, or an *Error for
// the first violated rule otherwise.
//
// Rules are evaluated top-down: the order element and its number first, then
// each pizza in document order (number, size, crust, type, toppings). The
// first violation ends the walk.
func (v *Validator) Validate(root *Element) error {
	order, ok := root.First("order")
	if !ok {
		return v.fail(ErrNoOrder)
	}

	if num, ok := order.Attr("number"); !ok || strings.TrimSpace(num) == "" {
		return v.fail(ErrNoOrderNumber)
	}

	for i, pizza := range order.Find("pizza") {
		for _, check := range pizzaChecks {
			if err := check(v, i, pizza); err != nil {
				return err.With(slog.Int("pizza", i+1))
			}
		}
	}

	return nil
}

// fail returns the sentinel carrying the catalog's message for its rule.
func (v *Validator) fail(sentinel *Error) *Error {
	return sentinel.withMessage(v.catalog.Message(sentinel.rule))
}

// pizzaCheck validates one aspect of the pizza at position pos (0-based).
type pizzaCheck func(v *Validator, pos int, pizza *Element) *Error

// pizzaChecks run in order; cardinality of each field is reported before
// membership of its value.
var pizzaChecks = []pizzaCheck{
	(*Validator).checkNumber,
	(*Validator).checkSize,
	(*Validator).checkCrust,
	(*Validator).checkType,
	(*Validator).checkToppingAreas,
	(*Validator).checkToppings,
}

func (v *Validator) checkNumber(pos int, pizza *Element) *Error {
	attr, _ := pizza.Attr("number")

	n, ok := parseLeadingInt(attr)
	if !ok || n != pos+1 {
		return v.fail(ErrPizzaNumberOrder).With(slog.String("number", attr))
	}

	return nil
}

func (v *Validator) checkSize(_ int, pizza *Element) *Error {
	return v.checkField(pizza, "size", v.catalog.Sizes,
		ErrNoSize, ErrOneSizePerPizza, ErrInvalidSize)
}

func (v *Validator) checkCrust(_ int, pizza *Element) *Error {
	return v.checkField(pizza, "crust", v.catalog.Crusts,
		ErrNoCrust, ErrOneCrustPerPizza, ErrInvalidCrust)
}

func (v *Validator) checkType(_ int, pizza *Element) *Error {
	return v.checkField(pizza, "type", v.catalog.Types,
		ErrNoType, ErrOneTypePerPizza, ErrInvalidType)
}

// checkField requires exactly one tag element below pizza whose text is one
// of the accepted values.
func (v *Validator) checkField(
	pizza *Element,
	tag string,
	accepted []string,
	missing, duplicate, invalid *Error,
) *Error {
	found := pizza.Find(tag)

	switch {
	case len(found) == 0:
		return v.fail(missing)
	case len(found) > 1:
		return v.fail(duplicate).With(slog.Int("count", len(found)))
	}

	value := found[0].TextContent()
	if _, ok := lookup(accepted, value); ok {
		return nil
	}

	err := v.fail(invalid).With(slog.String(tag, value))
	if hint, ok := suggest(value, accepted); ok {
		err = err.With(slog.String(hintKey, hint))
	}

	return err
}

func (v *Validator) checkToppingAreas(_ int, pizza *Element) *Error {
	areas := pizza.Find("toppings")
	if len(areas) == 0 {
		return nil
	}

	// checkType has already guaranteed exactly one type.
	typ := pizza.Find("type")[0].TextContent()
	if !v.catalog.IsCustom(typ) {
		return v.fail(ErrToppingsNotAllowed).With(slog.String("type", typ))
	}

	if len(areas) > v.catalog.MaxToppingAreas {
		return v.fail(ErrMaxToppingAreas).With(slog.Int("count", len(areas)))
	}

	return nil
}

func (v *Validator) checkToppings(_ int, pizza *Element) *Error {
	for _, area := range pizza.Find("toppings") {
		attr, _ := area.Attr("area")
		if _, ok := ParseArea(attr); !ok {
			return v.fail(ErrInvalidToppingArea).With(slog.String("area", attr))
		}

		if n := len(area.Find("item")); n > v.catalog.MaxToppingItems {
			return v.fail(ErrMaxToppingItems).With(
				slog.String("area", attr),
				slog.Int("count", n),
			)
		}
	}

	return nil
}

// CheckTree validates root and returns [Valid] or the violated rule's message.
func (v *Validator) CheckTree(root *Element) string {
	if err := v.Validate(root); err != nil {
		return WrapError(err).Message()
	}

	return Valid
}
