package pml

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/goccy/go-yaml"
)

// Default limits of a custom pizza.
const (
	DefaultMaxToppingAreas = 3
	DefaultMaxToppingItems = 12
	DefaultCustomType      = "custom"
)

// ErrInvalidCatalog is returned when a menu catalog cannot be loaded or fails
// its consistency checks.
var ErrInvalidCatalog = errors.New("invalid menu catalog")

// Catalog is the read-only configuration consulted by the validator and the
// renderer: the accepted sizes, crusts and types, and the topping limits.
//
// A Catalog must not be modified once it has been handed to a [Processor].
type Catalog struct {
	Sizes           []string `json:"sizes"             yaml:"sizes"`
	Crusts          []string `json:"crusts"            yaml:"crusts"`
	Types           []string `json:"types"             yaml:"types"`
	CustomType      string   `json:"custom_type"       yaml:"custom_type"`
	MaxToppingAreas int      `json:"max_topping_areas" yaml:"max_topping_areas"`
	MaxToppingItems int      `json:"max_topping_items" yaml:"max_topping_items"`
}

// DefaultCatalog returns the built-in menu. The returned value is shared and
// must be treated as immutable; use [Catalog.Clone] to derive a new one.
var DefaultCatalog = sync.OnceValue(func() *Catalog {
	return &Catalog{
		Sizes:           []string{"small", "medium", "large"},
		Crusts:          []string{"thin", "thick", "hand-tossed", "deep dish"},
		Types:           []string{"Hawaiian", "Chicken Fajita", "Pepperoni Feast", DefaultCustomType},
		CustomType:      DefaultCustomType,
		MaxToppingAreas: DefaultMaxToppingAreas,
		MaxToppingItems: DefaultMaxToppingItems,
	}
})

// LoadCatalog reads a YAML menu from r. Keys absent from the document keep
// their default values; unknown keys are rejected.
func LoadCatalog(ctx context.Context, r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := DefaultCatalog().Clone()

	err = yaml.UnmarshalContext(ctx, data, c, yaml.DisallowUnknownField())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	if err := c.Check(); err != nil {
		return nil, err
	}

	return c, nil
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	d := *c
	d.Sizes = slices.Clone(c.Sizes)
	d.Crusts = slices.Clone(c.Crusts)
	d.Types = slices.Clone(c.Types)

	return &d
}

// Check verifies the catalog is usable: every enumeration is non-empty, the
// custom type is one of the types, and both limits are positive.
func (c *Catalog) Check() error {
	switch {
	case len(c.Sizes) == 0:
		return fmt.Errorf("%w: no sizes", ErrInvalidCatalog)
	case len(c.Crusts) == 0:
		return fmt.Errorf("%w: no crusts", ErrInvalidCatalog)
	case len(c.Types) == 0:
		return fmt.Errorf("%w: no types", ErrInvalidCatalog)
	case c.MaxToppingAreas < 1:
		return fmt.Errorf("%w: max_topping_areas must be positive", ErrInvalidCatalog)
	case c.MaxToppingItems < 1:
		return fmt.Errorf("%w: max_topping_items must be positive", ErrInvalidCatalog)
	}

	if _, ok := lookup(c.Types, c.CustomType); !ok {
		return fmt.Errorf("%w: custom type %q is not a listed type",
			ErrInvalidCatalog, c.CustomType)
	}

	return nil
}

// Size returns the catalog spelling of a size, matched case-insensitively.
func (c *Catalog) Size(s string) (string, bool) { return lookup(c.Sizes, s) }

// Crust returns the catalog spelling of a crust, matched case-insensitively.
func (c *Catalog) Crust(s string) (string, bool) { return lookup(c.Crusts, s) }

// Type returns the catalog spelling of a type, matched case-insensitively.
func (c *Catalog) Type(s string) (string, bool) { return lookup(c.Types, s) }

// IsCustom reports whether the pizza type accepts toppings. Like the other
// lookups, s must match exactly apart from letter case.
func (c *Catalog) IsCustom(s string) bool {
	return strings.EqualFold(s, c.CustomType)
}

var staticMessage = map[Rule]string{
	RuleInvalidFormat:         "Invalid PML format",
	RuleNoOrder:               "There is no order.",
	RuleOneOrderPerSubmission: "Only one order per submission is allowed.",
	RuleNoOrderNumber:         "No order number.",
	RulePizzaNumberOrder:      "Incorrect order of pizzas.",
	RuleNoSize:                "Please indicate pizza size.",
	RuleOneSizePerPizza:       "Only one size per pizza.",
	RuleNoCrust:               "Please indicate pizza crust.",
	RuleOneCrustPerPizza:      "Only one crust type per pizza.",
	RuleNoType:                "Please indicate pizza type.",
	RuleOneTypePerPizza:       "Only one type per pizza.",
	RuleToppingsNotAllowed:    "Selected pizza type cannot have custom toppings.",
	RuleInvalidToppingArea: "Topping area must be 0 (whole pizza), " +
		"1 (first-half), or 2 (second-half).",
}

// Message returns the user-facing message for a rule. Messages of the
// enumeration and limit rules are derived from the catalog contents.
func (c *Catalog) Message(r Rule) string {
	switch r {
	case RuleInvalidSize:
		return "Pizza size must be " + listOr(c.Sizes) + "."
	case RuleInvalidCrust:
		return "Pizza crust must be " + listOr(c.Crusts) + "."
	case RuleInvalidType:
		return "Pizza type must be " + listOr(c.Types) + "."
	case RuleMaxToppingAreas:
		return "Up to " + strconv.Itoa(c.MaxToppingAreas) + " topping areas allowed."
	case RuleMaxToppingItems:
		return "Up to " + strconv.Itoa(c.MaxToppingItems) + " toppings per area allowed."
	}

	if msg, ok := staticMessage[r]; ok {
		return msg
	}

	return r.String()
}

// lookup finds s in list ignoring case. Surrounding whitespace is
// significant: " small " is not a size.
func lookup(list []string, s string) (string, bool) {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return v, true
		}
	}

	return "", false
}

// listOr joins items as an English disjunction: "a", "a or b", "a, b, or c".
func listOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}

	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}

// Area is a zone of a pizza to which a set of topping items is assigned.
type Area int

const (
	AreaWhole      Area = iota // Whole
	AreaFirstHalf              // First-Half
	AreaSecondHalf             // Second-Half
)

var areaLabel = [...]string{
	AreaWhole:      "Whole",
	AreaFirstHalf:  "First-Half",
	AreaSecondHalf: "Second-Half",
}

// Areas returns every valid topping area in code order.
func Areas() []Area { return []Area{AreaWhole, AreaFirstHalf, AreaSecondHalf} }

// Valid reports whether a is one of the three defined areas.
func (a Area) Valid() bool { return a >= AreaWhole && a <= AreaSecondHalf }

// String returns the human label of the area.
func (a Area) String() string {
	if !a.Valid() {
		return "Area(" + strconv.Itoa(int(a)) + ")"
	}

	return areaLabel[a]
}

// MarshalText implements encoding.TextMarshaler using the area label.
func (a Area) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid topping area %d", int(a))
	}

	return []byte(a.String()), nil
}

// ParseArea parses an area attribute value. Like the number attributes, only
// the leading integer of s is significant.
func ParseArea(s string) (Area, bool) {
	n, ok := parseLeadingInt(s)
	if !ok || n < int(AreaWhole) || n > int(AreaSecondHalf) {
		return 0, false
	}

	return Area(n), true
}

// parseLeadingInt parses the integer prefix of s like JavaScript's parseInt
// without a radix: leading whitespace is skipped, then an optional
// sign, then either "0x"/"0X" and hexadecimal digits or decimal digits.
// Trailing characters are ignored. It fails when no digit is present or the
// value does not fit in an int.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, isLeadingSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHex
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}

	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil {
		return 0, false
	}

	if neg {
		n = -n
	}

	return int(n), true
}

// isLeadingSpace reports whether r is skipped before a number: Unicode white
// space plus the byte order mark.
func isLeadingSpace(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' }

func isDecimal(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
