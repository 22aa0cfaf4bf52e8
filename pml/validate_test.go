package pml

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// order wraps pizzas in an order element numbered 1.
func order(pizzas ...string) string {
	return `{order number="1"}` + strings.Join(pizzas, "") + `{\order}`
}

// pizza returns a pizza element with the given number attribute and body.
func pizza(number, body string) string {
	return `{pizza number="` + number + `"}` + body + `{\pizza}`
}

// leaf returns a leaf element holding text.
func leaf(tag, text string) string {
	return "{" + tag + "}" + text + `{\` + tag + "}"
}

// fields returns the size, crust and type leaves of a pizza.
func fields(size, crust, typ string) string {
	return leaf("size", size) + leaf("crust", crust) + leaf("type", typ)
}

// toppings returns a toppings element with the given area and items.
func toppings(area string, items ...string) string {
	var b strings.Builder

	b.WriteString(`{toppings area="` + area + `"}`)

	for _, item := range items {
		b.WriteString(leaf("item", item))
	}

	b.WriteString(`{\toppings}`)

	return b.String()
}

// itemList returns n distinct topping item names.
func itemList(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i+1)
	}

	return items
}

const hawaiian = `{order number="1"}{pizza number="1"}{size}small{\size}{crust}thin{\crust}{type}Hawaiian{\type}{\pizza}{\order}`

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *Error // nil means valid
		msg  string
	}{
		{
			name: "round_trip",
			src:  hawaiian,
		},
		{
			name: "sample_order",
			src:  SampleOrder,
		},
		{
			name: "order_without_pizzas",
			src:  `{order number="7"}{\order}`,
		},
		{
			name: "order_below_root",
			src:  `{submission}{order number="1"}` + pizza("1", fields("small", "thin", "Hawaiian")) + `{\order}{\submission}`,
		},
		{
			name: "case_insensitive_values",
			src:  order(pizza("1", fields("LARGE", "Deep Dish", "CUSTOM")+toppings("0", "ham"))),
		},
		{
			name: "hex_pizza_number",
			src:  order(pizza("0x1", fields("small", "thin", "Hawaiian"))),
		},
		{
			name: "hex_topping_area",
			src:  order(pizza("1", fields("small", "thin", "custom")+toppings("0X2", "ham"))),
		},
		{
			name: "split_value_text",
			src:  order(pizza("1", `{size}sm{b}{\b}all{\size}`+leaf("crust", "thin")+leaf("type", "Hawaiian"))),
		},
		{
			name: "padded_size",
			src:  order(pizza("1", fields(" small ", "thin", "Hawaiian"))),
			want: ErrInvalidSize,
			msg:  "Pizza size must be small, medium, or large.",
		},
		{
			name: "padded_crust",
			src:  order(pizza("1", fields("small", "thin\n", "Hawaiian"))),
			want: ErrInvalidCrust,
			msg:  "Pizza crust must be thin, thick, hand-tossed, or deep dish.",
		},
		{
			name: "padded_custom_type",
			src:  order(pizza("1", fields("small", "thin", " custom ")+toppings("0", "ham"))),
			want: ErrInvalidType,
			msg:  "Pizza type must be Hawaiian, Chicken Fajita, Pepperoni Feast, or custom.",
		},
		{
			name: "prefixed_size_not_counted",
			src:  order(pizza("1", `{x:size}small{\x:size}`+leaf("crust", "thin")+leaf("type", "Hawaiian"))),
			want: ErrNoSize,
			msg:  "Please indicate pizza size.",
		},
		{
			name: "leading_integer_number",
			src:  order(pizza("1st", fields("small", "thin", "Hawaiian"))),
		},
		{
			name: "max_areas_and_items",
			src: order(pizza("1", fields("large", "thick", "custom")+
				toppings("0", itemList(12)...)+
				toppings("1")+
				toppings("2", "olives"))),
		},
		{
			name: "no_order",
			src:  `{menu}{\menu}`,
			want: ErrNoOrder,
			msg:  "There is no order.",
		},
		{
			name: "no_order_number",
			src:  `{order}{\order}`,
			want: ErrNoOrderNumber,
			msg:  "No order number.",
		},
		{
			name: "blank_order_number",
			src:  `{order number="  "}{\order}`,
			want: ErrNoOrderNumber,
			msg:  "No order number.",
		},
		{
			name: "pizza_number_two_first",
			src:  strings.Replace(hawaiian, `pizza number="1"`, `pizza number="2"`, 1),
			want: ErrPizzaNumberOrder,
			msg:  "Incorrect order of pizzas.",
		},
		{
			name: "pizza_number_missing",
			src:  order(`{pizza}` + fields("small", "thin", "Hawaiian") + `{\pizza}`),
			want: ErrPizzaNumberOrder,
			msg:  "Incorrect order of pizzas.",
		},
		{
			name: "pizza_number_duplicate",
			src: order(
				pizza("1", fields("small", "thin", "Hawaiian")),
				pizza("1", fields("small", "thin", "Hawaiian")),
			),
			want: ErrPizzaNumberOrder,
			msg:  "Incorrect order of pizzas.",
		},
		{
			name: "pizza_number_before_invalid_fields",
			src:  order(pizza("3", fields("huge", "soggy", "weird"))),
			want: ErrPizzaNumberOrder,
			msg:  "Incorrect order of pizzas.",
		},
		{
			name: "no_size",
			src:  order(pizza("1", leaf("crust", "thin")+leaf("type", "Hawaiian"))),
			want: ErrNoSize,
			msg:  "Please indicate pizza size.",
		},
		{
			name: "two_sizes",
			src:  order(pizza("1", leaf("size", "small")+fields("large", "thin", "Hawaiian"))),
			want: ErrOneSizePerPizza,
			msg:  "Only one size per pizza.",
		},
		{
			name: "invalid_size",
			src:  order(pizza("1", fields("huge", "thin", "Hawaiian"))),
			want: ErrInvalidSize,
			msg:  "Pizza size must be small, medium, or large.",
		},
		{
			name: "size_before_crust",
			src:  order(pizza("1", leaf("type", "Hawaiian"))),
			want: ErrNoSize,
			msg:  "Please indicate pizza size.",
		},
		{
			name: "no_crust",
			src:  order(pizza("1", leaf("size", "small")+leaf("type", "Hawaiian"))),
			want: ErrNoCrust,
			msg:  "Please indicate pizza crust.",
		},
		{
			name: "two_crusts",
			src:  order(pizza("1", leaf("crust", "thick")+fields("small", "thin", "Hawaiian"))),
			want: ErrOneCrustPerPizza,
			msg:  "Only one crust type per pizza.",
		},
		{
			name: "invalid_crust",
			src:  order(pizza("1", fields("small", "soggy", "Hawaiian"))),
			want: ErrInvalidCrust,
			msg:  "Pizza crust must be thin, thick, hand-tossed, or deep dish.",
		},
		{
			name: "no_type",
			src:  order(pizza("1", leaf("size", "small")+leaf("crust", "thin"))),
			want: ErrNoType,
			msg:  "Please indicate pizza type.",
		},
		{
			name: "two_types",
			src:  order(pizza("1", leaf("type", "custom")+fields("small", "thin", "Hawaiian"))),
			want: ErrOneTypePerPizza,
			msg:  "Only one type per pizza.",
		},
		{
			name: "invalid_type",
			src:  order(pizza("1", fields("small", "thin", "Margherita"))),
			want: ErrInvalidType,
			msg:  "Pizza type must be Hawaiian, Chicken Fajita, Pepperoni Feast, or custom.",
		},
		{
			name: "two_invalid_sizes",
			src:  order(pizza("1", leaf("size", "huge")+leaf("size", "tiny")+leaf("crust", "thin")+leaf("type", "Hawaiian"))),
			want: ErrOneSizePerPizza,
			msg:  "Only one size per pizza.",
		},
		{
			name: "two_crusts_one_invalid",
			src:  order(pizza("1", leaf("size", "small")+leaf("crust", "soggy")+leaf("crust", "thin")+leaf("type", "Hawaiian"))),
			want: ErrOneCrustPerPizza,
			msg:  "Only one crust type per pizza.",
		},
		{
			name: "two_invalid_types",
			src:  order(pizza("1", fields("small", "thin", "Margherita")+leaf("type", "Calzone"))),
			want: ErrOneTypePerPizza,
			msg:  "Only one type per pizza.",
		},
		{
			name: "toppings_on_fixed_type",
			src:  order(pizza("1", fields("small", "thin", "Hawaiian")+toppings("0", "ham"))),
			want: ErrToppingsNotAllowed,
			msg:  "Selected pizza type cannot have custom toppings.",
		},
		{
			name: "empty_toppings_on_fixed_type",
			src:  order(pizza("1", fields("small", "thin", "Pepperoni Feast")+toppings("9"))),
			want: ErrToppingsNotAllowed,
			msg:  "Selected pizza type cannot have custom toppings.",
		},
		{
			name: "four_topping_areas",
			src: order(pizza("1", fields("large", "thin", "custom")+
				toppings("0", "ham")+
				toppings("1", "olives")+
				toppings("2", "onions")+
				toppings("0", "peppers"))),
			want: ErrMaxToppingAreas,
			msg:  "Up to 3 topping areas allowed.",
		},
		{
			name: "thirteen_items",
			src:  order(pizza("1", fields("large", "thin", "custom")+toppings("0", itemList(13)...))),
			want: ErrMaxToppingItems,
			msg:  "Up to 12 toppings per area allowed.",
		},
		{
			name: "area_out_of_range",
			src:  order(pizza("1", fields("large", "thin", "custom")+toppings("3", "ham"))),
			want: ErrInvalidToppingArea,
			msg:  "Topping area must be 0 (whole pizza), 1 (first-half), or 2 (second-half).",
		},
		{
			name: "area_out_of_range_with_too_many_items",
			src:  order(pizza("1", fields("large", "thin", "custom")+toppings("-1", itemList(13)...))),
			want: ErrInvalidToppingArea,
			msg:  "Topping area must be 0 (whole pizza), 1 (first-half), or 2 (second-half).",
		},
		{
			name: "area_not_a_number",
			src:  order(pizza("1", fields("large", "thin", "custom")+toppings("whole", "ham"))),
			want: ErrInvalidToppingArea,
			msg:  "Topping area must be 0 (whole pizza), 1 (first-half), or 2 (second-half).",
		},
		{
			name: "area_missing",
			src:  order(pizza("1", fields("large", "thin", "custom")+`{toppings}{item}ham{\item}{\toppings}`)),
			want: ErrInvalidToppingArea,
			msg:  "Topping area must be 0 (whole pizza), 1 (first-half), or 2 (second-half).",
		},
		{
			name: "first_pizza_reported_first",
			src: order(
				pizza("1", fields("small", "soggy", "Hawaiian")),
				pizza("2", fields("huge", "thin", "Hawaiian")),
			),
			want: ErrInvalidCrust,
			msg:  "Pizza crust must be thin, thick, hand-tossed, or deep dish.",
		},
		{
			name: "second_pizza",
			src: order(
				pizza("1", fields("small", "thin", "Hawaiian")),
				pizza("2", fields("small", "thin", "custom")+toppings("0", itemList(13)...)),
			),
			want: ErrMaxToppingItems,
			msg:  "Up to 12 toppings per area allowed.",
		},
	}

	v := NewValidator(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			err = v.Validate(root)

			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want valid", err)
				}

				if got := v.CheckTree(root); got != Valid {
					t.Errorf("CheckTree() = %q, want %q", got, Valid)
				}

				return
			}

			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() error = %v, want rule %v", err, tt.want.Rule())
			}

			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("Validate() error %T is not *Error", err)
			}

			if perr.Message() != tt.msg {
				t.Errorf("Message() = %q, want %q", perr.Message(), tt.msg)
			}

			if got := v.CheckTree(root); got != tt.msg {
				t.Errorf("CheckTree() = %q, want %q", got, tt.msg)
			}
		})
	}
}

func TestValidate_PizzaAttribute(t *testing.T) {
	src := order(
		pizza("1", fields("small", "thin", "Hawaiian")),
		pizza("2", fields("small", "thin", "Hawaiian")),
		pizza("3", fields("small", "thin", "Hawaiian")+toppings("0", "ham")),
	)

	root, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	err = NewValidator(nil).Validate(root)

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("Validate() error = %v, want *Error", err)
	}

	found := false

	for _, a := range perr.Attrs() {
		if a.Key == "pizza" {
			found = true

			if a.Value.Int64() != 3 {
				t.Errorf("pizza attribute = %d, want 3", a.Value.Int64())
			}
		}
	}

	if !found {
		t.Error("error has no pizza attribute")
	}
}

func TestValidate_Hint(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		want  string
		found bool
	}{
		{"size", order(pizza("1", fields("lrg", "thin", "Hawaiian"))), "large", true},
		{"crust", order(pizza("1", fields("small", "deep", "Hawaiian"))), "deep dish", true},
		{"type", order(pizza("1", fields("small", "thin", "fajita"))), "Chicken Fajita", true},
		{"padded", order(pizza("1", fields(" small ", "thin", "Hawaiian"))), "small", true},
		{"no_candidate", order(pizza("1", fields("zzz", "thin", "Hawaiian"))), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			var perr *Error
			if !errors.As(NewValidator(nil).Validate(root), &perr) {
				t.Fatal("Validate() returned no *Error")
			}

			got, ok := perr.Hint()
			if ok != tt.found || got != tt.want {
				t.Errorf("Hint() = %q, %v; want %q, %v", got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestValidate_CustomCatalog(t *testing.T) {
	c := DefaultCatalog().Clone()
	c.Sizes = []string{"personal", "family"}
	c.Types = []string{"build your own", "veggie"}
	c.CustomType = "build your own"
	c.MaxToppingAreas = 1
	c.MaxToppingItems = 2

	v := NewValidator(c)

	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{
			name: "valid",
			src:  order(pizza("1", fields("family", "thin", "Build Your Own")+toppings("0", "ham", "olives"))),
			msg:  Valid,
		},
		{
			name: "size_list",
			src:  order(pizza("1", fields("small", "thin", "veggie"))),
			msg:  "Pizza size must be personal or family.",
		},
		{
			name: "custom_type_renamed",
			src:  order(pizza("1", fields("family", "thin", "custom"))),
			msg:  "Pizza type must be build your own or veggie.",
		},
		{
			name: "area_limit",
			src:  order(pizza("1", fields("family", "thin", "build your own")+toppings("0")+toppings("1"))),
			msg:  "Up to 1 topping areas allowed.",
		},
		{
			name: "item_limit",
			src:  order(pizza("1", fields("family", "thin", "build your own")+toppings("0", "a", "b", "c"))),
			msg:  "Up to 2 toppings per area allowed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if got := v.CheckTree(root); got != tt.msg {
				t.Errorf("CheckTree() = %q, want %q", got, tt.msg)
			}
		})
	}
}
