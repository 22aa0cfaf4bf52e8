package pml

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain_text", "pepperoni", "pepperoni"},
		{"open_tag", `{size}`, `<size>`},
		{"close_tag", `{\size}`, `</size>`},
		{"attribute", `{order number="1"}`, `<order number="1">`},
		{"leaf", `{item}extra cheese{\item}`, `<item>extra cheese</item>`},
		{"stray_backslash", `a\b`, `a/b`},
		{"angle_brackets_untouched", `<{x}>`, `<<x>>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.in); got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Tree(t *testing.T) {
	root, err := Parse(`{order number="12" note="x"}
  {pizza number="1"}{size} small {\size}{\pizza}
{\order}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := &Element{
		Name:  "order",
		Attrs: []Attr{{Name: "number", Value: "12"}, {Name: "note", Value: "x"}},
		Text:  "\n  ",
		Children: []*Element{{
			Name:  "pizza",
			Attrs: []Attr{{Name: "number", Value: "1"}},
			Tail:  "\n",
			Children: []*Element{{
				Name: "size",
				Text: " small ",
			}},
		}},
	}

	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		src  string
		also *Error // additional sentinel the error must match
	}{
		{name: "empty", src: ""},
		{name: "whitespace", src: "  \n\t "},
		{name: "text_only", src: "pepperoni"},
		{name: "unclosed", src: `{order number="1"}`},
		{name: "mismatched", src: `{order number="1"}{pizza}{\order}{\pizza}`},
		{name: "unquoted_attribute", src: `{order number=1}{\order}`},
		{name: "bare_ampersand", src: `{order number="1"}{item}salt & pepper{\item}{\order}`},
		{name: "text_after_root", src: `{order number="1"}{\order}extra`},
		{name: "duplicate_attribute", src: `{order number="1" number="2"}{\order}`},
		{
			name: "two_roots",
			src:  `{order number="1"}{\order}{order number="2"}{\order}`,
			also: ErrOneOrderPerSubmission,
		},
		{name: "brace_in_text", src: `{order number="1"}{item}1{2{\item}{\order}`},
		{name: "prefix_mismatch", src: `{order number="1"}{x:size}small{\size}{\order}`},
		{name: "stray_end_tag", src: `{order number="1"}{\order}{\pizza}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse() = %+v, want error", root)
			}

			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Parse() error = %v, want invalid-format", err)
			}

			if tt.also != nil && !errors.Is(err, tt.also) {
				t.Errorf("Parse() error = %v, want also %v", err, tt.also.Rule())
			}

			if got := WrapError(err).Rule(); got != RuleInvalidFormat {
				t.Errorf("WrapError().Rule() = %v, want %v", got, RuleInvalidFormat)
			}

			if errors.Is(err, ErrNoOrder) {
				t.Errorf("Parse() error = %v matches a semantic rule", err)
			}
		})
	}
}

func TestParse_SkipsCommentsAndProlog(t *testing.T) {
	root, err := Build(`<?xml version="1.0"?><!-- menu --><order number="1"><!-- note --></order>`)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if root.Name != "order" || len(root.Children) != 0 {
		t.Errorf("Build() = %+v, want bare order", root)
	}
}

func TestParse_MixedText(t *testing.T) {
	root, err := Parse(`{order number="1"}stray{pizza number="1"}{type}cus{b}{\b}tom{\type}{\pizza}text{\order}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if root.Text != "stray" {
		t.Errorf("order Text = %q, want %q", root.Text, "stray")
	}

	pizza, _ := root.First("pizza")
	if pizza.Tail != "text" {
		t.Errorf("pizza Tail = %q, want %q", pizza.Tail, "text")
	}

	typ, _ := root.First("type")
	if got := typ.TextContent(); got != "custom" {
		t.Errorf("type TextContent() = %q, want %q", got, "custom")
	}

	if got := pizza.TextContent(); got != "custom" {
		t.Errorf("pizza TextContent() = %q, want %q", got, "custom")
	}

	if got := root.TextContent(); got != "straycustomtext" {
		t.Errorf("order TextContent() = %q, want %q", got, "straycustomtext")
	}
}

func TestParse_QualifiedNames(t *testing.T) {
	root, err := Parse(`{order number="1" x:number="9"}{x:size}small{\x:size}{\order}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := root.Find("size"); got != nil {
		t.Errorf("Find(size) matched %d prefixed elements", len(got))
	}

	if got := root.Find("x:size"); len(got) != 1 || got[0].Text != "small" {
		t.Errorf("Find(x:size) = %v, want one element", got)
	}

	if v, _ := root.Attr("number"); v != "1" {
		t.Errorf("Attr(number) = %q, want 1", v)
	}

	if v, _ := root.Attr("x:number"); v != "9" {
		t.Errorf("Attr(x:number) = %q, want 9", v)
	}
}

func TestElement_Queries(t *testing.T) {
	root, err := Parse(`{order number="1"}
{pizza number="1"}{type}custom{\type}{toppings area="0"}{item}a{\item}{item}b{\item}{\toppings}{\pizza}
{pizza number="2"}{type}Hawaiian{\type}{\pizza}
{\order}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	t.Run("find_descendants", func(t *testing.T) {
		items := root.Find("item")
		if len(items) != 2 {
			t.Fatalf("Find(item) = %d elements, want 2", len(items))
		}

		if items[0].Text != "a" || items[1].Text != "b" {
			t.Errorf("Find(item) = %q, %q; want a, b", items[0].Text, items[1].Text)
		}

		if got := len(root.Find("type")); got != 2 {
			t.Errorf("Find(type) = %d elements, want 2", got)
		}

		if got := root.Find("order"); got != nil {
			t.Errorf("Find excludes self; got %d elements", len(got))
		}
	})

	t.Run("first_includes_self", func(t *testing.T) {
		el, ok := root.First("order")
		if !ok || el != root {
			t.Errorf("First(order) = %v, %v; want root", el, ok)
		}

		el, ok = root.First("toppings")
		if !ok {
			t.Fatal("First(toppings) not found")
		}

		if area, _ := el.Attr("area"); area != "0" {
			t.Errorf("area = %q, want 0", area)
		}

		if _, ok := root.First("crust"); ok {
			t.Error("First(crust) found a missing element")
		}
	})

	t.Run("all_document_order", func(t *testing.T) {
		var names []string
		for el := range root.All() {
			names = append(names, el.Name)
		}

		want := []string{"pizza", "type", "toppings", "item", "item", "pizza", "type"}
		if !slices.Equal(names, want) {
			t.Errorf("All() = %v, want %v", names, want)
		}
	})

	t.Run("all_stops_early", func(t *testing.T) {
		n := 0
		for range root.All() {
			n++
			if n == 3 {
				break
			}
		}

		if n != 3 {
			t.Errorf("iterated %d elements, want 3", n)
		}
	})

	t.Run("text_content", func(t *testing.T) {
		pizza, _ := root.First("pizza")
		if got := pizza.TextContent(); got != "customab" {
			t.Errorf("TextContent() = %q, want %q", got, "customab")
		}
	})

	t.Run("nil_element", func(t *testing.T) {
		var el *Element

		if _, ok := el.Attr("number"); ok {
			t.Error("nil Attr reported found")
		}

		if _, ok := el.First("order"); ok {
			t.Error("nil First reported found")
		}

		if el.TextContent() != "" || el.Find("x") != nil {
			t.Error("nil element returned content")
		}
	})
}
