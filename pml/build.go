package pml

import (
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"strings"
)

var (
	errNoRoot        = errors.New("no root element")
	errTextAfterRoot = errors.New("character data outside the root element")
	errDuplicateAttr = errors.New("duplicate attribute")
	errUnclosed      = errors.New("unexpected end of document")
	errMismatchedTag = errors.New("mismatched end tag")
)

// Parse translates a raw PML document and builds its element tree.
func Parse(raw string) (*Element, error) {
	return Build(Translate(raw))
}

// Build parses XML text into an element tree.
//
// Only well-formedness is checked here: tags must balance, the document must
// have exactly one root element, no character data other than whitespace may
// appear outside the root, and attribute names must be unique per element.
// Every failure is reported as [ErrInvalidFormat] wrapping the cause.
// Comments, processing instructions and directives are skipped.
//
// Names are kept as written, prefix included: "x:size" is not "size".
// Namespace declarations are ordinary attributes.
func Build(translated string) (*Element, error) {
	dec := xml.NewDecoder(strings.NewReader(translated))
	dec.Strict = true

	var (
		root  *Element
		stack []*Element
	)

	for {
		// Raw tokens keep prefixes untranslated; tag balance is checked
		// against the stack below.
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, formatError(dec, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, formatError(dec, ErrOneOrderPerSubmission).
					With(slog.String("element", qualifiedName(t.Name)))
			}

			el, err := newElement(t)
			if err != nil {
				return nil, formatError(dec, err)
			}

			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}

			stack = append(stack, el)

		case xml.EndElement:
			name := qualifiedName(t.Name)
			if len(stack) == 0 || stack[len(stack)-1].Name != name {
				return nil, formatError(dec, errMismatchedTag).
					With(slog.String("element", name))
			}

			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, formatError(dec, errTextAfterRoot)
				}

				continue
			}

			// Text before the first child belongs to the element; text
			// after a child is that child's tail.
			el := stack[len(stack)-1]
			if n := len(el.Children); n > 0 {
				el.Children[n-1].Tail += string(t)
			} else {
				el.Text += string(t)
			}
		}
	}

	if len(stack) > 0 {
		return nil, formatError(dec, errUnclosed).
			With(slog.String("element", stack[len(stack)-1].Name))
	}

	if root == nil {
		return nil, ErrInvalidFormat.Wrap(errNoRoot)
	}

	return root, nil
}

// qualifiedName returns the name as written in the document, "prefix:local"
// or "local".
func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}

	return n.Space + ":" + n.Local
}

func newElement(t xml.StartElement) (*Element, error) {
	el := &Element{Name: qualifiedName(t.Name)}

	if len(t.Attr) == 0 {
		return el, nil
	}

	el.Attrs = make([]Attr, 0, len(t.Attr))
	seen := make(map[string]struct{}, len(t.Attr))

	for _, a := range t.Attr {
		name := qualifiedName(a.Name)
		if _, dup := seen[name]; dup {
			return nil, &Error{
				rule: RuleInvalidFormat,
				err:  errDuplicateAttr,
				attrs: []slog.Attr{
					slog.String("element", el.Name),
					slog.String("attribute", name),
				},
			}
		}

		seen[name] = struct{}{}

		el.Attrs = append(el.Attrs, Attr{Name: name, Value: a.Value})
	}

	return el, nil
}

// formatError wraps a decoder failure as an invalid format error annotated
// with the input position.
func formatError(dec *xml.Decoder, err error) *Error {
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return ErrInvalidFormat.Wrap(err).With(slog.Int("line", se.Line))
	}

	line, col := dec.InputPos()

	var ee *Error
	if errors.As(err, &ee) && ee.rule == RuleInvalidFormat {
		return ee.With(slog.Int("line", line), slog.Int("column", col))
	}

	return ErrInvalidFormat.Wrap(err).
		With(slog.Int("line", line), slog.Int("column", col))
}
