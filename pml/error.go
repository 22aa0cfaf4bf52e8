package pml

import (
	"errors"
	"log/slog"
	"strings"
)

// Rule identifies a single check of the order validation checklist.
// Every rule has a distinct user-facing message (see [Catalog.Message]).
type Rule int

const (
	RuleInvalidFormat         Rule = iota // invalid-format
	RuleNoOrder                           // no-order
	RuleOneOrderPerSubmission             // one-order-per-submission
	RuleNoOrderNumber                     // no-order-number
	RulePizzaNumberOrder                  // pizza-number-order
	RuleNoSize                            // no-size
	RuleOneSizePerPizza                   // one-size-per-pizza
	RuleInvalidSize                       // invalid-size
	RuleNoCrust                           // no-crust
	RuleOneCrustPerPizza                  // one-crust-per-pizza
	RuleInvalidCrust                      // invalid-crust
	RuleNoType                            // no-type
	RuleOneTypePerPizza                   // one-type-per-pizza
	RuleInvalidType                       // invalid-type
	RuleToppingsNotAllowed                // toppings-not-allowed
	RuleMaxToppingAreas                   // max-topping-areas
	RuleMaxToppingItems                   // max-topping-items
	RuleInvalidToppingArea                // invalid-topping-area
)

var ruleName = [...]string{
	RuleInvalidFormat:         "invalid-format",
	RuleNoOrder:               "no-order",
	RuleOneOrderPerSubmission: "one-order-per-submission",
	RuleNoOrderNumber:         "no-order-number",
	RulePizzaNumberOrder:      "pizza-number-order",
	RuleNoSize:                "no-size",
	RuleOneSizePerPizza:       "one-size-per-pizza",
	RuleInvalidSize:           "invalid-size",
	RuleNoCrust:               "no-crust",
	RuleOneCrustPerPizza:      "one-crust-per-pizza",
	RuleInvalidCrust:          "invalid-crust",
	RuleNoType:                "no-type",
	RuleOneTypePerPizza:       "one-type-per-pizza",
	RuleInvalidType:           "invalid-type",
	RuleToppingsNotAllowed:    "toppings-not-allowed",
	RuleMaxToppingAreas:       "max-topping-areas",
	RuleMaxToppingItems:       "max-topping-items",
	RuleInvalidToppingArea:    "invalid-topping-area",
}

// String returns the kebab-case identifier of the rule.
func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleName) {
		return "unknown"
	}

	return ruleName[r]
}

// Predefined errors (sentinel values), one per rule.
// Use errors.Is to test an error returned by this package against them;
// matching compares rules only, not messages or attributes.
var (
	ErrInvalidFormat         = newRuleError(RuleInvalidFormat)
	ErrNoOrder               = newRuleError(RuleNoOrder)
	ErrOneOrderPerSubmission = newRuleError(RuleOneOrderPerSubmission)
	ErrNoOrderNumber         = newRuleError(RuleNoOrderNumber)
	ErrPizzaNumberOrder      = newRuleError(RulePizzaNumberOrder)
	ErrNoSize                = newRuleError(RuleNoSize)
	ErrOneSizePerPizza       = newRuleError(RuleOneSizePerPizza)
	ErrInvalidSize           = newRuleError(RuleInvalidSize)
	ErrNoCrust               = newRuleError(RuleNoCrust)
	ErrOneCrustPerPizza      = newRuleError(RuleOneCrustPerPizza)
	ErrInvalidCrust          = newRuleError(RuleInvalidCrust)
	ErrNoType                = newRuleError(RuleNoType)
	ErrOneTypePerPizza       = newRuleError(RuleOneTypePerPizza)
	ErrInvalidType           = newRuleError(RuleInvalidType)
	ErrToppingsNotAllowed    = newRuleError(RuleToppingsNotAllowed)
	ErrMaxToppingAreas       = newRuleError(RuleMaxToppingAreas)
	ErrMaxToppingItems       = newRuleError(RuleMaxToppingItems)
	ErrInvalidToppingArea    = newRuleError(RuleInvalidToppingArea)
)

// Error represents a rule violation with optional structured logging
// attributes. It implements both error and slog.LogValuer interfaces.
type Error struct {
	rule  Rule
	msg   string      // User-facing message; empty uses the default catalog
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

func newRuleError(rule Rule) *Error {
	return &Error{rule: rule}
}

// WrapError wraps a standard error into an Error.
// Errors that already are (or wrap) an *Error are returned unchanged.
// Anything else is reported as an invalid format.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return ErrInvalidFormat.Wrap(err)
}

// Rule returns the rule that was violated.
func (e *Error) Rule() Rule { return e.rule }

// Message returns the user-facing message without any wrapped cause.
func (e *Error) Message() string {
	if e.msg != "" {
		return e.msg
	}

	return DefaultCatalog().Message(e.rule)
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format:
	//
	//   1. "<msg>: <err>" // wrapped error is set
	//   2. "<msg>"        // wrapped error is nil
	part := make([]string, 0, 2)
	part = append(part, e.Message())

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error for the same rule.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.rule == e.rule
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)
	attrs = append(attrs,
		slog.String("rule", e.rule.String()),
		slog.String("error", e.Message()),
	)

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Attrs returns a copy of the structured logging attributes.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		rule:  e.rule,
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		rule:  e.rule,
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// withMessage returns a copy of e carrying the given user-facing message.
func (e *Error) withMessage(msg string) *Error {
	return &Error{
		rule:  e.rule,
		msg:   msg,
		err:   e.err,
		attrs: e.attrs,
	}
}
