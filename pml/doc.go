// Package pml validates and renders pizza orders written in PML, a
// bracket-tag markup dialect.
//
// # Syntax
//
// PML is XML with different delimiters: "{" and "}" open and close a tag and
// a backslash starts an end tag.
//
//	{order number="123"}
//	  {pizza number="1"}
//	    {size}large{\size}
//	    {crust}hand-tossed{\crust}
//	    {type}custom{\type}
//	    {toppings area="0"}
//	      {item}pepperoni{\item}
//	      {item}extra cheese{\item}
//	    {\toppings}
//	  {\pizza}
//	  {pizza number="2"}
//	    {size}medium{\size}
//	    {crust}deep dish{\crust}
//	    {type}pepperoni feast{\type}
//	  {\pizza}
//	{\order}
//
// # Pipeline
//
// A document goes through four stages, each usable on its own:
//
//   - [Translate] rewrites PML delimiters into XML.
//   - [Build] parses the XML into an [Element] tree ([Parse] does both).
//   - [Validator.Validate] applies the order rules and stops at the first
//     violation.
//   - [Renderer.Render] turns a valid tree into an [Order], which can be
//     written as text, HTML, JSON or YAML.
//
// [Processor] chains the stages; [Check] and [Process] use a processor with
// the [DefaultCatalog].
//
// # Rules
//
// The order must carry a number. Pizzas are numbered 1, 2, 3... in document
// order. Every pizza has exactly one size, crust and type, each from the
// catalog (compared without regard to case). Only custom pizzas may have
// toppings, in at most 3 areas with at most 12 items each; the area attribute
// is 0 (whole), 1 (first half) or 2 (second half).
//
// Violations are reported as *[Error] values that match the sentinel of their
// rule with errors.Is:
//
//	_, err := pml.Process(ctx, src)
//	if errors.Is(err, pml.ErrInvalidSize) {
//		...
//	}
//
// # Limitations
//
// PML has no escape syntax. A literal brace or backslash in item text is
// translated like a delimiter.
package pml
