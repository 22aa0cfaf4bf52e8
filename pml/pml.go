package pml

import (
	"context"
	"log/slog"

	"github.com/ardnew/pml/log"
)

// Processor runs the full pipeline: translate, build, validate, render.
// It holds only read-only state and is safe for concurrent use.
type Processor struct {
	catalog   *Catalog
	validator *Validator
	renderer  *Renderer
	logger    log.Logger // zero value discards everything
}

// Option configures a [Processor].
type Option func(*Processor)

// WithCatalog sets the menu catalog. A nil catalog keeps the default.
func WithCatalog(c *Catalog) Option {
	return func(p *Processor) {
		if c != nil {
			p.catalog = c
		}
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor returns a processor configured by opts.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{catalog: DefaultCatalog()}

	for _, opt := range opts {
		opt(p)
	}

	p.validator = NewValidator(p.catalog)
	p.renderer = NewRenderer(p.catalog)

	return p
}

// Catalog returns the catalog used by the processor.
func (p *Processor) Catalog() *Catalog { return p.catalog }

// Validate parses and validates a raw PML order. The error, if any, is an
// *Error for the first violated rule; a structural failure short-circuits
// every semantic rule.
func (p *Processor) Validate(ctx context.Context, raw string) (*Element, error) {
	p.logger.TraceContext(ctx, "translate", slog.Int("source_bytes", len(raw)))

	root, err := Parse(raw)
	if err != nil {
		p.logger.DebugContext(ctx, "parse failed", slog.Any("error", err))

		return nil, p.message(err)
	}

	p.logger.TraceContext(ctx, "tree built", slog.String("root", root.Name))

	if err := p.validator.Validate(root); err != nil {
		p.logger.DebugContext(ctx, "order rejected", slog.Any("error", err))

		return nil, err
	}

	p.logger.TraceContext(ctx, "order valid")

	return root, nil
}

// Process validates a raw PML order and renders it.
func (p *Processor) Process(ctx context.Context, raw string) (*Order, error) {
	root, err := p.Validate(ctx, raw)
	if err != nil {
		return nil, err
	}

	order := p.renderer.Render(root)

	p.logger.TraceContext(ctx, "order rendered",
		slog.String("order", order.Number),
		slog.Int("pizzas", len(order.Pizzas)),
	)

	return order, nil
}

// Check returns [Valid] or the user-facing message of the first violated rule.
func (p *Processor) Check(ctx context.Context, raw string) string {
	if _, err := p.Validate(ctx, raw); err != nil {
		return WrapError(err).Message()
	}

	return Valid
}

// message applies the catalog's message to a builder error.
func (p *Processor) message(err error) *Error {
	ee := WrapError(err)

	return ee.withMessage(p.catalog.Message(ee.rule))
}

// defaultProcessor backs the package-level functions.
var defaultProcessor = NewProcessor()

// Check validates a raw PML order with the default catalog and returns
// [Valid] or the message of the first violated rule.
func Check(raw string) string {
	return defaultProcessor.Check(context.Background(), raw)
}

// Process validates and renders a raw PML order with the default catalog.
func Process(ctx context.Context, raw string) (*Order, error) {
	return defaultProcessor.Process(ctx, raw)
}
