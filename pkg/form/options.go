package form

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-demoform/pkg/model"
	"github.com/goliatone/go-demoform/pkg/validation"
)

// SubmitHandler receives the values snapshot of a valid submit.
type SubmitHandler func(ctx context.Context, values model.Values) error

// Option configures a Controller.
type Option func(*Controller)

// WithSchema replaces the default validation schema.
func WithSchema(schema validation.Schema) Option {
	return func(c *Controller) {
		c.schema = schema.Clone()
	}
}

// WithSubmitHandler sets the sink invoked on a valid submit.
func WithSubmitHandler(fn SubmitHandler) Option {
	return func(c *Controller) {
		if fn != nil {
			c.onSubmit = fn
		}
	}
}

// WithInitialValues seeds the values a fresh or reset controller starts
// from.
func WithInitialValues(values model.Values) Option {
	return func(c *Controller) {
		c.initial = values.Clone()
	}
}

// WithLogger sets the logger used for submit and reset events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}
