package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-demoform/pkg/model"
	"github.com/goliatone/go-demoform/pkg/validation"
)

// Controller holds the form session state.
type Controller struct {
	schema   validation.Schema
	onSubmit SubmitHandler
	logger   *slog.Logger
	initial  model.Values

	values  model.Values
	touched model.TouchedSet
	errors  validation.ErrorMap
}

// New constructs a Controller and validates the initial values right away,
// so validity is known before any interaction.
func New(opts ...Option) *Controller {
	c := &Controller{
		schema:   validation.DefaultSchema(),
		onSubmit: discardSubmit,
		logger:   slog.Default(),
		initial:  model.InitialValues(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.Reset()
	return c
}

func discardSubmit(context.Context, model.Values) error { return nil }

// SetFieldValue stores value and revalidates. It does not touch the field.
// Text fields accept any string; malformed numbers surface as validation
// issues, not errors.
func (c *Controller) SetFieldValue(field model.FieldName, value any) error {
	if _, ok := model.LookupField(field); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if err := c.values.Set(field, value); err != nil {
		return fmt.Errorf("%w: %v", ErrValueType, err)
	}
	c.validate()
	return nil
}

// SetFieldTouched marks field as interacted with. Repeated calls are no-ops.
func (c *Controller) SetFieldTouched(field model.FieldName) error {
	if _, ok := model.LookupField(field); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if c.touched.Add(field) {
		c.logger.Debug("field touched", "field", field)
	}
	return nil
}

// Change applies a widget change event. Selection and choice fields are
// touched before the value is stored; text fields wait for Blur.
func (c *Controller) Change(field model.FieldName, value any) error {
	def, ok := model.LookupField(field)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if def.Kind.TouchOnChange() {
		if err := c.SetFieldTouched(field); err != nil {
			return err
		}
	}
	return c.SetFieldValue(field, value)
}

// Blur applies a widget blur event, touching the field.
func (c *Controller) Blur(field model.FieldName) error {
	return c.SetFieldTouched(field)
}

// DisplayError returns the field error only once the field is touched.
func (c *Controller) DisplayError(field model.FieldName) (string, bool) {
	if !c.touched.Has(field) {
		return "", false
	}
	return c.errors.Message(field)
}

// Errors returns a copy of the full error map, touched or not.
func (c *Controller) Errors() validation.ErrorMap {
	return c.errors.Clone()
}

// Touched reports whether field was interacted with.
func (c *Controller) Touched(field model.FieldName) bool {
	return c.touched.Has(field)
}

// TouchedFields lists touched fields in declaration order.
func (c *Controller) TouchedFields() []model.FieldName {
	return c.touched.Fields()
}

// Values returns a snapshot of the current values.
func (c *Controller) Values() model.Values {
	return c.values.Clone()
}

// IsValid reports whether no field has an issue, regardless of touch state.
func (c *Controller) IsValid() bool {
	return c.errors.Valid()
}

// CanSubmit reports whether the submit control is enabled.
func (c *Controller) CanSubmit() bool {
	return c.IsValid()
}

// Submit hands a snapshot of the values to the submit handler. When the
// form is invalid nothing is submitted and ErrInvalid is returned. Every
// valid call submits again.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.IsValid() {
		c.logger.Debug("submit blocked", "errors", len(c.errors))
		return ErrInvalid
	}
	snapshot := c.values.Clone()
	if err := c.onSubmit(ctx, snapshot); err != nil {
		return fmt.Errorf("form: submit handler: %w", err)
	}
	c.logger.Debug("form submitted")
	return nil
}

// Reset restores the initial values, clears the touched set and
// revalidates.
func (c *Controller) Reset() {
	c.values = c.initial.Clone()
	c.touched = make(model.TouchedSet)
	c.validate()
}

func (c *Controller) validate() {
	c.errors = c.schema.Validate(c.values)
}
