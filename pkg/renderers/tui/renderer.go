package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-demoform/pkg/form"
	"github.com/goliatone/go-demoform/pkg/model"
)

// OptionSource supplies the city options asynchronously.
type OptionSource interface {
	Start()
	Loading() bool
	Options() []model.CityOption
	Wait(ctx context.Context) error
}

// Renderer drives a form session in the terminal: it prompts every field in
// order, feeds the answers into the controller as change/blur events and
// shows the controller's display errors.
type Renderer struct {
	driver        PromptDriver
	logger        *slog.Logger
	theme         Theme
	confirmSubmit bool
}

// New constructs a TUI renderer with defaults (survey driver on stdout).
func New(options ...Option) *Renderer {
	r := &Renderer{
		logger:        slog.Default(),
		confirmSubmit: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// Run starts the option lookup, prompts each field until the controller
// reports no display error for it and finally submits. Fields other than
// city are prompted while the lookup is still in flight.
func (r *Renderer) Run(ctx context.Context, ctrl *form.Controller, source OptionSource) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if ctrl == nil {
		return errors.New("tui: controller is nil")
	}
	if source == nil {
		return errors.New("tui: option source is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	source.Start()

	for _, field := range model.DemoFields() {
		if err := r.promptField(ctx, ctrl, source, field); err != nil {
			return err
		}
	}

	if !ctrl.CanSubmit() {
		// every field was re-prompted until clean, so this only happens with
		// a schema that constrains more than the prompted fields
		return form.ErrInvalid
	}

	if r.confirmSubmit {
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Submit?", Default: true})
		if err != nil {
			return err
		}
		if !ok {
			r.info(ctx, "Form not submitted.")
			return ErrNotSubmitted
		}
	}
	return ctrl.Submit(ctx)
}

func (r *Renderer) promptField(ctx context.Context, ctrl *form.Controller, source OptionSource, field model.Field) error {
	for {
		var err error
		switch field.Kind {
		case model.FieldKindSelection:
			err = r.promptCities(ctx, ctrl, source, field)
		case model.FieldKindChoice:
			err = r.promptChoice(ctx, ctrl, field)
		default:
			err = r.promptText(ctx, ctrl, field)
		}
		if err != nil {
			return err
		}

		msg, failed := ctrl.DisplayError(field.Name)
		if !failed {
			return nil
		}
		r.logger.Debug("field rejected", "field", field.Name, "error", msg)
		r.warn(ctx, fmt.Sprintf("%s: %s", field.Label, msg))
	}
}

func (r *Renderer) promptText(ctx context.Context, ctrl *form.Controller, field model.Field) error {
	current, _ := ctrl.Values().Get(field.Name)
	def, _ := current.(string)

	resp, err := r.driver.Input(ctx, InputConfig{
		Message: field.Label,
		Default: def,
	})
	if err != nil {
		return err
	}
	if err := ctrl.Change(field.Name, resp); err != nil {
		return err
	}
	return ctrl.Blur(field.Name)
}

func (r *Renderer) promptCities(ctx context.Context, ctrl *form.Controller, source OptionSource, field model.Field) error {
	if source.Loading() {
		r.info(ctx, fmt.Sprintf("Loading %s options...", field.Label))
		if err := source.Wait(ctx); err != nil {
			return fmt.Errorf("tui: waiting for %s options: %w", field.Name, err)
		}
	}

	available := source.Options()
	labels := make([]string, len(available))
	for i, opt := range available {
		labels[i] = opt.Label
	}

	current := ctrl.Values().City
	var defaults []int
	for i, opt := range available {
		for _, selected := range current {
			if opt.Equal(selected) {
				defaults = append(defaults, i)
			}
		}
	}

	indices, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  field.Label,
		Options:  labels,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}

	selected := make([]model.CityOption, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(available) {
			selected = append(selected, available[idx])
		}
	}
	return ctrl.Change(field.Name, selected)
}

func (r *Renderer) promptChoice(ctx context.Context, ctrl *form.Controller, field model.Field) error {
	labels := make([]string, len(field.Choices))
	defaultIdx := -1
	current, _ := ctrl.Values().Get(field.Name)
	for i, choice := range field.Choices {
		labels[i] = choice.Label
		if choice.Value == current {
			defaultIdx = i
		}
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      labels,
			DefaultIndex: defaultIdx,
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(field.Choices) {
			return ctrl.Change(field.Name, field.Choices[idx].Value)
		}
		r.warn(ctx, fmt.Sprintf("Invalid %s selection", field.Name))
	}
}

func (r *Renderer) info(ctx context.Context, msg string) {
	_ = r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Renderer) warn(ctx context.Context, msg string) {
	_ = r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
}
