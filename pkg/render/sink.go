package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/goliatone/go-demoform/pkg/form"
	"github.com/goliatone/go-demoform/pkg/model"
)

// LogSink reports submitted values as a structured log record.
func LogSink(logger *slog.Logger) form.SubmitHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, values model.Values) error {
		logger.LogAttrs(ctx, slog.LevelInfo, "form submitted",
			slog.String("name", values.Name),
			slog.String("surname", values.Surname),
			slog.String("age", values.Age),
			slog.Any("city", values.City),
			slog.String("gender", values.Gender),
		)
		return nil
	}
}

// WriterSink serializes submitted values to w, one payload per submit
// followed by a newline for JSON and form output.
func WriterSink(w io.Writer, format OutputFormat) form.SubmitHandler {
	var mu sync.Mutex
	return func(_ context.Context, values model.Values) error {
		if w == nil {
			return errors.New("render: writer sink has no writer")
		}
		payload, err := Serialize(values, format)
		if err != nil {
			return err
		}
		if format != OutputFormatPrettyText {
			payload = append(payload, '\n')
		}

		mu.Lock()
		defer mu.Unlock()
		if _, err := w.Write(payload); err != nil {
			return fmt.Errorf("render: write submission: %w", err)
		}
		return nil
	}
}

// MultiSink fans a submit out to every sink in order, stopping at the first
// error.
func MultiSink(sinks ...form.SubmitHandler) form.SubmitHandler {
	return func(ctx context.Context, values model.Values) error {
		for _, sink := range sinks {
			if sink == nil {
				continue
			}
			if err := sink(ctx, values.Clone()); err != nil {
				return err
			}
		}
		return nil
	}
}
