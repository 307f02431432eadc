package options

import (
	"log/slog"
	"time"

	"github.com/goliatone/go-demoform/pkg/model"
)

// DefaultDelay is how long the simulated lookup takes.
const DefaultDelay = 1000 * time.Millisecond

// DefaultCities returns the static list the lookup resolves to.
func DefaultCities() []model.CityOption {
	return []model.CityOption{
		{ID: 1, Label: "Warsaw"},
		{ID: 2, Label: "Berlin"},
		{ID: 3, Label: "London"},
		{ID: 4, Label: "Paris"},
	}
}

// Scheduler runs fn once after d. It must not run fn synchronously.
type Scheduler func(d time.Duration, fn func())

// AfterFunc schedules fn on a runtime timer.
func AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithDelay overrides the simulated lookup delay. Negative values are
// ignored.
func WithDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		if d >= 0 {
			f.delay = d
		}
	}
}

// WithCities overrides the options published when the lookup completes.
func WithCities(cities []model.CityOption) Option {
	return func(f *Fetcher) {
		if len(cities) > 0 {
			f.source = append([]model.CityOption{}, cities...)
		}
	}
}

// WithScheduler swaps the timer primitive, mainly for tests.
func WithScheduler(s Scheduler) Option {
	return func(f *Fetcher) {
		if s != nil {
			f.schedule = s
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithOnLoad registers a callback invoked once with the published options.
// It runs on the scheduler goroutine after the state is updated.
func WithOnLoad(fn func([]model.CityOption)) Option {
	return func(f *Fetcher) {
		f.onLoad = fn
	}
}
