package options

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/goliatone/go-demoform/pkg/model"
)

// Fetcher publishes the city options after a one-shot delay.
type Fetcher struct {
	delay    time.Duration
	source   []model.CityOption
	schedule Scheduler
	logger   *slog.Logger
	onLoad   func([]model.CityOption)

	start sync.Once
	done  chan struct{}

	mu      sync.RWMutex
	loading bool
	closed  bool
	loaded  bool
	options []model.CityOption
}

// New constructs an idle Fetcher. Call Start to begin the lookup.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		delay:    DefaultDelay,
		source:   DefaultCities(),
		schedule: AfterFunc,
		logger:   slog.Default(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Start enters the loading state and schedules the lookup. Only the first
// call has an effect; the scheduled completion is never cancelled.
func (f *Fetcher) Start() {
	f.start.Do(func() {
		f.mu.Lock()
		if f.closed {
			f.mu.Unlock()
			return
		}
		f.loading = true
		f.options = nil
		f.mu.Unlock()

		f.logger.Debug("city options lookup started", "delay", f.delay)
		f.schedule(f.delay, f.complete)
	})
}

func (f *Fetcher) complete() {
	f.mu.Lock()
	switch {
	case f.closed:
		f.mu.Unlock()
		f.logger.Debug("city options lookup finished after close; discarded")
		return
	case f.loaded:
		f.mu.Unlock()
		f.logger.Debug("city options already published; duplicate completion ignored")
		return
	}
	f.loading = false
	f.loaded = true
	f.options = append([]model.CityOption{}, f.source...)
	published := append([]model.CityOption{}, f.options...)
	close(f.done)
	f.mu.Unlock()

	f.logger.Debug("city options loaded", "count", len(published))
	if f.onLoad != nil {
		f.onLoad(published)
	}
}

// Loading reports whether the lookup is in flight. A renderer keeps the city
// field disabled while this is true.
func (f *Fetcher) Loading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loading
}

// Loaded reports whether the options were published.
func (f *Fetcher) Loaded() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loaded
}

// Options returns a copy of the published options, empty while loading.
func (f *Fetcher) Options() []model.CityOption {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]model.CityOption{}, f.options...)
}

// Snapshot returns the loading flag and options read together.
func (f *Fetcher) Snapshot() (loading bool, opts []model.CityOption) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loading, append([]model.CityOption{}, f.options...)
}

// Lookup finds a published option by identifier.
func (f *Fetcher) Lookup(id int) (model.CityOption, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, opt := range f.options {
		if opt.ID == id {
			return opt, true
		}
	}
	return model.CityOption{}, false
}

// Done is closed once the options are published. It never closes if the
// fetcher was closed first.
func (f *Fetcher) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the options are published or ctx ends.
func (f *Fetcher) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close disposes the fetcher. A lookup completing afterwards leaves the state
// untouched.
func (f *Fetcher) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}
