// Package options simulates the asynchronous lookup of city options. A
// Fetcher starts in the loading state, waits a fixed delay and then publishes
// a static option list exactly once. Readers observe the loading flag and the
// options together, so a renderer never sees a half-populated list.
package options
