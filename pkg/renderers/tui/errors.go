package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNotSubmitted is returned when the user declines the final submit.
	ErrNotSubmitted = errors.New("tui: form not submitted")
	// ErrNoOptions is returned when a selection prompt has nothing to offer.
	ErrNoOptions = errors.New("tui: no options to select from")
)
