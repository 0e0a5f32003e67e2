package iw

import "github.com/jackft/iw/event"

// Events groups the typed streams the renderer publishes for the
// controller and UI layers to consume. One stream per event kind; no
// string-keyed dispatch.
type Events struct {
	// An entity was selected, by id.
	Selected event.Stream[int]

	// A previously selected entity was deselected, by id.
	Deselected event.Stream[int]

	// Fired exactly once, after the first render call has completed.
	Initialized event.Stream[struct{}]
}
