package host

import "errors"

// ErrNotFound is returned when a named slider is absent from the document.
// Callers are expected to skip the parameter silently rather than abort.
var ErrNotFound = errors.New("slider not found")

// ExpireMode selects how much of the document graph a recompute request
// should cover.
type ExpireMode int

const (
	// ExpireSoft re-evaluates only objects downstream of the change.
	ExpireSoft ExpireMode = iota
	// ExpireFull re-evaluates the whole document.
	ExpireFull
)

// Object is any named object in the host document.
type Object interface {
	// Nickname returns the object's user-visible label. Matching against
	// tracked parameter names is exact and case-sensitive.
	Nickname() string
}

// Slider is a numeric slider object: a bounded real value with a fixed
// decimal precision.
type Slider interface {
	Object

	Minimum() float64
	Maximum() float64
	Value() float64
	// SetValue writes a new value. The host may round it to the slider's
	// declared precision; it does not clamp, that is the locator's job.
	SetValue(v float64)
	// DecimalPlaces returns the slider's precision (digits after the
	// decimal point, never negative).
	DecimalPlaces() int
}

// Document is the live graph of host objects the panel mirrors. It is owned
// by the host application; this package only reads and writes through it.
type Document interface {
	// Objects enumerates every object in the document, sliders included.
	Objects() []Object
	// Expire schedules a host recomputation of the graph. Writers decide
	// when to call it so that a batch of N writes can share one request.
	Expire(mode ExpireMode)
}
