package host

import "math"

// MemDocument is an in-memory Document. It backs demo mode (running the
// panel without a CAD host attached) and the test suite. Everything is
// confined to the UI thread, so there is no locking.
type MemDocument struct {
	objects []Object

	softExpires int
	fullExpires int
}

// NewMemDocument creates an empty in-memory document.
func NewMemDocument() *MemDocument {
	return &MemDocument{}
}

// Add appends an object to the document and returns the document for
// chained construction.
func (d *MemDocument) Add(obj Object) *MemDocument {
	d.objects = append(d.objects, obj)
	return d
}

// Objects enumerates the document's objects in insertion order.
func (d *MemDocument) Objects() []Object {
	return d.objects
}

// Expire records the recompute request. A real host would schedule a solve;
// the in-memory document only counts them so callers' batching is testable.
func (d *MemDocument) Expire(mode ExpireMode) {
	if mode == ExpireFull {
		d.fullExpires++
		return
	}
	d.softExpires++
}

// ExpireCount returns how many soft and full recomputes have been requested.
func (d *MemDocument) ExpireCount() (soft, full int) {
	return d.softExpires, d.fullExpires
}

// MemSlider is an in-memory Slider. Writes are rounded to the declared
// decimal precision, mirroring what the host slider does to pushed values.
type MemSlider struct {
	name     string
	min, max float64
	value    float64
	decimals int

	writes int
}

// NewMemSlider creates a slider with the given nickname, bounds, initial
// value and decimal precision.
func NewMemSlider(name string, min, max, value float64, decimals int) *MemSlider {
	s := &MemSlider{name: name, min: min, max: max, decimals: decimals}
	s.value = s.round(value)
	return s
}

func (s *MemSlider) Nickname() string { return s.name }

func (s *MemSlider) Minimum() float64 { return s.min }

func (s *MemSlider) Maximum() float64 { return s.max }

func (s *MemSlider) Value() float64 { return s.value }

func (s *MemSlider) DecimalPlaces() int { return s.decimals }

// SetDecimalPlaces changes the slider's precision, as a host-side user can
// between panel sessions. Negative values are clamped to zero.
func (s *MemSlider) SetDecimalPlaces(d int) {
	if d < 0 {
		d = 0
	}
	s.decimals = d
	s.value = s.round(s.value)
}

// SetValue stores v rounded to the slider's precision.
func (s *MemSlider) SetValue(v float64) {
	s.value = s.round(v)
	s.writes++
}

// WriteCount returns how many times SetValue has been called. Used to
// verify that programmatic batch updates do not echo back into the host.
func (s *MemSlider) WriteCount() int {
	return s.writes
}

func (s *MemSlider) round(v float64) float64 {
	factor := math.Pow10(s.decimals)
	return math.Round(v*factor) / factor
}
