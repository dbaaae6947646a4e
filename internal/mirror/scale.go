package mirror

import (
	"math"
	"strconv"

	"slider-panel/internal/host"
)

// Scale converts between a host slider's real value and the scaled integer
// steps a GUI slider works in. A Scale is captured from the slider's current
// decimal precision at the start of a build or sync pass and discarded at the
// end of it; the next pass re-derives it, so a precision change on the host
// side is picked up the next time the panel touches the slider.
type Scale struct {
	decimals int
	factor   float64
}

// ScaleFor captures the scale of a slider's current precision.
func ScaleFor(s host.Slider) Scale {
	return ScaleForDecimals(s.DecimalPlaces())
}

// ScaleForDecimals returns the scale for a given decimal count. Negative
// counts are treated as zero (integer sliders).
func ScaleForDecimals(decimals int) Scale {
	if decimals < 0 {
		decimals = 0
	}
	return Scale{decimals: decimals, factor: math.Pow10(decimals)}
}

// Decimals returns the captured decimal count.
func (sc Scale) Decimals() int {
	return sc.decimals
}

// Steps converts a real value to scaled integer steps.
func (sc Scale) Steps(v float64) int {
	return int(math.Round(v * sc.factor))
}

// Value converts scaled integer steps back to a real value.
func (sc Scale) Value(steps int) float64 {
	return float64(steps) / sc.factor
}

// Format renders a real value with the captured decimal count, for the
// row's readout label.
func (sc Scale) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', sc.decimals, 64)
}
