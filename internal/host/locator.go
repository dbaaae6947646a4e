package host

// FindSlider scans the document for a slider whose nickname equals name.
// The scan is linear; at panel scale (dozens of objects) that is fine.
// If several sliders share the name the first match wins — duplicate names
// are a document configuration error this package does not detect.
func FindSlider(doc Document, name string) (Slider, error) {
	for _, obj := range doc.Objects() {
		s, ok := obj.(Slider)
		if !ok {
			continue
		}
		if s.Nickname() == name {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

// Value returns the current value of the named slider.
func Value(doc Document, name string) (float64, error) {
	s, err := FindSlider(doc, name)
	if err != nil {
		return 0, err
	}
	return s.Value(), nil
}

// SetValue writes v to the named slider, clamping it into the slider's
// [minimum, maximum] range first, and returns the value actually applied.
// It does not expire the document; callers batch their own Expire so that
// a preset load issues one recompute instead of one per parameter.
func SetValue(doc Document, name string, v float64) (float64, error) {
	s, err := FindSlider(doc, name)
	if err != nil {
		return 0, err
	}
	applied := Clamp(v, s.Minimum(), s.Maximum())
	s.SetValue(applied)
	return applied, nil
}

// Clamp bounds v into [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
