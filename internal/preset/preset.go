// Package preset persists snapshots of tracked slider values as JSON files.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"slider-panel/internal/host"
)

// Preset maps tracked parameter names to slider values. Insertion order is
// irrelevant; files are written with sorted keys (encoding/json's map order).
type Preset map[string]float64

// ParseError reports a preset file that is not a JSON object of numeric
// values. Load surfaces it to the user and applies nothing.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("preset file %s is not a name→value JSON object: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Capture reads the current host value of every tracked parameter. Names
// whose slider is absent from the document are omitted, not errors: a
// preset records what exists right now.
func Capture(doc host.Document, names []string) Preset {
	p := make(Preset, len(names))
	for _, name := range names {
		v, err := host.Value(doc, name)
		if err != nil {
			continue
		}
		p[name] = v
	}
	return p
}

// Encode renders the preset as pretty-printed UTF-8 JSON.
func Encode(p Preset) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode preset: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses data as a JSON object of name→number entries. The whole
// document is parsed before anything is returned, so a corrupt file can
// never be half-applied by a caller. Values are checked one by one:
// encoding/json treats null as a no-op when unmarshalling into a float64,
// which would silently turn a null entry into 0.
func Decode(path string, data []byte) (Preset, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if raw == nil {
		// A top-level "null" unmarshals into a nil map without error.
		return nil, &ParseError{Path: path, Err: errors.New("top-level value is not an object")}
	}

	p := make(Preset, len(raw))
	for name, val := range raw {
		if string(val) == "null" {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("value for %q is null, want a number", name)}
		}
		var v float64
		if err := json.Unmarshal(val, &v); err != nil {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("value for %q is not a number", name)}
		}
		p[name] = v
	}
	return p, nil
}

// Save writes the preset to path, creating parent directories as needed.
func Save(path string, p Preset) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	if err := EnsureDir(path); err != nil {
		return fmt.Errorf("create preset directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write preset file: %w", err)
	}
	return nil
}

// Load reads and parses the preset at path. I/O failures come back as
// plain errors; content failures as *ParseError.
func Load(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}
	return Decode(path, data)
}

// IsParseError reports whether err is a preset content error rather than
// an I/O one.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
