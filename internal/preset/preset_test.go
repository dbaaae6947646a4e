package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"slider-panel/internal/host"
)

func testDoc() *host.MemDocument {
	doc := host.NewMemDocument()
	doc.Add(host.NewMemSlider("topCircleX", 0, 10, 3.2, 2))
	doc.Add(host.NewMemSlider("topCircleY", -10, 10, 8.0, 1))
	doc.Add(host.NewMemSlider("topCircleR", 0.5, 2, 1.5, 2))
	return doc
}

var tracked = []string{"topCircleX", "topCircleY", "topCircleR"}

func TestCapture(t *testing.T) {
	p := Capture(testDoc(), tracked)

	want := Preset{"topCircleX": 3.2, "topCircleY": 8.0, "topCircleR": 1.5}
	if len(p) != len(want) {
		t.Fatalf("Capture() = %v, want %v", p, want)
	}
	for name, v := range want {
		if p[name] != v {
			t.Errorf("Capture()[%q] = %v, want %v", name, p[name], v)
		}
	}
}

func TestCapture_SkipsMissingSliders(t *testing.T) {
	p := Capture(testDoc(), []string{"topCircleX", "ghost"})

	if _, ok := p["ghost"]; ok {
		t.Error("missing slider should be omitted from the preset")
	}
	if len(p) != 1 {
		t.Errorf("Capture() has %d entries, want 1", len(p))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	p := Capture(testDoc(), tracked)

	if err := Save(path, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(got) != len(p) {
		t.Fatalf("Load() = %v, want %v", got, p)
	}
	for name, v := range p {
		if got[name] != v {
			t.Errorf("Load()[%q] = %v, want %v", name, got[name], v)
		}
	}
}

func TestSave_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "p.json")

	if err := Save(path, Preset{"a": 1}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"truncated", `{"a": 1.5,`},
		{"string value", `{"a": "1.5"}`},
		{"nested object", `{"a": {"b": 1}}`},
		{"top-level array", `[1, 2, 3]`},
		{"top-level null", `null`},
		{"bool value", `{"a": true}`},
		{"null value", `{"a": null}`},
		{"null after valid entry", `{"a": 1.5, "b": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode("p.json", []byte(tt.data))
			if err == nil {
				t.Fatal("Decode() should fail")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("Decode() error = %T, want *ParseError", err)
			}
		})
	}
}

func TestDecode_IntegerValues(t *testing.T) {
	// JSON integers are valid numbers; presets written by hand use them.
	p, err := Decode("p.json", []byte(`{"a": 3, "b": 0.5}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if p["a"] != 3 || p["b"] != 0.5 {
		t.Errorf("Decode() = %v", p)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if IsParseError(err) {
		t.Error("missing file is an I/O error, not a ParseError")
	}
}

func TestEnsureExt(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"mypreset", "mypreset.json"},
		{"mypreset.json", "mypreset.json"},
		{"mypreset.JSON", "mypreset.JSON"},
		{"my.preset", "my.preset.json"},
	}

	for _, tt := range tests {
		if got := EnsureExt(tt.in); got != tt.want {
			t.Errorf("EnsureExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one.json", "two.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := List(dir)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("List() returned %d files, want 2", len(files))
	}
	for _, f := range files {
		if f.Name != "one" && f.Name != "two" {
			t.Errorf("unexpected entry %q", f.Name)
		}
	}
}

func TestList_MissingDir(t *testing.T) {
	files, err := List(filepath.Join(t.TempDir(), "never-created"))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("List() = %v, want empty", files)
	}
}
