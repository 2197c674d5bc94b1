package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prismkit/prism/ansi"
	"github.com/prismkit/prism/convert"
)

func TestParse(t *testing.T) {
	data := []byte(`name: test
colors:
  accent: "#ff8000"
  plain: ff8000
  triple: [1, 2, 3]
`)

	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Name != "test" {
		t.Errorf("Name = %q, expected test", s.Name)
	}
	if len(s.Colors) != 3 {
		t.Fatalf("parsed %d colors, expected 3", len(s.Colors))
	}

	expected := map[string]convert.RGB{
		"accent": {R: 255, G: 128, B: 0},
		"plain":  {R: 255, G: 128, B: 0},
		"triple": {R: 1, G: 2, B: 3},
	}
	for name, rgb := range expected {
		if s.Colors[name].RGB != rgb {
			t.Errorf("color %q = %v, expected %v", name, s.Colors[name].RGB, rgb)
		}
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "short hex", data: "name: t\ncolors:\n  x: \"#fff\"\n"},
		{name: "channel out of range", data: "name: t\ncolors:\n  x: [300, 0, 0]\n"},
		{name: "wrong arity", data: "name: t\ncolors:\n  x: [1, 2]\n"},
		{name: "mapping value", data: "name: t\ncolors:\n  x: {r: 1}\n"},
		{name: "no colors", data: "name: t\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Errorf("Parse() accepted %q", tc.data)
			}
		})
	}
}

func TestSetBuildsPalettes(t *testing.T) {
	s := Set{
		Name: "test",
		Colors: map[string]ColorValue{
			"accent": {RGB: convert.RGB{R: 255, G: 128, B: 0}},
		},
	}

	fg, err := s.Foreground()
	if err != nil {
		t.Fatalf("Foreground() error = %v", err)
	}
	c, err := fg.Get("accent")
	if err != nil {
		t.Fatalf("Get(accent) error = %v", err)
	}
	if c.Value() != "\x1b[38;2;255;128;0m" {
		t.Errorf("accent = %q", c.Value())
	}

	bg, err := s.Background()
	if err != nil {
		t.Fatalf("Background() error = %v", err)
	}
	if bg.Layer() != ansi.Background {
		t.Errorf("Background() layer = %v", bg.Layer())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	data := []byte("name: mine\ncolors:\n  sea: \"#2e8b57\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s, err := Load("ignored", path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Name != "mine" {
		t.Errorf("Name = %q, expected mine", s.Name)
	}
	if s.Colors["sea"].RGB != (convert.RGB{R: 46, G: 139, B: 87}) {
		t.Errorf("sea = %v", s.Colors["sea"].RGB)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("", filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("Load() with missing file succeeded")
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	s, err := Load("no-such-palette", "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Colors) == 0 {
		t.Errorf("default palette has no colors")
	}
	if _, ok := s.Colors["accent"]; !ok {
		t.Errorf("default palette is missing accent")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.yaml":   "name: beta\ncolors:\n  x: \"#000000\"\n",
		"a.yaml":   "name: alpha\ncolors:\n  x: \"#ffffff\"\n",
		"bad.yaml": "name: broken\ncolors:\n  x: \"#zz\"\n",
		"skip.txt": "not yaml",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	sets, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("LoadDir() returned %d sets, expected 2", len(sets))
	}
	if sets[0].Name != "alpha" || sets[1].Name != "beta" {
		t.Errorf("sets = [%s, %s], expected sorted [alpha, beta]", sets[0].Name, sets[1].Name)
	}
}
