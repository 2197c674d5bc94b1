package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Load loads a palette set.
// Search order: customPath -> ~/.prism/palettes/<name>.yaml -> ./palettes/<name>.yaml -> embedded default
func Load(name, customPath string) (Set, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Set{}, fmt.Errorf("failed to read palette %s: %w", customPath, err)
		}
		s, err := Parse(data)
		if err != nil {
			return Set{}, fmt.Errorf("palette %s: %w", customPath, err)
		}
		return s, nil
	}

	// Try user palette directory
	if userPath := userPalettePath(name + ".yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if s, err := Parse(data); err == nil {
				return s, nil
			}
		}
	}

	// Try local palettes directory
	if data, err := os.ReadFile(filepath.Join("palettes", name+".yaml")); err == nil {
		if s, err := Parse(data); err == nil {
			return s, nil
		}
	}

	// Use embedded default
	var s Set
	if err := yaml.Unmarshal(defaultPaletteYAML, &s); err != nil {
		return DefaultSet(), nil
	}
	return s, nil
}

// LoadDir parses every .yaml file in dir, skipping files that fail to
// parse, and returns the sets sorted by name.
func LoadDir(dir string) ([]Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette dir %s: %w", dir, err)
	}
	var sets []Set
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		s, err := Parse(data)
		if err != nil {
			continue
		}
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Name < sets[j].Name })
	return sets, nil
}

// userPalettePath returns the path to a user palette file, or empty if home is unavailable.
func userPalettePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".prism", "palettes", filename)
}
