package level

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed maps/default.yaml
var defaultLevelYAML []byte

// Point is a tile coordinate
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Definition is a named level with a player spawn point
type Definition struct {
	Name  string
	Spawn Point
	Level *Level
	Path  string
}

// document is the on-disk YAML shape of a level file
type document struct {
	Name  string   `yaml:"name"`
	Spawn Point    `yaml:"spawn"`
	Rows  []string `yaml:"rows"`
}

// Parse decodes a YAML level document
func Parse(data []byte) (*Definition, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("level: parse yaml: %w", err)
	}

	lvl, err := FromRows(doc.Rows)
	if err != nil {
		return nil, err
	}
	if !lvl.InBounds(doc.Spawn.X, doc.Spawn.Y) {
		return nil, fmt.Errorf("%w: (%d,%d) on a %dx%d map",
			ErrSpawnOutside, doc.Spawn.X, doc.Spawn.Y, lvl.Width(), lvl.Height())
	}

	name := doc.Name
	if name == "" {
		name = "untitled"
	}
	return &Definition{
		Name:  name,
		Spawn: doc.Spawn,
		Level: lvl,
	}, nil
}

// LoadFile reads and parses a level file
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", path, err)
	}
	def.Path = path
	return def, nil
}

// Default returns the built-in hand-authored level
func Default() *Definition {
	def, err := Parse(defaultLevelYAML)
	if err != nil {
		panic(fmt.Sprintf("level: embedded default is invalid: %v", err))
	}
	return def
}

// LoadOrDefault loads path, or the built-in level when path is empty
func LoadOrDefault(path string) (*Definition, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadDir loads every level file in dir, sorted by file name.
// Files that fail to parse are returned as errors alongside the valid levels.
func LoadDir(dir string) ([]*Definition, []error, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("level: read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isLevelFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var defs []*Definition
	var problems []error
	for _, name := range names {
		def, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			problems = append(problems, err)
			continue
		}
		defs = append(defs, def)
	}
	return defs, problems, nil
}

func isLevelFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Marshal encodes a definition in the level file format
func Marshal(def *Definition) ([]byte, error) {
	doc := document{
		Name:  def.Name,
		Spawn: def.Spawn,
		Rows:  def.Level.Rows(),
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("level: encode %s: %w", def.Name, err)
	}
	return data, nil
}

// SaveFile writes a definition to path and records the path on it
func SaveFile(path string, def *Definition) error {
	data, err := Marshal(def)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("level: write %s: %w", path, err)
	}
	def.Path = path
	return nil
}
