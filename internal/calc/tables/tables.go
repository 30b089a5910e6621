// Package tables loads the capacity tables used by the sizing calculators.
//
// Tables are YAML documents. A default set is embedded in the binary; a directory
// of *.yaml files can replace it without a rebuild.
package tables

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"Buildcalc/internal/calc/sizing"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Set is a read-only collection of capacity tables keyed by name.
type Set struct {
	tables map[string]sizing.Table
}

// Summary is the listing entry for one table.
type Summary struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	SpanUnit     string `json:"span_unit"`
	CapacityUnit string `json:"capacity_unit"`
	Sizes        int    `json:"sizes"`
}

// Default returns the embedded tables.
func Default() (*Set, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// Load reads tables from dir, or the embedded set when dir is empty.
func Load(dir string) (*Set, error) {
	if dir == "" {
		return Default()
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("tables directory: %w", err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS parses every *.yaml file at the root of fsys.
func LoadFS(fsys fs.FS) (*Set, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no table files found")
	}

	set := &Set{tables: make(map[string]sizing.Table, len(files))}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		t, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if t.Name == "" {
			t.Name = strings.TrimSuffix(path.Base(name), ".yaml")
		}
		if _, dup := set.tables[t.Name]; dup {
			return nil, fmt.Errorf("duplicate table %q in %s", t.Name, name)
		}
		set.tables[t.Name] = t
	}
	return set, nil
}

// Parse decodes one table and normalizes its samples.
func Parse(data []byte) (sizing.Table, error) {
	var t sizing.Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return sizing.Table{}, err
	}
	if err := normalize(&t); err != nil {
		return sizing.Table{}, err
	}
	return t, nil
}

// normalize sorts samples by span and rejects tables the engine cannot use.
// Capacity is expected to fall as span grows but that is not checked here.
func normalize(t *sizing.Table) error {
	if len(t.Sizes) == 0 {
		return fmt.Errorf("table %q has no sizes", t.Name)
	}
	seen := make(map[string]bool, len(t.Sizes))
	for i := range t.Sizes {
		s := &t.Sizes[i]
		if s.Key == "" {
			return fmt.Errorf("size %d has no key", i)
		}
		if seen[s.Key] {
			return fmt.Errorf("duplicate size %q", s.Key)
		}
		seen[s.Key] = true
		if len(s.Samples) == 0 {
			return fmt.Errorf("size %q has no samples", s.Key)
		}

		sort.SliceStable(s.Samples, func(a, b int) bool {
			return s.Samples[a].Span < s.Samples[b].Span
		})
		for j, sample := range s.Samples {
			if sample.Span <= 0 || sample.Capacity <= 0 {
				return fmt.Errorf("size %q: span and capacity must be positive", s.Key)
			}
			if j > 0 && s.Samples[j-1].Span == sample.Span {
				return fmt.Errorf("size %q: duplicate span %v", s.Key, sample.Span)
			}
		}
	}
	return nil
}

// Get returns the named table.
func (s *Set) Get(name string) (sizing.Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Names lists table names alphabetically.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summaries lists every table in name order.
func (s *Set) Summaries() []Summary {
	out := make([]Summary, 0, len(s.tables))
	for _, name := range s.Names() {
		t := s.tables[name]
		out = append(out, Summary{
			Name:         t.Name,
			Title:        t.Title,
			SpanUnit:     t.SpanUnit,
			CapacityUnit: t.CapacityUnit,
			Sizes:        len(t.Sizes),
		})
	}
	return out
}
