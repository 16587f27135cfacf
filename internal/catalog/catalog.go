// Package catalog holds the named material and cross-section tables used as
// inputs by the analysis packages. Entries are immutable once registered;
// lookups return copies so callers can derive edited variants safely.
package catalog

import (
	"fmt"
	"sort"
)

// Catalog is an explicit registry of materials and section profiles.
// Engine entry points take a *Catalog rather than reading package-level
// tables, so tests can substitute fixtures.
type Catalog struct {
	materials map[string]Material
	sections  map[string]SectionProfile
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		materials: make(map[string]Material),
		sections:  make(map[string]SectionProfile),
	}
}

// Default returns the stock catalog with the built-in material and
// section tables registered.
func Default() *Catalog {
	c := New()
	for _, m := range builtinMaterials {
		c.AddMaterial(m)
	}
	for _, s := range builtinSections {
		c.AddSection(s)
	}
	return c
}

// AddMaterial registers a material under its name, replacing any existing
// entry with the same name.
func (c *Catalog) AddMaterial(m Material) {
	c.materials[m.Name] = m
}

// AddSection registers a section profile under its name.
func (c *Catalog) AddSection(s SectionProfile) {
	c.sections[s.Name] = s
}

// Material looks up a material by name.
func (c *Catalog) Material(name string) (Material, error) {
	m, ok := c.materials[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material %q", name)
	}
	return m, nil
}

// Section looks up a section profile by name.
func (c *Catalog) Section(name string) (SectionProfile, error) {
	s, ok := c.sections[name]
	if !ok {
		return SectionProfile{}, fmt.Errorf("unknown section %q", name)
	}
	return s, nil
}

// MaterialNames returns the registered material names in sorted order.
func (c *Catalog) MaterialNames() []string {
	names := make([]string, 0, len(c.materials))
	for name := range c.materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SectionNames returns the registered section names in sorted order.
func (c *Catalog) SectionNames() []string {
	names := make([]string, 0, len(c.sections))
	for name := range c.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
