// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/baby-pick/models"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed names.yaml
var defaultCatalog []byte

// Catalog is the fixed reference list of candidate names.
type Catalog struct {
	names       []models.BabyName
	middleNames []models.MiddleName
	byName      map[string]int
}

type catalogFile struct {
	Names       []models.BabyName   `yaml:"names"`
	MiddleNames []models.MiddleName `yaml:"middle_names"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or the embedded catalog if path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML catalog data.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Names, f.MiddleNames)
}

// New builds a catalog from entries. Names must be unique and non-empty,
// and every first name needs at least one syllable.
func New(names []models.BabyName, middleNames []models.MiddleName) (*Catalog, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no names", ErrInvalidCatalog)
	}

	c := &Catalog{
		names:       make([]models.BabyName, 0, len(names)),
		middleNames: make([]models.MiddleName, 0, len(middleNames)),
		byName:      make(map[string]int, len(names)),
	}

	for i, n := range names {
		n.Name = strings.TrimSpace(n.Name)
		if n.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidCatalog, i)
		}
		if n.Syllables < 1 {
			return nil, fmt.Errorf("%w: %s has %d syllables", ErrInvalidCatalog, n.Name, n.Syllables)
		}
		if _, dup := c.byName[n.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %s", ErrInvalidCatalog, n.Name)
		}
		c.byName[n.Name] = len(c.names)
		c.names = append(c.names, n)
	}

	seen := make(map[string]bool, len(middleNames))
	for i, m := range middleNames {
		m.Name = strings.TrimSpace(m.Name)
		if m.Name == "" {
			return nil, fmt.Errorf("%w: middle name %d has no name", ErrInvalidCatalog, i)
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("%w: duplicate middle name %s", ErrInvalidCatalog, m.Name)
		}
		seen[m.Name] = true
		c.middleNames = append(c.middleNames, m)
	}

	return c, nil
}

// Names returns the first-name entries in catalog order.
func (c *Catalog) Names() []models.BabyName {
	return c.names
}

// MiddleNames returns the middle-name entries in catalog order.
func (c *Catalog) MiddleNames() []models.MiddleName {
	return c.middleNames
}

// Lookup finds a first name by exact match.
func (c *Catalog) Lookup(name string) (models.BabyName, bool) {
	i, ok := c.byName[name]
	if !ok {
		return models.BabyName{}, false
	}
	return c.names[i], true
}

// Len returns the number of first names.
func (c *Catalog) Len() int {
	return len(c.names)
}

// ShuffledOrder returns every first name in random order, used as a new
// partner's queue.
func (c *Catalog) ShuffledOrder() []string {
	order := make([]string, len(c.names))
	for i, n := range c.names {
		order[i] = n.Name
	}
	rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}

// ShuffledMiddleNames returns every middle name in random order.
func (c *Catalog) ShuffledMiddleNames() []string {
	order := make([]string, len(c.middleNames))
	for i, m := range c.middleNames {
		order[i] = m.Name
	}
	rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}
