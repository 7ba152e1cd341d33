// Package catalog holds the fixed, ordered list of attractions the app shows.
//
// A Catalog is built once at startup and never mutated. Every attraction name
// is unique because the detail route is keyed by name.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tourguide/landmarks/pkg/landmarks/geo"
)

//go:embed attractions.toml
var defaultManifest string

var (
	// ErrNotFound is returned by Lookup when no attraction has the given name.
	ErrNotFound = errors.New("attraction not found")

	// ErrDuplicateName is returned when two attractions share a name.
	ErrDuplicateName = errors.New("duplicate attraction name")

	// ErrEmptyName is returned for an attraction without a name.
	ErrEmptyName = errors.New("attraction name is empty")
)

// Attraction is a single catalog entry.
type Attraction struct {
	Name        string `toml:"name"`
	Image       string `toml:"image"`        // Asset path relative to the assets directory
	Description string `toml:"description"`  // Message ID in the locale bundle
	MapLocation string `toml:"map_location"` // geo URI, handed to the launcher verbatim
}

// ImagePath resolves the attraction's image against assetsDir.
// Returns "" when the attraction has no image.
func (a Attraction) ImagePath(assetsDir string) string {
	if a.Image == "" {
		return ""
	}
	if filepath.IsAbs(a.Image) {
		return a.Image
	}
	return filepath.Join(assetsDir, filepath.FromSlash(a.Image))
}

// Coordinates parses MapLocation.
func (a Attraction) Coordinates() (geo.Coordinates, error) {
	return geo.Parse(a.MapLocation)
}

// Catalog is an immutable ordered list of attractions.
type Catalog struct {
	attractions []Attraction
}

type manifest struct {
	Attractions []Attraction `toml:"attraction"`
}

// New validates attractions and builds a catalog from them in order.
func New(attractions ...Attraction) (*Catalog, error) {
	seen := make(map[string]int, len(attractions))

	for i, a := range attractions {
		if strings.TrimSpace(a.Name) == "" {
			return nil, fmt.Errorf("catalog: entry %d: %w", i, ErrEmptyName)
		}
		if first, ok := seen[a.Name]; ok {
			return nil, fmt.Errorf("catalog: entries %d and %d: %w: %q", first, i, ErrDuplicateName, a.Name)
		}
		seen[a.Name] = i

		if err := geo.Validate(a.MapLocation); err != nil {
			return nil, fmt.Errorf("catalog: %q: %w", a.Name, err)
		}
	}

	owned := make([]Attraction, len(attractions))
	copy(owned, attractions)

	return &Catalog{attractions: owned}, nil
}

// Load reads a TOML manifest of [[attraction]] tables.
func Load(r io.Reader) (*Catalog, error) {
	var m manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("catalog: decode manifest: %w", err)
	}
	return New(m.Attractions...)
}

// LoadFile reads a TOML manifest from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Load(strings.NewReader(defaultManifest))
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of attractions.
func (c *Catalog) Len() int {
	return len(c.attractions)
}

// At returns the attraction at index i.
func (c *Catalog) At(i int) Attraction {
	return c.attractions[i]
}

// All returns a copy of the attractions in catalog order.
func (c *Catalog) All() []Attraction {
	out := make([]Attraction, len(c.attractions))
	copy(out, c.attractions)
	return out
}

// Names returns attraction names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.attractions))
	for i, a := range c.attractions {
		names[i] = a.Name
	}
	return names
}

// Lookup finds the attraction whose name matches exactly.
func (c *Catalog) Lookup(name string) (Attraction, error) {
	for _, a := range c.attractions {
		if a.Name == name {
			return a, nil
		}
	}
	return Attraction{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}
