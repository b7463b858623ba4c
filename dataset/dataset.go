// Package dataset loads the static road map ukpath searches over: the
// locations with their coordinates and the weighted connections between them.
//
// The UK map ships embedded (uk.yaml) and is returned by Default. Other maps
// in the same YAML layout can be read with Load or LoadFile:
//
//	name: United Kingdom
//	locations:
//	  - name: Manchester
//	    lat: 53.4808
//	    lon: -2.2426
//	    neighbors:
//	      - {to: Liverpool, weight: 40}
//	connections:
//	  - {from: Liverpool, to: Holyhead, weight: 90}
//
// Every search explores a location's neighbors in the order listed. A
// neighbor that does not list the location back gets it appended after its
// own entries. The optional connections list adds undirected connections
// after all neighbor lists.
//
// A Dataset is immutable once loaded.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ukpath/core"
	"github.com/katalvlaran/ukpath/geo"
)

//go:embed uk.yaml
var ukYAML []byte

// Sentinel errors for dataset validation.
var (
	// ErrDuplicateLocation indicates the same location name declared twice.
	ErrDuplicateLocation = errors.New("dataset: duplicate location")

	// ErrBadCoordinate indicates a latitude outside [-90,90] or longitude outside [-180,180].
	ErrBadCoordinate = errors.New("dataset: coordinate out of range")

	// ErrNoLocations indicates a document without any location.
	ErrNoLocations = errors.New("dataset: no locations")
)

// Dataset is a loaded road map.
type Dataset struct {
	// Name is the human-readable title of the map.
	Name string

	// Graph holds locations and connections. Locations() follows the order of
	// the document's locations list.
	Graph *core.Graph

	// Coords holds one coordinate per location.
	Coords geo.Coords
}

type document struct {
	Name        string           `yaml:"name"`
	Locations   []locationSpec   `yaml:"locations"`
	Connections []connectionSpec `yaml:"connections"`
}

type locationSpec struct {
	Name      string         `yaml:"name"`
	Lat       float64        `yaml:"lat"`
	Lon       float64        `yaml:"lon"`
	Neighbors []neighborSpec `yaml:"neighbors"`
}

type neighborSpec struct {
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

type connectionSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Default returns the embedded United Kingdom map.
func Default() (*Dataset, error) {
	return Load(bytes.NewReader(ukYAML))
}

// MustDefault is Default for callers that treat a broken embedded map as a
// programming error (examples, tests, package-level wiring).
func MustDefault() *Dataset {
	ds, err := Default()
	if err != nil {
		panic(err)
	}

	return ds
}

// LoadFile reads a map from a YAML file.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	ds, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// Load decodes and validates a map from r.
//
// Validation, in order: at least one location; every name non-empty and
// unique; coordinates in range; every neighbor and connection endpoint
// declared; every connection accepted by core.Builder (positive weight, no loop, no
// conflicting duplicate).
func Load(r io.Reader) (*Dataset, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("dataset: decoding yaml: %w", err)
	}
	if len(doc.Locations) == 0 {
		return nil, ErrNoLocations
	}

	b := core.NewBuilder()
	coords := make(geo.Coords, len(doc.Locations))
	for i, loc := range doc.Locations {
		switch {
		case loc.Name == "":
			return nil, fmt.Errorf("dataset: location #%d: %w", i+1, core.ErrEmptyLocation)
		case loc.Lat < -90 || loc.Lat > 90 || loc.Lon < -180 || loc.Lon > 180:
			return nil, fmt.Errorf("%w: %q at %g,%g", ErrBadCoordinate, loc.Name, loc.Lat, loc.Lon)
		}
		if _, dup := coords[loc.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocation, loc.Name)
		}
		coords[loc.Name] = geo.Coord{Lat: loc.Lat, Lon: loc.Lon}
		b.AddLocation(loc.Name)
	}

	for _, loc := range doc.Locations {
		for i, n := range loc.Neighbors {
			if _, ok := coords[n.To]; !ok {
				return nil, fmt.Errorf("dataset: %q neighbor #%d: %w", loc.Name, i+1, core.UnknownLocationError{Name: n.To})
			}
			b.AddArc(loc.Name, n.To, n.Weight)
		}
	}
	for i, c := range doc.Connections {
		for _, end := range [2]string{c.From, c.To} {
			if _, ok := coords[end]; !ok {
				return nil, fmt.Errorf("dataset: connection #%d: %w", i+1, core.UnknownLocationError{Name: end})
			}
		}
		b.AddEdge(c.From, c.To, c.Weight)
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return &Dataset{Name: doc.Name, Graph: g, Coords: coords}, nil
}
