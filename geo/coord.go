package geo

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// ErrNoCoordinate indicates a location missing from a coordinate table.
var ErrNoCoordinate = errors.New("geo: no coordinate for location")

// Coord is a latitude/longitude pair in decimal degrees.
type Coord struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Point converts c to an orb.Point, which is ordered (lon, lat).
func (c Coord) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// String renders c as "lat,lon" with four decimals.
func (c Coord) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}

// Coords maps location names to coordinates.
type Coords map[string]Coord

// Lookup returns the coordinate of name or an error wrapping ErrNoCoordinate.
func (cs Coords) Lookup(name string) (Coord, error) {
	c, ok := cs[name]
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrNoCoordinate, name)
	}

	return c, nil
}
