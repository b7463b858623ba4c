package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMiles is the sphere radius the heuristic measures on.
const EarthRadiusMiles = 3958.8

// milesPerOrbUnit rescales orb's haversine (computed on orb.EarthRadius,
// in metres) to EarthRadiusMiles. Haversine is linear in the radius.
const milesPerOrbUnit = EarthRadiusMiles / orb.EarthRadius

// Distance returns the great-circle distance between a and b in miles.
//
// It is symmetric, never negative, and zero exactly when a == b.
func Distance(a, b Coord) float64 {
	return orbgeo.DistanceHaversine(a.Point(), b.Point()) * milesPerOrbUnit
}
