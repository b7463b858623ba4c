// Package geo supplies the geographic side of ukpath: coordinates, the
// haversine great-circle distance that acts as the A* heuristic, per-query
// heuristic tables, an admissibility audit of a road map, and an R-tree index
// that snaps an arbitrary coordinate to the nearest named location.
//
// Distances are in statute miles on a sphere of radius EarthRadiusMiles, the
// unit the shipped UK map uses for its connection weights.
//
// Errors:
//
//   - ErrNoCoordinate  a location has no entry in the coordinate table.
//   - ErrEmptyIndex    Nearest called on an index built from no coordinates.
package geo
