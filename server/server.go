// Package server exposes the route finder as a small JSON/PNG HTTP API
// built on gin.
//
//	GET /api/locations                          every location with coordinate and degree
//	GET /api/algorithms                         the four searches (key and display name)
//	GET /api/path?from=&to=&algorithm=          one search
//	GET /api/compare?from=&to=                  all four searches
//	GET /api/nearest?lat=&lon=                  closest location to a point
//	GET /api/render.png?from=&to=&algorithm=    the map, with the route when from/to are given
//
// Location names are resolved case- and accent-insensitively. The algorithm
// defaults to A* when omitted.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/ukpath/core"
	"github.com/katalvlaran/ukpath/dataset"
	"github.com/katalvlaran/ukpath/geo"
	"github.com/katalvlaran/ukpath/pathfinder"
	"github.com/katalvlaran/ukpath/render"
)

// Server holds the read-only state shared by every handler.
type Server struct {
	ds     *dataset.Dataset
	engine *pathfinder.Engine
	index  *geo.Index
}

// New wires a Server over ds.
func New(ds *dataset.Dataset) (*Server, error) {
	engine, err := pathfinder.New(ds.Graph, ds.Coords)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	return &Server{
		ds:     ds,
		engine: engine,
		index:  geo.NewIndex(ds.Coords),
	}, nil
}

// Router returns a gin engine with logging, recovery and every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	s.Register(r)

	return r
}

// Register adds the API routes to r.
func (s *Server) Register(r gin.IRoutes) {
	r.GET("/api/locations", s.listLocations)
	r.GET("/api/algorithms", s.listAlgorithms)
	r.GET("/api/path", s.findPath)
	r.GET("/api/compare", s.comparePaths)
	r.GET("/api/nearest", s.nearest)
	r.GET("/api/render.png", s.renderPNG)
}

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

// LocationInfo is one entry of GET /api/locations.
type LocationInfo struct {
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Degree int     `json:"degree"`
}

// AlgorithmInfo names one search for GET /api/algorithms.
type AlgorithmInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// PathResponse is the outcome of one search; Message is set when no route exists.
type PathResponse struct {
	Algorithm string   `json:"algorithm"`
	Name      string   `json:"name"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Path      []string `json:"path"`
	Cost      float64  `json:"cost"`
	Found     bool     `json:"found"`
	Expanded  int      `json:"expanded"`
	Message   string   `json:"message,omitempty"`
}

// NearestResponse is the closest location to the queried point.
type NearestResponse struct {
	Name  string  `json:"name"`
	Miles float64 `json:"miles"`
}

// nearestQuery binds GET /api/nearest. Pointers keep 0 a valid coordinate
// under required.
type nearestQuery struct {
	Lat *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lon *float64 `form:"lon" binding:"required,min=-180,max=180"`
}

func (s *Server) listLocations(ctx *gin.Context) {
	g := s.ds.Graph
	out := make([]LocationInfo, 0, g.LocationCount())
	for _, name := range g.Locations() {
		c := s.ds.Coords[name]
		deg, err := g.Degree(name)
		if err != nil {
			s.fail(ctx, err)

			return
		}
		out = append(out, LocationInfo{Name: name, Lat: c.Lat, Lon: c.Lon, Degree: deg})
	}

	ctx.JSON(http.StatusOK, out)
}

func (s *Server) listAlgorithms(ctx *gin.Context) {
	algos := pathfinder.Algorithms()
	out := make([]AlgorithmInfo, 0, len(algos))
	for _, a := range algos {
		out = append(out, AlgorithmInfo{Key: a.Key(), Name: a.String()})
	}

	ctx.JSON(http.StatusOK, out)
}

func (s *Server) findPath(ctx *gin.Context) {
	from, to, ok := s.endpoints(ctx)
	if !ok {
		return
	}
	algo, ok := s.algorithm(ctx)
	if !ok {
		return
	}

	res, err := s.engine.Find(from, to, algo)
	if err != nil {
		s.fail(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, toResponse(res))
}

func (s *Server) comparePaths(ctx *gin.Context) {
	from, to, ok := s.endpoints(ctx)
	if !ok {
		return
	}

	results, err := s.engine.Compare(from, to)
	if err != nil {
		s.fail(ctx, err)

		return
	}
	out := make([]PathResponse, 0, len(results))
	for _, r := range results {
		out = append(out, toResponse(r))
	}

	ctx.JSON(http.StatusOK, out)
}

func (s *Server) nearest(ctx *gin.Context) {
	var q nearestQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters must be valid coordinates: " + err.Error()})

		return
	}

	name, miles, err := s.index.Nearest(geo.Coord{Lat: *q.Lat, Lon: *q.Lon})
	if err != nil {
		s.fail(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, NearestResponse{Name: name, Miles: miles})
}

func (s *Server) renderPNG(ctx *gin.Context) {
	var (
		path  core.Path
		title string
	)
	if ctx.Query("from") != "" || ctx.Query("to") != "" {
		from, to, ok := s.endpoints(ctx)
		if !ok {
			return
		}
		algo, ok := s.algorithm(ctx)
		if !ok {
			return
		}
		res, err := s.engine.Find(from, to, algo)
		if err != nil {
			s.fail(ctx, err)

			return
		}
		path = res.Path
		title = algo.String() + " Path"
		if !res.Found {
			title = pathfinder.MsgNoPath
		}
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, s.ds, path, render.WithTitle(title)); err != nil {
		s.fail(ctx, err)

		return
	}

	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// endpoints reads and resolves from/to, answering the request itself on failure.
func (s *Server) endpoints(ctx *gin.Context) (from, to string, ok bool) {
	rawFrom, rawTo := ctx.Query("from"), ctx.Query("to")
	if rawFrom == "" || rawTo == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})

		return "", "", false
	}
	var err error
	if from, err = s.engine.Resolve(rawFrom); err != nil {
		s.fail(ctx, err)

		return "", "", false
	}
	if to, err = s.engine.Resolve(rawTo); err != nil {
		s.fail(ctx, err)

		return "", "", false
	}

	return from, to, true
}

// algorithm reads the optional algorithm parameter, defaulting to A*.
func (s *Server) algorithm(ctx *gin.Context) (pathfinder.Algorithm, bool) {
	raw := ctx.DefaultQuery("algorithm", pathfinder.AStar.Key())
	algo, err := pathfinder.ParseAlgorithm(raw)
	if err != nil {
		s.fail(ctx, err)

		return 0, false
	}

	return algo, true
}

// fail maps err to a status code and a JSON body.
func (s *Server) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, pathfinder.ErrInvalidQuery):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "message": pathfinder.MsgSameLocation})
	case errors.Is(err, pathfinder.ErrUnknownAlgorithm):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrUnknownLocation):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func toResponse(r *pathfinder.Result) PathResponse {
	out := PathResponse{
		Algorithm: r.Algorithm.Key(),
		Name:      r.Algorithm.String(),
		From:      r.Start,
		To:        r.End,
		Path:      []string(r.Path),
		Cost:      r.Cost,
		Found:     r.Found,
		Expanded:  r.Expanded,
	}
	if out.Path == nil {
		out.Path = []string{}
	}
	if !r.Found {
		out.Message = pathfinder.MsgNoPath
	}

	return out
}
