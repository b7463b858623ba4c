package pathfinder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ukpath/core"
	"github.com/katalvlaran/ukpath/dataset"
	"github.com/katalvlaran/ukpath/geo"
	"github.com/katalvlaran/ukpath/pathfinder"
)

type EngineSuite struct {
	suite.Suite
	ds     *dataset.Dataset
	engine *pathfinder.Engine
	traced []string
}

func (s *EngineSuite) SetupTest() {
	s.ds = dataset.MustDefault()
	s.traced = nil
	e, err := pathfinder.New(s.ds.Graph, s.ds.Coords, pathfinder.WithTrace(func(_ pathfinder.Algorithm, id string) {
		s.traced = append(s.traced, id)
	}))
	s.Require().NoError(err)
	s.engine = e
}

func (s *EngineSuite) TestSameLocationRunsNothing() {
	r, err := s.engine.Find("Manchester", "Manchester", pathfinder.BFS)
	s.Nil(r)
	s.ErrorIs(err, pathfinder.ErrInvalidQuery)

	var iq *pathfinder.InvalidQueryError
	s.Require().True(errors.As(err, &iq))
	s.Equal("Manchester", iq.Location)
	s.Empty(s.traced, "no algorithm may run")

	_, err = s.engine.Compare("Oban", "Oban")
	s.ErrorIs(err, pathfinder.ErrInvalidQuery)
	s.Empty(s.traced)
}

func (s *EngineSuite) TestUnknownLocation() {
	_, err := s.engine.Find("Manchester", "Atlantis", pathfinder.Dijkstra)
	s.Equal(core.UnknownLocationError{Name: "Atlantis"}, err)
	s.Empty(s.traced)
}

func (s *EngineSuite) TestUnknownAlgorithm() {
	_, err := s.engine.Find("Manchester", "York", pathfinder.Algorithm(42))
	s.ErrorIs(err, pathfinder.ErrUnknownAlgorithm)
}

func (s *EngineSuite) TestManchesterInverness() {
	bfsRes, err := s.engine.Find("Manchester", "Inverness", pathfinder.BFS)
	s.Require().NoError(err)
	s.Equal(3, bfsRes.Path.Hops())

	want := core.Path{"Manchester", "Carlisle", "Glasgow", "Inverness"}
	for _, algo := range []pathfinder.Algorithm{pathfinder.Dijkstra, pathfinder.AStar} {
		r, err := s.engine.Find("Manchester", "Inverness", algo)
		s.Require().NoError(err)
		s.True(r.Found)
		s.Empty(cmp.Diff(want, r.Path), algo.String())
		s.Equal(390.0, r.Cost, algo.String())
	}
}

func (s *EngineSuite) TestDepthFirstFollowsCityOrder() {
	// Carlisle tries Glasgow before York; from Edinburgh the Newcastle
	// branch dead-ends at York before Aberdeen is tried.
	r, err := s.engine.Find("Manchester", "Inverness", pathfinder.DFS)
	s.Require().NoError(err)
	s.Empty(cmp.Diff(core.Path{
		"Manchester", "Carlisle", "Glasgow", "Edinburgh", "Aberdeen", "Inverness",
	}, r.Path))
	s.Equal(520.0, r.Cost)
	s.Equal([]string{
		"Manchester", "Liverpool", "Holyhead", "Carlisle", "Glasgow", "Edinburgh",
		"Newcastle", "York", "Aberdeen", "Inverness",
	}, s.traced)
}

func (s *EngineSuite) TestHolyheadAberdeenAllFind() {
	results, err := s.engine.Compare("Holyhead", "Aberdeen")
	s.Require().NoError(err)
	s.Require().Len(results, 4)
	for i, r := range results {
		s.Equal(pathfinder.Algorithms()[i], r.Algorithm)
		s.True(r.Found, r.Algorithm.String())
		s.Equal("Holyhead", r.Path.Start())
		s.Equal("Aberdeen", r.Path.End())
		s.Positive(r.Expanded)
		s.NoError(s.ds.Graph.ValidatePath(r.Path))
	}
}

func (s *EngineSuite) TestExpandedMatchesTrace() {
	r, err := s.engine.Find("Manchester", "Inverness", pathfinder.DFS)
	s.Require().NoError(err)
	s.Equal(len(s.traced), r.Expanded)
	s.Equal("Manchester", s.traced[0])
	s.Equal("Inverness", s.traced[len(s.traced)-1])
}

func (s *EngineSuite) TestDisjointComponents() {
	g, err := s.ds.Graph.Without("Holyhead")
	s.Require().NoError(err)
	e, err := pathfinder.New(g, s.ds.Coords)
	s.Require().NoError(err)

	results, err := e.Compare("Holyhead", "Inverness")
	s.Require().NoError(err)
	for _, r := range results {
		s.False(r.Found, r.Algorithm.String())
		s.Nil(r.Path)
		s.Zero(r.Cost)
	}
}

func (s *EngineSuite) TestAllPairsProperties() {
	g := s.ds.Graph
	for _, from := range g.Locations() {
		for _, to := range g.Locations() {
			if from == to {
				continue
			}
			results, err := s.engine.Compare(from, to)
			s.Require().NoError(err)
			byAlgo := map[pathfinder.Algorithm]*pathfinder.Result{}
			for _, r := range results {
				s.Require().True(r.Found, "%s %s -> %s", r.Algorithm, from, to)
				s.NoError(g.ValidatePath(r.Path))
				byAlgo[r.Algorithm] = r
			}

			// BFS has the fewest hops of all.
			for _, r := range results {
				s.LessOrEqual(byAlgo[pathfinder.BFS].Path.Hops(), r.Path.Hops(), "%s -> %s", from, to)
			}
			// Dijkstra and A* agree on the minimal cost; nobody beats it.
			dc, ac := byAlgo[pathfinder.Dijkstra].Cost, byAlgo[pathfinder.AStar].Cost
			s.InDelta(dc, ac, 1e-9, "%s -> %s", from, to)
			for _, r := range results {
				s.GreaterOrEqual(r.Cost, dc-1e-9)
			}
		}
	}
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func TestNew_NilGraph(t *testing.T) {
	_, err := pathfinder.New(nil, nil)
	assert.ErrorIs(t, err, pathfinder.ErrGraphNil)
}

func TestFind_AStarWithoutTargetCoordinate(t *testing.T) {
	ds := dataset.MustDefault()
	coords := geo.Coords{"Manchester": ds.Coords["Manchester"]}
	e, err := pathfinder.New(ds.Graph, coords)
	require.NoError(t, err)

	_, err = e.Find("Manchester", "York", pathfinder.AStar)
	assert.ErrorIs(t, err, geo.ErrNoCoordinate)

	r, err := e.Find("Manchester", "York", pathfinder.Dijkstra)
	require.NoError(t, err)
	assert.Equal(t, 70.0, r.Cost)
}

func TestEngine_Resolve(t *testing.T) {
	ds := dataset.MustDefault()
	e, err := pathfinder.New(ds.Graph, ds.Coords)
	require.NoError(t, err)

	name, err := e.Resolve("  newCASTLE ")
	require.NoError(t, err)
	assert.Equal(t, "Newcastle", name)
	assert.Same(t, ds.Graph, e.Graph())
}
