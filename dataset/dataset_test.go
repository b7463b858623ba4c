package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ukpath/core"
	"github.com/katalvlaran/ukpath/dataset"
)

func TestDefault_Shape(t *testing.T) {
	ds, err := dataset.Default()
	require.NoError(t, err)

	assert.Equal(t, "United Kingdom", ds.Name)
	assert.Equal(t, []string{
		"Manchester", "Holyhead", "Liverpool", "York", "Carlisle", "Newcastle",
		"Glasgow", "Edinburgh", "Oban", "Aberdeen", "Inverness",
	}, ds.Graph.Locations())
	assert.Equal(t, 20, ds.Graph.EdgeCount())
	assert.Len(t, ds.Coords, 11)
	for _, name := range ds.Graph.Locations() {
		_, ok := ds.Coords[name]
		assert.True(t, ok, "%s has no coordinate", name)
	}
}

func TestDefault_Symmetric(t *testing.T) {
	g := dataset.MustDefault().Graph
	for _, a := range g.Locations() {
		edges, err := g.Neighbors(a)
		require.NoError(t, err)
		for _, e := range edges {
			w, ok := g.Weight(e.To, a)
			require.True(t, ok, "%s-%s not mirrored", a, e.To)
			assert.Equal(t, e.Weight, w)
		}
	}
}

func TestDefault_KnownConnections(t *testing.T) {
	g := dataset.MustDefault().Graph

	w, ok := g.Weight("Manchester", "Liverpool")
	require.True(t, ok)
	assert.Equal(t, 40.0, w)

	w, ok = g.Weight("Inverness", "Glasgow")
	require.True(t, ok)
	assert.Equal(t, 170.0, w)

	deg, err := g.Degree("Holyhead")
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
}

func neighborNames(t *testing.T, g *core.Graph, name string) []string {
	t.Helper()
	nbs, err := g.Neighbors(name)
	require.NoError(t, err)
	out := make([]string, 0, len(nbs))
	for _, e := range nbs {
		out = append(out, e.To)
	}

	return out
}

func TestDefault_NeighborOrder(t *testing.T) {
	g := dataset.MustDefault().Graph

	// each city's own list comes first, reverse-only connections last
	want := map[string][]string{
		"Manchester": {"Liverpool", "Carlisle", "York", "Newcastle", "Edinburgh"},
		"Carlisle":   {"Manchester", "Glasgow", "York", "Edinburgh", "Newcastle"},
		"Newcastle":  {"York", "Edinburgh", "Carlisle", "Manchester", "Glasgow"},
		"Glasgow":    {"Carlisle", "Edinburgh", "Oban", "Aberdeen", "Inverness", "Newcastle"},
		"Edinburgh":  {"Glasgow", "Newcastle", "Manchester", "Aberdeen", "Carlisle"},
		"Aberdeen":   {"Inverness", "Glasgow", "Edinburgh"},
		"Inverness":  {"Oban", "Aberdeen", "Glasgow"},
		"Holyhead":   {"Liverpool"},
	}
	for city, nbs := range want {
		assert.Equal(t, nbs, neighborNames(t, g, city), "neighbors of %s", city)
	}
}

func TestDefault_FreshGraphs(t *testing.T) {
	a := dataset.MustDefault()
	b := dataset.MustDefault()
	assert.NotSame(t, a.Graph, b.Graph)
}

const tinyMap = `
name: Tiny
locations:
  - {name: A, lat: 50, lon: -1}
  - {name: B, lat: 51, lon: -1}
connections:
  - {from: A, to: B, weight: 7}
`

func TestLoad_Valid(t *testing.T) {
	ds, err := dataset.Load(strings.NewReader(tinyMap))
	require.NoError(t, err)
	assert.Equal(t, "Tiny", ds.Name)
	w, ok := ds.Graph.Weight("B", "A")
	require.True(t, ok)
	assert.Equal(t, 7.0, w)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"no locations", "name: x\n", dataset.ErrNoLocations},
		{"empty name", "locations:\n  - {name: '', lat: 1, lon: 1}\n", core.ErrEmptyLocation},
		{"duplicate", "locations:\n  - {name: A, lat: 1, lon: 1}\n  - {name: A, lat: 2, lon: 2}\n", dataset.ErrDuplicateLocation},
		{"latitude", "locations:\n  - {name: A, lat: 91, lon: 1}\n", dataset.ErrBadCoordinate},
		{"longitude", "locations:\n  - {name: A, lat: 1, lon: -181}\n", dataset.ErrBadCoordinate},
		{"undeclared", "locations:\n  - {name: A, lat: 1, lon: 1}\nconnections:\n  - {from: A, to: Z, weight: 1}\n", core.ErrUnknownLocation},
		{"bad weight", "locations:\n  - {name: A, lat: 1, lon: 1}\n  - {name: B, lat: 1, lon: 2}\nconnections:\n  - {from: A, to: B, weight: 0}\n", core.ErrBadWeight},
		{"loop", "locations:\n  - {name: A, lat: 1, lon: 1}\nconnections:\n  - {from: A, to: A, weight: 3}\n", core.ErrLoopNotAllowed},
		{"undeclared neighbor", "locations:\n  - name: A\n    lat: 1\n    lon: 1\n    neighbors: [{to: Z, weight: 1}]\n", core.ErrUnknownLocation},
		{"neighbor mismatch", "locations:\n  - name: A\n    lat: 1\n    lon: 1\n    neighbors: [{to: B, weight: 1}]\n  - name: B\n    lat: 1\n    lon: 2\n    neighbors: [{to: A, weight: 2}]\n", core.ErrWeightMismatch},
		{"neighbor loop", "locations:\n  - name: A\n    lat: 1\n    lon: 1\n    neighbors: [{to: A, weight: 1}]\n", core.ErrLoopNotAllowed},
		{"mismatch", "locations:\n  - {name: A, lat: 1, lon: 1}\n  - {name: B, lat: 1, lon: 2}\nconnections:\n  - {from: A, to: B, weight: 1}\n  - {from: B, to: A, weight: 2}\n", core.ErrWeightMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := dataset.Load(strings.NewReader(tc.doc))
			assert.Nil(t, ds)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

const orderedMap = `
name: Ordered
locations:
  - name: A
    lat: 50
    lon: -1
    neighbors:
      - {to: B, weight: 1}
  - name: B
    lat: 51
    lon: -1
    neighbors:
      - {to: C, weight: 2}
      - {to: A, weight: 1}
  - name: C
    lat: 52
    lon: -1
connections:
  - {from: C, to: A, weight: 4}
`

func TestLoad_NeighborLists(t *testing.T) {
	ds, err := dataset.Load(strings.NewReader(orderedMap))
	require.NoError(t, err)
	g := ds.Graph

	assert.Equal(t, []string{"C", "A"}, neighborNames(t, g, "B"), "declared order wins over first mention")
	assert.Equal(t, []string{"A", "B"}, neighborNames(t, g, "C"), "connections precede appended mirrors")
	assert.Equal(t, []string{"B", "C"}, neighborNames(t, g, "A"))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestLoad_UndeclaredNamesLocation(t *testing.T) {
	doc := "locations:\n  - {name: A, lat: 1, lon: 1}\nconnections:\n  - {from: Atlantis, to: A, weight: 1}\n"
	_, err := dataset.Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Atlantis"`)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := dataset.Load(strings.NewReader("locations: [: :"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding yaml")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tinyMap), 0o600))

	ds, err := dataset.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Graph.LocationCount())

	_, err = dataset.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
