package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ukpath/geo"
)

func TestIndex_Nearest(t *testing.T) {
	ix := geo.NewIndex(ukCoords)
	require.Equal(t, len(ukCoords), ix.Len())

	cases := []struct {
		at   geo.Coord
		want string
	}{
		{geo.Coord{Lat: 55.86, Lon: -4.25}, "Glasgow"},
		{geo.Coord{Lat: 55.95, Lon: -3.19}, "Edinburgh"},
		{geo.Coord{Lat: 53.30, Lon: -4.60}, "Holyhead"},
		{geo.Coord{Lat: 58.50, Lon: -3.50}, "Inverness"},
		{geo.Coord{Lat: 53.45, Lon: -2.60}, "Manchester"},
	}
	for _, tc := range cases {
		name, miles, err := ix.Nearest(tc.at)
		require.NoError(t, err)
		assert.Equal(t, tc.want, name, "nearest to %v", tc.at)
		assert.InDelta(t, geo.Distance(tc.at, ukCoords[tc.want]), miles, 1e-9)
	}
}

func TestIndex_ExactHit(t *testing.T) {
	ix := geo.NewIndex(ukCoords)
	name, miles, err := ix.Nearest(ukCoords["Oban"])
	require.NoError(t, err)
	assert.Equal(t, "Oban", name)
	assert.Zero(t, miles)
}

func TestIndex_Empty(t *testing.T) {
	ix := geo.NewIndex(nil)
	_, _, err := ix.Nearest(geo.Coord{})
	assert.ErrorIs(t, err, geo.ErrEmptyIndex)
}
