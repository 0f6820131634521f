package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A roughly west-to-east polyline along the equator, about 111 km per degree.
func equatorLine() orb.LineString {
	return orb.LineString{
		{0.0, 0.0},
		{0.5, 0.0},
		{1.0, 0.0},
		{1.5, 0.0},
	}
}

func TestDistanceMeters(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		p := orb.Point{-46.633, -23.550} // São Paulo
		assert.Zero(t, DistanceMeters(p, p))
	})

	t.Run("known city pair within tolerance", func(t *testing.T) {
		saoPaulo := orb.Point{-46.6333, -23.5505}
		rio := orb.Point{-43.1729, -22.9068}

		d := DistanceMeters(saoPaulo, rio)
		// Great-circle distance is about 357 km.
		assert.InDelta(t, 357000, d, 5000)
	})

	t.Run("symmetry", func(t *testing.T) {
		a := orb.Point{-47.0, -22.0}
		b := orb.Point{-43.0, -20.0}
		assert.InDelta(t, DistanceMeters(a, b), DistanceMeters(b, a), 1e-6)
	})
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(-23.55, -46.63))
	assert.True(t, IsValidCoordinate(90, 180))
	assert.False(t, IsValidCoordinate(91, 0))
	assert.False(t, IsValidCoordinate(0, -181))
}

func TestProjectOntoPolyline(t *testing.T) {
	line := equatorLine()

	t.Run("rejects degenerate polyline", func(t *testing.T) {
		_, err := ProjectOntoPolyline(orb.Point{0, 0}, orb.LineString{{0, 0}})
		assert.ErrorIs(t, err, ErrInvalidPolyline)
	})

	t.Run("point on the line has near-zero distance", func(t *testing.T) {
		proj, err := ProjectOntoPolyline(orb.Point{0.75, 0.0}, line)
		require.NoError(t, err)
		assert.Less(t, proj.DistanceM, 1.0)
		assert.InDelta(t, 0.5, proj.Fraction, 0.01)
	})

	t.Run("fraction at endpoints", func(t *testing.T) {
		start, err := ProjectOntoPolyline(orb.Point{-0.2, 0.0}, line)
		require.NoError(t, err)
		assert.Zero(t, start.Fraction)

		end, err := ProjectOntoPolyline(orb.Point{1.7, 0.0}, line)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, end.Fraction, 1e-9)
	})

	t.Run("fraction increases monotonically along the route", func(t *testing.T) {
		prev := -1.0
		for _, lng := range []float64{0.1, 0.4, 0.8, 1.2, 1.45} {
			proj, err := ProjectOntoPolyline(orb.Point{lng, 0.05}, line)
			require.NoError(t, err)
			assert.Greater(t, proj.Fraction, prev)
			prev = proj.Fraction
		}
	})

	t.Run("perpendicular offset measured correctly", func(t *testing.T) {
		// 0.1 degrees of latitude is roughly 11.1 km.
		proj, err := ProjectOntoPolyline(orb.Point{0.75, 0.1}, line)
		require.NoError(t, err)
		assert.InDelta(t, 11120, proj.DistanceM, 150)
	})

	t.Run("distance grows with offset", func(t *testing.T) {
		near, err := ProjectOntoPolyline(orb.Point{0.75, 0.05}, line)
		require.NoError(t, err)
		far, err := ProjectOntoPolyline(orb.Point{0.75, 0.2}, line)
		require.NoError(t, err)
		assert.Greater(t, far.DistanceM, near.DistanceM)
	})
}

func TestExpandBound(t *testing.T) {
	bound := equatorLine().Bound()

	t.Run("zero radius is a no-op", func(t *testing.T) {
		assert.Equal(t, bound, ExpandBound(bound, 0))
	})

	t.Run("expanded bound contains offset points", func(t *testing.T) {
		expanded := ExpandBound(bound, 50000)
		// 50 km is about 0.45 degrees at the equator.
		assert.True(t, expanded.Contains(orb.Point{0.75, 0.4}))
		assert.True(t, expanded.Contains(orb.Point{-0.4, 0.0}))
		assert.False(t, expanded.Contains(orb.Point{0.75, 1.0}))
	})

	t.Run("latitude stays within poles", func(t *testing.T) {
		polar := orb.Bound{Min: orb.Point{0, 89.5}, Max: orb.Point{1, 89.9}}
		expanded := ExpandBound(polar, 100000)
		assert.LessOrEqual(t, expanded.Max.Lat(), 90.0)
	})
}

func TestWithinCorridor(t *testing.T) {
	line := equatorLine()

	t.Run("inside", func(t *testing.T) {
		ok, err := WithinCorridor(orb.Point{0.75, 0.04}, line, 50000)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("outside", func(t *testing.T) {
		ok, err := WithinCorridor(orb.Point{0.75, 0.6}, line, 50000)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		proj, err := ProjectOntoPolyline(orb.Point{0.75, 0.1}, line)
		require.NoError(t, err)

		ok, err := WithinCorridor(orb.Point{0.75, 0.1}, line, proj.DistanceM)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("propagates invalid polyline", func(t *testing.T) {
		_, err := WithinCorridor(orb.Point{0, 0}, orb.LineString{}, 1000)
		assert.ErrorIs(t, err, ErrInvalidPolyline)
	})
}
