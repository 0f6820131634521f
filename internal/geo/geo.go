// Package geo implements the geometry primitives the matching pipeline is
// built on: great-circle distance, point-to-polyline projection and corridor
// membership tests. All distances are meters, all coordinates WGS84.
package geo

import (
	"math"

	"github.com/paulmach/orb"

	"fretex/internal/errors"
)

// earthRadiusM is the mean Earth radius used for haversine calculations.
const earthRadiusM = 6371000.0

// ErrInvalidPolyline is returned when a polyline has fewer than two points.
var ErrInvalidPolyline = errors.New("polyline must contain at least two points")

// Projection is the result of projecting a point onto a polyline.
type Projection struct {
	// DistanceM is the great-circle distance from the point to the nearest
	// location on the polyline, in meters.
	DistanceM float64

	// Fraction is the position of that nearest location along the polyline,
	// normalized to [0, 1] of its total length.
	Fraction float64
}

// IsValidCoordinate checks whether a lat/lng pair is within WGS84 bounds.
func IsValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// DistanceMeters returns the haversine distance between two points in meters.
func DistanceMeters(a, b orb.Point) float64 {
	lat1 := degToRad(a.Lat())
	lat2 := degToRad(b.Lat())
	dLat := degToRad(b.Lat() - a.Lat())
	dLng := degToRad(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

// ProjectOntoPolyline projects a point onto a polyline and returns the
// distance to the nearest location on it together with the fraction of the
// polyline's length at which that location sits. Segments are projected in a
// local equirectangular plane, which is accurate at corridor scale.
func ProjectOntoPolyline(point orb.Point, line orb.LineString) (Projection, error) {
	if len(line) < 2 {
		return Projection{}, ErrInvalidPolyline
	}

	totalLen := 0.0
	segLens := make([]float64, len(line)-1)
	for i := 0; i < len(line)-1; i++ {
		segLens[i] = DistanceMeters(line[i], line[i+1])
		totalLen += segLens[i]
	}

	best := Projection{DistanceM: math.MaxFloat64}
	cumLen := 0.0

	for i := 0; i < len(line)-1; i++ {
		t, closest := projectOntoSegment(point, line[i], line[i+1])
		dist := DistanceMeters(point, closest)

		if dist < best.DistanceM {
			fraction := 0.0
			if totalLen > 0 {
				fraction = (cumLen + t*segLens[i]) / totalLen
			}
			best = Projection{DistanceM: dist, Fraction: clamp01(fraction)}
		}

		cumLen += segLens[i]
	}

	return best, nil
}

// WithinCorridor reports whether a point lies within radiusM meters of the
// polyline.
func WithinCorridor(point orb.Point, line orb.LineString, radiusM float64) (bool, error) {
	proj, err := ProjectOntoPolyline(point, line)
	if err != nil {
		return false, err
	}

	return proj.DistanceM <= radiusM, nil
}

// projectOntoSegment projects p onto the segment [a, b] using an
// equirectangular approximation around the segment's mean latitude. It
// returns the clamped interpolation parameter t in [0, 1] and the
// geographic coordinates of the closest point on the segment.
func projectOntoSegment(p, a, b orb.Point) (float64, orb.Point) {
	meanLat := degToRad((a.Lat() + b.Lat()) / 2)
	cosLat := math.Cos(meanLat)

	ax := a.Lon() * cosLat
	bx := b.Lon() * cosLat
	px := p.Lon() * cosLat

	dx := bx - ax
	dy := b.Lat() - a.Lat()

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		// Degenerate segment, both endpoints coincide.
		return 0, a
	}

	t := ((px-ax)*dx + (p.Lat()-a.Lat())*dy) / lenSq
	t = clamp01(t)

	closest := orb.Point{
		a.Lon() + t*(b.Lon()-a.Lon()),
		a.Lat() + t*(b.Lat()-a.Lat()),
	}

	return t, closest
}

// ExpandBound grows a bounding box by radiusM meters on every side. The
// longitude padding is scaled by the latitude furthest from the equator so
// the expanded box always covers the requested distance.
func ExpandBound(bound orb.Bound, radiusM float64) orb.Bound {
	if radiusM <= 0 {
		return bound
	}

	const metersPerDegreeLat = 111320.0

	dLat := radiusM / metersPerDegreeLat

	maxAbsLat := math.Max(math.Abs(bound.Min.Lat()), math.Abs(bound.Max.Lat()))
	cosLat := math.Cos(degToRad(maxAbsLat))
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	dLng := radiusM / (metersPerDegreeLat * cosLat)

	return orb.Bound{
		Min: orb.Point{bound.Min.Lon() - dLng, math.Max(bound.Min.Lat()-dLat, -90)},
		Max: orb.Point{bound.Max.Lon() + dLng, math.Min(bound.Max.Lat()+dLat, 90)},
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
