package service

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrNoRoute is returned when the provider cannot connect the waypoints.
var ErrNoRoute = errors.New("no route found between waypoints")

// Route is a computed road route.
type Route struct {
	Geometry  orb.LineString
	DistanceM float64
	DurationS float64
}

// RouteProvider computes road routes through an external routing service.
// Route computation is never done in-process.
type RouteProvider interface {
	// ComputeRoute returns the route visiting the waypoints in order using
	// the given vehicle profile. Returns ErrNoRoute when the points cannot
	// be connected; any other error means the provider call failed and the
	// caller may retry.
	ComputeRoute(ctx context.Context, profile string, waypoints []orb.Point) (*Route, error)
}
