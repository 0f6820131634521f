package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fretex/internal/delivery/http/response"
	"fretex/internal/domain/entity"
	"fretex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// TripHandlerParams holds dependencies for TripHandler, injected by Fx.
type TripHandlerParams struct {
	fx.In

	TripUC usecase.TripUsecase
	Logger *slog.Logger
}

// TripHandler holds dependencies for trip-related handlers
type TripHandler struct {
	tripUC usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler
func NewTripHandler(params TripHandlerParams) *TripHandler {
	return &TripHandler{
		tripUC: params.TripUC,
		logger: params.Logger,
	}
}

// TripRequest represents the request body for creating or updating a trip
type TripRequest struct {
	Origin      GeoPointRequest `json:"origin" validate:"required"`
	Destination GeoPointRequest `json:"destination" validate:"required"`

	Profile         string     `json:"profile,omitempty"`
	CorridorRadiusM float64    `json:"corridor_radius_m,omitempty" validate:"omitempty,min=0"`
	DepartAt        *time.Time `json:"depart_at,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// PreviewRouteRequest represents the request body for a route preview
type PreviewRouteRequest struct {
	Profile   string       `json:"profile,omitempty"`
	Waypoints [][2]float64 `json:"waypoints" validate:"required,min=2"` // [lng, lat] pairs
}

// RouteResponse is the wire representation of a computed route.
type RouteResponse struct {
	Geometry  [][2]float64 `json:"geometry"` // [lng, lat] pairs
	DistanceM float64      `json:"distance_m"`
	DurationS float64      `json:"duration_s"`
}

// TripResponse is the wire representation of a trip.
type TripResponse struct {
	ID       uuid.UUID `json:"id"`
	DriverID uuid.UUID `json:"driver_id"`

	Origin      GeoPointResponse `json:"origin"`
	Destination GeoPointResponse `json:"destination"`

	Profile         string  `json:"profile"`
	CorridorRadiusM float64 `json:"corridor_radius_m"`

	Route          [][2]float64 `json:"route,omitempty"` // [lng, lat] pairs
	RouteDistanceM float64      `json:"route_distance_m,omitempty"`
	RouteDurationS float64      `json:"route_duration_s,omitempty"`

	DepartAt *time.Time `json:"depart_at,omitempty"`
	Notes    *string    `json:"notes,omitempty"`

	Status    entity.TripStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewTripResponse maps a trip entity onto the wire representation.
func NewTripResponse(t *entity.Trip) *TripResponse {
	return &TripResponse{
		ID:       t.ID,
		DriverID: t.DriverID,
		Origin: GeoPointResponse{
			Label: t.OriginLabel,
			Lat:   t.Origin.Lat(),
			Lng:   t.Origin.Lon(),
		},
		Destination: GeoPointResponse{
			Label: t.DestinationLabel,
			Lat:   t.Destination.Lat(),
			Lng:   t.Destination.Lon(),
		},
		Profile:         t.Profile,
		CorridorRadiusM: t.CorridorRadiusM,
		Route:           lineCoordinates(t.Route),
		RouteDistanceM:  t.RouteDistanceM,
		RouteDurationS:  t.RouteDurationS,
		DepartAt:        t.DepartAt,
		Notes:           t.Notes,
		Status:          t.Status,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func newTripResponses(trips []*entity.Trip) []*TripResponse {
	out := make([]*TripResponse, len(trips))
	for i, t := range trips {
		out[i] = NewTripResponse(t)
	}

	return out
}

func lineCoordinates(line orb.LineString) [][2]float64 {
	if len(line) == 0 {
		return nil
	}

	coords := make([][2]float64, len(line))
	for i, p := range line {
		coords[i] = [2]float64{p.Lon(), p.Lat()}
	}

	return coords
}

// CreateTrip handles planning a new trip
func (h *TripHandler) CreateTrip(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req TripRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.CreateTripInput{
		Origin:          geoPointInput(req.Origin),
		Destination:     geoPointInput(req.Destination),
		Profile:         req.Profile,
		CorridorRadiusM: req.CorridorRadiusM,
		DepartAt:        req.DepartAt,
		Notes:           req.Notes,
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), driverID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, NewTripResponse(trip), "Trip created successfully")
}

// GetTrip handles retrieving a trip by ID
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, NewTripResponse(trip), "Trip retrieved successfully")
}

// ListTrips handles listing the driver's trips
func (h *TripHandler) ListTrips(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	input := usecase.ListTripsInput{
		Status: entity.TripStatus(c.QueryParam("status")),
		Query:  c.QueryParam("q"),
		Limit:  queryInt(c, "limit"),
	}

	trips, err := h.tripUC.ListTrips(c.Request().Context(), driverID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newTripResponses(trips), "Trips retrieved successfully")
}

// UpdateTrip handles updating an active trip
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trip ID")
	}

	var req TripRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.UpdateTripInput{
		Origin:          geoPointInput(req.Origin),
		Destination:     geoPointInput(req.Destination),
		Profile:         req.Profile,
		CorridorRadiusM: req.CorridorRadiusM,
		DepartAt:        req.DepartAt,
		Notes:           req.Notes,
	}

	trip, err := h.tripUC.UpdateTrip(c.Request().Context(), driverID, tripID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, NewTripResponse(trip), "Trip updated successfully")
}

// CancelTrip handles cancelling a trip
func (h *TripHandler) CancelTrip(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trip ID")
	}

	trip, err := h.tripUC.CancelTrip(c.Request().Context(), driverID, tripID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, NewTripResponse(trip), "Trip cancelled successfully")
}

// PreviewRoute handles computing a route without persisting a trip
func (h *TripHandler) PreviewRoute(c echo.Context) error {
	var req PreviewRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route preview input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	waypoints := make([]orb.Point, len(req.Waypoints))
	for i, wp := range req.Waypoints {
		waypoints[i] = orb.Point{wp[0], wp[1]}
	}

	route, err := h.tripUC.PreviewRoute(c.Request().Context(), req.Profile, waypoints)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &RouteResponse{
		Geometry:  lineCoordinates(route.Geometry),
		DistanceM: route.DistanceM,
		DurationS: route.DurationS,
	}, "Route computed successfully")
}
