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
	"go.uber.org/fx"
)

// FreightHandlerParams holds dependencies for FreightHandler, injected by Fx.
type FreightHandlerParams struct {
	fx.In

	FreightUC usecase.FreightUsecase
	Logger    *slog.Logger
}

// FreightHandler holds dependencies for freight-related handlers
type FreightHandler struct {
	freightUC usecase.FreightUsecase
	logger    *slog.Logger
}

// NewFreightHandler is the constructor for FreightHandler
func NewFreightHandler(params FreightHandlerParams) *FreightHandler {
	return &FreightHandler{
		freightUC: params.FreightUC,
		logger:    params.Logger,
	}
}

// GeoPointRequest is a labeled coordinate in a request body.
type GeoPointRequest struct {
	Label   string  `json:"label" validate:"required"`
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lng     float64 `json:"lng" validate:"min=-180,max=180"`
	RadiusM float64 `json:"radius_m" validate:"omitempty,min=0"`
}

// CreateFreightRequest represents the request body for publishing a freight
type CreateFreightRequest struct {
	Pickup  GeoPointRequest `json:"pickup" validate:"required"`
	Dropoff GeoPointRequest `json:"dropoff" validate:"required"`
	Notes   *string         `json:"notes,omitempty"`

	DistanceM         *int64 `json:"distance_m,omitempty" validate:"omitempty,min=0"`
	DurationS         *int64 `json:"duration_s,omitempty" validate:"omitempty,min=0"`
	PriceTotalCents   *int64 `json:"price_total_cents,omitempty" validate:"omitempty,min=0"`
	DriverPayoutCents *int64 `json:"driver_payout_cents,omitempty" validate:"omitempty,min=0"`
	Currency          string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// UpdateFreightRequest represents the request body for updating a freight
type UpdateFreightRequest struct {
	Pickup  GeoPointRequest `json:"pickup" validate:"required"`
	Dropoff GeoPointRequest `json:"dropoff" validate:"required"`
	Notes   *string         `json:"notes,omitempty"`
}

// GeoPointResponse is a labeled coordinate in a response body.
type GeoPointResponse struct {
	Label   string  `json:"label"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	RadiusM float64 `json:"radius_m,omitempty"`
}

// FreightResponse is the wire representation of a freight.
type FreightResponse struct {
	ID        uuid.UUID `json:"id"`
	ShipperID uuid.UUID `json:"shipper_id"`

	Pickup  GeoPointResponse `json:"pickup"`
	Dropoff GeoPointResponse `json:"dropoff"`
	Notes   *string          `json:"notes,omitempty"`

	DistanceM         *int64 `json:"distance_m,omitempty"`
	DurationS         *int64 `json:"duration_s,omitempty"`
	PriceTotalCents   *int64 `json:"price_total_cents,omitempty"`
	DriverPayoutCents *int64 `json:"driver_payout_cents,omitempty"`
	Currency          string `json:"currency"`

	Status    entity.FreightStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// NewFreightResponse maps a freight entity onto the wire representation.
func NewFreightResponse(f *entity.Freight) *FreightResponse {
	return &FreightResponse{
		ID:        f.ID,
		ShipperID: f.ShipperID,
		Pickup: GeoPointResponse{
			Label:   f.PickupLabel,
			Lat:     f.Pickup.Lat(),
			Lng:     f.Pickup.Lon(),
			RadiusM: f.PickupRadiusM,
		},
		Dropoff: GeoPointResponse{
			Label:   f.DropoffLabel,
			Lat:     f.Dropoff.Lat(),
			Lng:     f.Dropoff.Lon(),
			RadiusM: f.DropoffRadiusM,
		},
		Notes:             f.Notes,
		DistanceM:         f.DistanceM,
		DurationS:         f.DurationS,
		PriceTotalCents:   f.PriceTotalCents,
		DriverPayoutCents: f.DriverPayoutCents,
		Currency:          f.Currency,
		Status:            f.Status,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
}

func newFreightResponses(freights []*entity.Freight) []*FreightResponse {
	out := make([]*FreightResponse, len(freights))
	for i, f := range freights {
		out[i] = NewFreightResponse(f)
	}

	return out
}

// CreateFreight handles publishing a new freight
func (h *FreightHandler) CreateFreight(c echo.Context) error {
	shipperID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateFreightRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid freight input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.CreateFreightInput{
		Pickup:            geoPointInput(req.Pickup),
		Dropoff:           geoPointInput(req.Dropoff),
		Notes:             req.Notes,
		DistanceM:         req.DistanceM,
		DurationS:         req.DurationS,
		PriceTotalCents:   req.PriceTotalCents,
		DriverPayoutCents: req.DriverPayoutCents,
		Currency:          req.Currency,
	}

	freight, err := h.freightUC.CreateFreight(c.Request().Context(), shipperID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, NewFreightResponse(freight), "Freight created successfully")
}

// GetFreight handles retrieving a freight by ID
func (h *FreightHandler) GetFreight(c echo.Context) error {
	freightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid freight ID")
	}

	freight, err := h.freightUC.GetFreight(c.Request().Context(), freightID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, NewFreightResponse(freight), "Freight retrieved successfully")
}

// ListFreights handles listing the shipper's freights
func (h *FreightHandler) ListFreights(c echo.Context) error {
	shipperID, err := getUserID(c)
	if err != nil {
		return err
	}

	input := usecase.ListFreightsInput{
		Status: entity.FreightStatus(c.QueryParam("status")),
		Query:  c.QueryParam("q"),
		Limit:  queryInt(c, "limit"),
	}

	freights, err := h.freightUC.ListFreights(c.Request().Context(), shipperID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newFreightResponses(freights), "Freights retrieved successfully")
}

// UpdateFreight handles updating an open freight
func (h *FreightHandler) UpdateFreight(c echo.Context) error {
	shipperID, err := getUserID(c)
	if err != nil {
		return err
	}

	freightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid freight ID")
	}

	var req UpdateFreightRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid freight input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.UpdateFreightInput{
		Pickup:  geoPointInput(req.Pickup),
		Dropoff: geoPointInput(req.Dropoff),
		Notes:   req.Notes,
	}

	freight, err := h.freightUC.UpdateFreight(c.Request().Context(), shipperID, freightID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, NewFreightResponse(freight), "Freight updated successfully")
}

// CloseFreight handles closing a freight to further proposals
func (h *FreightHandler) CloseFreight(c echo.Context) error {
	shipperID, err := getUserID(c)
	if err != nil {
		return err
	}

	freightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid freight ID")
	}

	freight, err := h.freightUC.CloseFreight(c.Request().Context(), shipperID, freightID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, NewFreightResponse(freight), "Freight closed successfully")
}

func geoPointInput(p GeoPointRequest) usecase.GeoPointInput {
	return usecase.GeoPointInput{
		Label:   p.Label,
		Lat:     p.Lat,
		Lng:     p.Lng,
		RadiusM: p.RadiusM,
	}
}
