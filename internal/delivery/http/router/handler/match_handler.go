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

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchingUC     usecase.MatchingUsecase
	MatchRequestUC usecase.MatchRequestUsecase
	Logger         *slog.Logger
}

// MatchHandler holds dependencies for matching and match request handlers
type MatchHandler struct {
	matchingUC     usecase.MatchingUsecase
	matchRequestUC usecase.MatchRequestUsecase
	logger         *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchingUC:     params.MatchingUC,
		matchRequestUC: params.MatchRequestUC,
		logger:         params.Logger,
	}
}

// MatchResponse is the wire representation of a scored match.
type MatchResponse struct {
	FreightID    uuid.UUID `json:"freight_id"`
	PickupDistM  float64   `json:"pickup_dist_m"`
	DropoffDistM float64   `json:"dropoff_dist_m"`
	PickupPos    float64   `json:"pickup_pos"`
	DropoffPos   float64   `json:"dropoff_pos"`
	Score        float64   `json:"score"`

	RequestStatus entity.MatchRequestStatus `json:"request_status,omitempty"`
}

// MatchResultResponse is the wire representation of a matching computation.
type MatchResultResponse struct {
	Matches      []MatchResponse `json:"matches"`
	SkippedCount int             `json:"skipped_count"`
}

// MatchRequestResponse is the wire representation of a match request.
type MatchRequestResponse struct {
	ID        uuid.UUID `json:"id"`
	FreightID uuid.UUID `json:"freight_id"`
	TripID    uuid.UUID `json:"trip_id"`
	DriverID  uuid.UUID `json:"driver_id"`
	ShipperID uuid.UUID `json:"shipper_id"`

	Message *string `json:"message,omitempty"`

	Status      entity.MatchRequestStatus `json:"status"`
	CreatedAt   time.Time                 `json:"created_at"`
	RespondedAt *time.Time                `json:"responded_at,omitempty"`
}

// MatchRequestDetailResponse is a request with its freight and trip.
type MatchRequestDetailResponse struct {
	Request *MatchRequestResponse `json:"request"`
	Freight *FreightResponse      `json:"freight"`
	Trip    *TripResponse         `json:"trip"`

	// ContactURL is only present once the request is accepted.
	ContactURL string `json:"contact_url,omitempty"`
}

// ProposeMatchRequest represents the request body for proposing a match
type ProposeMatchRequest struct {
	FreightID uuid.UUID `json:"freight_id" validate:"required"`
	TripID    uuid.UUID `json:"trip_id" validate:"required"`
	Message   *string   `json:"message,omitempty"`
}

// RespondMatchRequest represents the request body for answering a proposal
type RespondMatchRequest struct {
	Accept bool `json:"accept"`
}

// NewMatchRequestResponse maps a match request entity onto the wire representation.
func NewMatchRequestResponse(r *entity.MatchRequest) *MatchRequestResponse {
	return &MatchRequestResponse{
		ID:          r.ID,
		FreightID:   r.FreightID,
		TripID:      r.TripID,
		DriverID:    r.DriverID,
		ShipperID:   r.ShipperID,
		Message:     r.Message,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		RespondedAt: r.RespondedAt,
	}
}

// ComputeMatches handles running the corridor matching pipeline for a trip
func (h *MatchHandler) ComputeMatches(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trip ID")
	}

	input := usecase.ComputeMatchesInput{
		TripID:  tripID,
		RadiusM: queryFloat(c, "radius_m"),
		Limit:   queryInt(c, "limit"),
	}

	result, err := h.matchingUC.ComputeMatches(c.Request().Context(), driverID, input)
	if err != nil {
		return err
	}

	matches := make([]MatchResponse, len(result.Matches))
	for i, m := range result.Matches {
		matches[i] = MatchResponse{
			FreightID:     m.FreightID,
			PickupDistM:   m.PickupDistM,
			DropoffDistM:  m.DropoffDistM,
			PickupPos:     m.PickupPos,
			DropoffPos:    m.DropoffPos,
			Score:         m.Score,
			RequestStatus: m.RequestStatus,
		}
	}

	return response.Success(c, http.StatusOK, &MatchResultResponse{
		Matches:      matches,
		SkippedCount: result.SkippedCount,
	}, "Matches computed successfully")
}

// ProposeMatch handles a driver proposing to carry a freight
func (h *MatchHandler) ProposeMatch(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ProposeMatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid match proposal input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	request, err := h.matchRequestUC.Propose(c.Request().Context(), driverID, usecase.ProposeInput{
		FreightID: req.FreightID,
		TripID:    req.TripID,
		Message:   req.Message,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, NewMatchRequestResponse(request), "Match request created successfully")
}

// RespondMatch handles the shipper accepting or rejecting a proposal
func (h *MatchHandler) RespondMatch(c echo.Context) error {
	shipperID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match request ID")
	}

	var req RespondMatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	request, err := h.matchRequestUC.Respond(c.Request().Context(), shipperID, requestID, req.Accept)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, NewMatchRequestResponse(request), "Match request answered successfully")
}

// CancelMatch handles the driver withdrawing a pending proposal
func (h *MatchHandler) CancelMatch(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match request ID")
	}

	request, err := h.matchRequestUC.Cancel(c.Request().Context(), driverID, requestID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, NewMatchRequestResponse(request), "Match request cancelled successfully")
}

// GetMatchRequest handles retrieving a match request with its freight and trip
func (h *MatchHandler) GetMatchRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match request ID")
	}

	detail, err := h.matchRequestUC.GetRequest(c.Request().Context(), userID, requestID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &MatchRequestDetailResponse{
		Request:    NewMatchRequestResponse(detail.Request),
		Freight:    NewFreightResponse(detail.Freight),
		Trip:       NewTripResponse(detail.Trip),
		ContactURL: detail.ContactURL,
	}, "Match request retrieved successfully")
}

// ListTripMatchRequests handles listing the driver's requests on a trip
func (h *MatchHandler) ListTripMatchRequests(c echo.Context) error {
	driverID, err := getUserID(c)
	if err != nil {
		return err
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trip ID")
	}

	requests, err := h.matchRequestUC.ListForTrip(c.Request().Context(), driverID, tripID)
	if err != nil {
		return err
	}

	out := make([]*MatchRequestResponse, len(requests))
	for i, r := range requests {
		out[i] = NewMatchRequestResponse(r)
	}

	return response.Success(c, http.StatusOK, out, "Match requests retrieved successfully")
}

// GetContactQR renders the contact link of an accepted request as a PNG QR code
func (h *MatchHandler) GetContactQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid match request ID")
	}

	png, err := h.matchRequestUC.ContactQR(c.Request().Context(), userID, requestID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
