package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"fretex/config"
	"fretex/internal/domain/entity"
	domainerrors "fretex/internal/domain/errors"
	"fretex/internal/domain/repository"
	"fretex/internal/domain/service"
	"fretex/internal/usecase"
)

// MatchRequestServiceParams contains the dependencies for the match request
// service.
type MatchRequestServiceParams struct {
	fx.In

	Config           *config.Config
	FreightRepo      repository.FreightRepository
	TripRepo         repository.TripRepository
	MatchRequestRepo repository.MatchRequestRepository
	TxManager        repository.TransactionManager
	EventPublisher   service.EventPublisher
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

type matchRequestService struct {
	cfg              *config.Config
	freightRepo      repository.FreightRepository
	tripRepo         repository.TripRepository
	matchRequestRepo repository.MatchRequestRepository
	txManager        repository.TransactionManager
	eventPublisher   service.EventPublisher
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// NewMatchRequestService creates the match request lifecycle service.
func NewMatchRequestService(params MatchRequestServiceParams) usecase.MatchRequestUsecase {
	return &matchRequestService{
		cfg:              params.Config,
		freightRepo:      params.FreightRepo,
		tripRepo:         params.TripRepo,
		matchRequestRepo: params.MatchRequestRepo,
		txManager:        params.TxManager,
		eventPublisher:   params.EventPublisher,
		qrcodeService:    params.QRCodeService,
		logger:           params.Logger,
	}
}

// Propose creates a PENDING request. The freight-open check and the insert
// run in one transaction; the partial unique index resolves concurrent
// proposals for the same pair, losers get ErrDuplicatePendingRequest.
func (s *matchRequestService) Propose(ctx context.Context, driverID uuid.UUID, input usecase.ProposeInput) (*entity.MatchRequest, error) {
	trip, err := s.tripRepo.FindByID(ctx, input.TripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, fmt.Errorf("find trip: %w", err)
	}

	if trip.DriverID != driverID {
		return nil, domainerrors.ErrOwnershipViolation
	}
	if !trip.IsActive() {
		return nil, domainerrors.ErrTripUnavailable
	}

	request := &entity.MatchRequest{
		ID:        uuid.New(),
		FreightID: input.FreightID,
		TripID:    input.TripID,
		DriverID:  driverID,
		Message:   input.Message,
		Status:    entity.MatchRequestStatusPending,
		CreatedAt: time.Now(),
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		freight, err := repos.NewFreightRepository().FindByID(ctx, input.FreightID)
		if err != nil {
			if errors.Is(err, repository.ErrFreightNotFound) {
				return domainerrors.ErrFreightNotFound
			}

			return fmt.Errorf("find freight: %w", err)
		}

		if !freight.IsOpen() {
			return domainerrors.ErrFreightUnavailable
		}

		request.ShipperID = freight.ShipperID

		if err := repos.NewMatchRequestRepository().Create(ctx, request); err != nil {
			if errors.Is(err, repository.ErrDuplicatePendingRequest) {
				return domainerrors.ErrDuplicatePendingRequest
			}

			return fmt.Errorf("create match request: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "match request proposed",
		slog.String("request_id", request.ID.String()),
		slog.String("freight_id", request.FreightID.String()),
		slog.String("trip_id", request.TripID.String()))

	s.publishEvent(ctx, service.EventMatchRequestProposed, request)

	return request, nil
}

// Respond lets the shipper accept or reject a PENDING request. Acceptance
// releases contact details, so it additionally requires the freight to still
// be OPEN; that check and the transition share one transaction.
func (s *matchRequestService) Respond(ctx context.Context, shipperID, requestID uuid.UUID, accept bool) (*entity.MatchRequest, error) {
	request, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.ShipperID != shipperID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	if !accept {
		if err := s.transition(ctx, s.matchRequestRepo, request, entity.MatchRequestStatusRejected); err != nil {
			return nil, err
		}

		s.publishEvent(ctx, service.EventMatchRequestRejected, request)

		return request, nil
	}

	if !request.CanTransitionTo(entity.MatchRequestStatusAccepted) {
		return nil, domainerrors.ErrInvalidStateTransition
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		freight, err := repos.NewFreightRepository().FindByID(ctx, request.FreightID)
		if err != nil {
			if errors.Is(err, repository.ErrFreightNotFound) {
				return domainerrors.ErrFreightNotFound
			}

			return fmt.Errorf("find freight: %w", err)
		}

		if !freight.IsOpen() {
			return domainerrors.ErrFreightUnavailable
		}

		return s.transition(ctx, repos.NewMatchRequestRepository(), request, entity.MatchRequestStatusAccepted)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, service.EventMatchRequestAccepted, request)

	return request, nil
}

// Cancel lets the proposing driver withdraw a PENDING request.
func (s *matchRequestService) Cancel(ctx context.Context, driverID, requestID uuid.UUID) (*entity.MatchRequest, error) {
	request, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.DriverID != driverID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	if err := s.transition(ctx, s.matchRequestRepo, request, entity.MatchRequestStatusCancelled); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, service.EventMatchRequestCancelled, request)

	return request, nil
}

func (s *matchRequestService) GetRequest(ctx context.Context, userID, requestID uuid.UUID) (*usecase.MatchRequestDetail, error) {
	request, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.DriverID != userID && request.ShipperID != userID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	freight, err := s.freightRepo.FindByID(ctx, request.FreightID)
	if err != nil {
		return nil, fmt.Errorf("find freight: %w", err)
	}
	trip, err := s.tripRepo.FindByID(ctx, request.TripID)
	if err != nil {
		return nil, fmt.Errorf("find trip: %w", err)
	}

	detail := &usecase.MatchRequestDetail{
		Request: request,
		Freight: freight,
		Trip:    trip,
	}

	// Contact details are only released once the shipper accepted.
	if request.Status == entity.MatchRequestStatusAccepted {
		detail.ContactURL = s.contactURL(request.ID)
	}

	return detail, nil
}

func (s *matchRequestService) ListForTrip(ctx context.Context, driverID, tripID uuid.UUID) ([]*entity.MatchRequest, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return nil, domainerrors.ErrTripNotFound
		}

		return nil, fmt.Errorf("find trip: %w", err)
	}

	if trip.DriverID != driverID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	requests, err := s.matchRequestRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list match requests: %w", err)
	}

	return requests, nil
}

func (s *matchRequestService) ContactQR(ctx context.Context, userID, requestID uuid.UUID) ([]byte, error) {
	request, err := s.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.DriverID != userID && request.ShipperID != userID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	if request.Status != entity.MatchRequestStatusAccepted {
		return nil, domainerrors.ErrRequestNotAccepted
	}

	png, err := s.qrcodeService.Generate(s.contactURL(request.ID))
	if err != nil {
		return nil, fmt.Errorf("generate contact QR: %w", err)
	}

	return png, nil
}

func (s *matchRequestService) findRequest(ctx context.Context, requestID uuid.UUID) (*entity.MatchRequest, error) {
	request, err := s.matchRequestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchRequestNotFound) {
			return nil, domainerrors.ErrMatchRequestNotFound
		}

		return nil, fmt.Errorf("find match request: %w", err)
	}

	return request, nil
}

// transition moves a request out of PENDING and persists it. The storage
// layer only updates rows still PENDING, so a concurrent transition that
// committed first surfaces as ErrInvalidStateTransition here.
func (s *matchRequestService) transition(ctx context.Context, requests repository.MatchRequestRepository, request *entity.MatchRequest, next entity.MatchRequestStatus) error {
	if !request.CanTransitionTo(next) {
		return domainerrors.ErrInvalidStateTransition
	}

	now := time.Now()
	request.Status = next
	request.RespondedAt = &now

	if err := requests.Update(ctx, request); err != nil {
		if errors.Is(err, repository.ErrRequestNotPending) {
			return domainerrors.ErrInvalidStateTransition
		}

		return fmt.Errorf("update match request: %w", err)
	}

	s.logger.InfoContext(ctx, "match request transitioned",
		slog.String("request_id", request.ID.String()),
		slog.String("status", string(next)))

	return nil
}

// publishEvent publishes a lifecycle event best-effort. Failures are logged
// and never surface to the caller.
func (s *matchRequestService) publishEvent(ctx context.Context, eventType service.EventType, request *entity.MatchRequest) {
	event := &service.MatchRequestEvent{
		Type:       eventType,
		RequestID:  request.ID,
		FreightID:  request.FreightID,
		TripID:     request.TripID,
		DriverID:   request.DriverID,
		ShipperID:  request.ShipperID,
		OccurredAt: time.Now(),
	}

	if err := s.eventPublisher.PublishMatchRequestEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "publish match request event failed",
			slog.String("request_id", request.ID.String()),
			slog.String("event_type", string(eventType)),
			slog.Any("error", err))
	}
}

// contactURL builds the shareable contact link. Without a configured base
// URL the link is path-only and clients resolve it against their origin.
func (s *matchRequestService) contactURL(requestID uuid.UUID) string {
	base := ""
	if s.cfg.QRCode != nil {
		base = strings.TrimSuffix(s.cfg.QRCode.BaseURL, "/")
	}

	return fmt.Sprintf("%s/matches/requests/%s", base, requestID)
}
