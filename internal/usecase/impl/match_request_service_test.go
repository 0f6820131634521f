package impl

import (
	"context"
	"testing"
	"time"

	"fretex/config"
	"fretex/internal/domain/entity"
	domainerrors "fretex/internal/domain/errors"
	"fretex/internal/domain/repository"
	mockRepo "fretex/internal/mocks/repository"
	mockSvc "fretex/internal/mocks/service"
	"fretex/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type matchRequestMocks struct {
	freightRepo      *mockRepo.MockFreightRepository
	tripRepo         *mockRepo.MockTripRepository
	matchRequestRepo *mockRepo.MockMatchRequestRepository
	txManager        *mockRepo.MockTransactionManager
	eventPublisher   *mockSvc.MockEventPublisher
	qrcodeService    *mockSvc.MockQRCodeService
}

func newMatchRequestService(t *testing.T) (usecase.MatchRequestUsecase, *matchRequestMocks) {
	t.Helper()

	return newMatchRequestServiceWithConfig(t, &config.Config{
		QRCode: &config.QRCodeConfig{BaseURL: "https://app.fretex.com.br/"},
	})
}

func newMatchRequestServiceWithConfig(t *testing.T, cfg *config.Config) (usecase.MatchRequestUsecase, *matchRequestMocks) {
	t.Helper()

	mocks := &matchRequestMocks{
		freightRepo:      mockRepo.NewMockFreightRepository(t),
		tripRepo:         mockRepo.NewMockTripRepository(t),
		matchRequestRepo: mockRepo.NewMockMatchRequestRepository(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
		eventPublisher:   mockSvc.NewMockEventPublisher(t),
		qrcodeService:    mockSvc.NewMockQRCodeService(t),
	}

	service := NewMatchRequestService(MatchRequestServiceParams{
		Config:           cfg,
		FreightRepo:      mocks.freightRepo,
		TripRepo:         mocks.tripRepo,
		MatchRequestRepo: mocks.matchRequestRepo,
		TxManager:        mocks.txManager,
		EventPublisher:   mocks.eventPublisher,
		QRCodeService:    mocks.qrcodeService,
		Logger:           testLogger(),
	})

	return service, mocks
}

// expectTransaction makes the transaction manager run the callback against a
// factory handing out the given repositories.
func expectTransaction(t *testing.T, mocks *matchRequestMocks, freightRepo repository.FreightRepository, matchRequestRepo repository.MatchRequestRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if freightRepo != nil {
		factory.EXPECT().NewFreightRepository().Return(freightRepo)
	}
	if matchRequestRepo != nil {
		factory.EXPECT().NewMatchRequestRepository().Return(matchRequestRepo)
	}

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func pendingRequest(driverID, shipperID uuid.UUID) *entity.MatchRequest {
	return &entity.MatchRequest{
		ID:        uuid.New(),
		FreightID: uuid.New(),
		TripID:    uuid.New(),
		DriverID:  driverID,
		ShipperID: shipperID,
		Status:    entity.MatchRequestStatusPending,
		CreatedAt: time.Now(),
	}
}

func TestMatchRequestService_Propose_Success(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	driverID := uuid.New()
	shipperID := uuid.New()
	trip := equatorTrip(driverID)
	freight := freightAt(orb.Point{0.2, 0}, orb.Point{0.8, 0})
	freight.ShipperID = shipperID

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	txFreightRepo := mockRepo.NewMockFreightRepository(t)
	txFreightRepo.EXPECT().
		FindByID(ctx, freight.ID).
		Return(freight, nil)

	txMatchRequestRepo := mockRepo.NewMockMatchRequestRepository(t)
	txMatchRequestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MatchRequest")).
		Return(nil)

	expectTransaction(t, mocks, txFreightRepo, txMatchRequestRepo)

	mocks.eventPublisher.EXPECT().
		PublishMatchRequestEvent(ctx, mock.AnythingOfType("*service.MatchRequestEvent")).
		Return(nil)

	request, err := svc.Propose(ctx, driverID, usecase.ProposeInput{
		FreightID: freight.ID,
		TripID:    trip.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MatchRequestStatusPending, request.Status)
	assert.Equal(t, shipperID, request.ShipperID)
	assert.Equal(t, driverID, request.DriverID)
}

func TestMatchRequestService_Propose_DuplicatePending(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	driverID := uuid.New()
	trip := equatorTrip(driverID)
	freight := freightAt(orb.Point{0.2, 0}, orb.Point{0.8, 0})
	freight.ShipperID = uuid.New()

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	txFreightRepo := mockRepo.NewMockFreightRepository(t)
	txFreightRepo.EXPECT().
		FindByID(ctx, freight.ID).
		Return(freight, nil)

	txMatchRequestRepo := mockRepo.NewMockMatchRequestRepository(t)
	txMatchRequestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MatchRequest")).
		Return(repository.ErrDuplicatePendingRequest)

	expectTransaction(t, mocks, txFreightRepo, txMatchRequestRepo)

	request, err := svc.Propose(ctx, driverID, usecase.ProposeInput{
		FreightID: freight.ID,
		TripID:    trip.ID,
	})
	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicatePendingRequest)
}

func TestMatchRequestService_Propose_FreightClosed(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	driverID := uuid.New()
	trip := equatorTrip(driverID)
	freight := freightAt(orb.Point{0.2, 0}, orb.Point{0.8, 0})
	freight.Status = entity.FreightStatusClosed

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	txFreightRepo := mockRepo.NewMockFreightRepository(t)
	txFreightRepo.EXPECT().
		FindByID(ctx, freight.ID).
		Return(freight, nil)

	expectTransaction(t, mocks, txFreightRepo, nil)

	request, err := svc.Propose(ctx, driverID, usecase.ProposeInput{
		FreightID: freight.ID,
		TripID:    trip.ID,
	})
	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrFreightUnavailable)
}

func TestMatchRequestService_Propose_TripNotOwned(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	trip := equatorTrip(uuid.New())

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	request, err := svc.Propose(ctx, uuid.New(), usecase.ProposeInput{
		FreightID: uuid.New(),
		TripID:    trip.ID,
	})
	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestMatchRequestService_Respond_Accept(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	shipperID := uuid.New()
	request := pendingRequest(uuid.New(), shipperID)

	freight := freightAt(orb.Point{0.2, 0}, orb.Point{0.8, 0})
	freight.ID = request.FreightID
	freight.ShipperID = shipperID

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	txFreightRepo := mockRepo.NewMockFreightRepository(t)
	txFreightRepo.EXPECT().
		FindByID(ctx, request.FreightID).
		Return(freight, nil)

	txMatchRequestRepo := mockRepo.NewMockMatchRequestRepository(t)
	txMatchRequestRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.MatchRequest")).
		Return(nil)

	expectTransaction(t, mocks, txFreightRepo, txMatchRequestRepo)

	mocks.eventPublisher.EXPECT().
		PublishMatchRequestEvent(ctx, mock.AnythingOfType("*service.MatchRequestEvent")).
		Return(nil)

	responded, err := svc.Respond(ctx, shipperID, request.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.MatchRequestStatusAccepted, responded.Status)
	require.NotNil(t, responded.RespondedAt)
}

func TestMatchRequestService_Respond_AcceptClosedFreight(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	shipperID := uuid.New()
	request := pendingRequest(uuid.New(), shipperID)

	freight := freightAt(orb.Point{0.2, 0}, orb.Point{0.8, 0})
	freight.ID = request.FreightID
	freight.ShipperID = shipperID
	freight.Status = entity.FreightStatusClosed

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	txFreightRepo := mockRepo.NewMockFreightRepository(t)
	txFreightRepo.EXPECT().
		FindByID(ctx, request.FreightID).
		Return(freight, nil)

	expectTransaction(t, mocks, txFreightRepo, nil)

	responded, err := svc.Respond(ctx, shipperID, request.ID, true)
	assert.Nil(t, responded)
	assert.ErrorIs(t, err, domainerrors.ErrFreightUnavailable)
	assert.Equal(t, entity.MatchRequestStatusPending, request.Status)
}

func TestMatchRequestService_Respond_LosesConcurrentTransition(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	shipperID := uuid.New()
	request := pendingRequest(uuid.New(), shipperID)

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	mocks.matchRequestRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.MatchRequest")).
		Return(repository.ErrRequestNotPending)

	responded, err := svc.Respond(ctx, shipperID, request.ID, false)
	assert.Nil(t, responded)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
}

func TestMatchRequestService_Respond_AlreadyResolved(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	shipperID := uuid.New()
	request := pendingRequest(uuid.New(), shipperID)
	request.Status = entity.MatchRequestStatusRejected

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	responded, err := svc.Respond(ctx, shipperID, request.ID, true)
	assert.Nil(t, responded)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
}

func TestMatchRequestService_Respond_NotShipper(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	request := pendingRequest(uuid.New(), uuid.New())

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	responded, err := svc.Respond(ctx, uuid.New(), request.ID, false)
	assert.Nil(t, responded)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestMatchRequestService_Respond_PublishFailureIgnored(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	shipperID := uuid.New()
	request := pendingRequest(uuid.New(), shipperID)

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	mocks.matchRequestRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.MatchRequest")).
		Return(nil)

	mocks.eventPublisher.EXPECT().
		PublishMatchRequestEvent(ctx, mock.AnythingOfType("*service.MatchRequestEvent")).
		Return(errors.New("broker unavailable"))

	responded, err := svc.Respond(ctx, shipperID, request.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.MatchRequestStatusRejected, responded.Status)
}

func TestMatchRequestService_Cancel_ByDriver(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	driverID := uuid.New()
	request := pendingRequest(driverID, uuid.New())

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	mocks.matchRequestRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.MatchRequest")).
		Return(nil)

	mocks.eventPublisher.EXPECT().
		PublishMatchRequestEvent(ctx, mock.AnythingOfType("*service.MatchRequestEvent")).
		Return(nil)

	cancelled, err := svc.Cancel(ctx, driverID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MatchRequestStatusCancelled, cancelled.Status)
}

func TestMatchRequestService_Cancel_NotDriver(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	request := pendingRequest(uuid.New(), uuid.New())

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	cancelled, err := svc.Cancel(ctx, uuid.New(), request.ID)
	assert.Nil(t, cancelled)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestMatchRequestService_GetRequest_ContactURLOnlyWhenAccepted(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	driverID := uuid.New()
	request := pendingRequest(driverID, uuid.New())
	request.Status = entity.MatchRequestStatusAccepted

	freight := freightAt(orb.Point{0.2, 0}, orb.Point{0.8, 0})
	freight.ID = request.FreightID
	trip := equatorTrip(driverID)
	trip.ID = request.TripID

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)
	mocks.freightRepo.EXPECT().
		FindByID(ctx, request.FreightID).
		Return(freight, nil)
	mocks.tripRepo.EXPECT().
		FindByID(ctx, request.TripID).
		Return(trip, nil)

	detail, err := svc.GetRequest(ctx, driverID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://app.fretex.com.br/matches/requests/"+request.ID.String(), detail.ContactURL)
}

func TestMatchRequestService_GetRequest_PendingHidesContact(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	shipperID := uuid.New()
	request := pendingRequest(uuid.New(), shipperID)

	freight := freightAt(orb.Point{0.2, 0}, orb.Point{0.8, 0})
	freight.ID = request.FreightID
	trip := equatorTrip(request.DriverID)
	trip.ID = request.TripID

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)
	mocks.freightRepo.EXPECT().
		FindByID(ctx, request.FreightID).
		Return(freight, nil)
	mocks.tripRepo.EXPECT().
		FindByID(ctx, request.TripID).
		Return(trip, nil)

	detail, err := svc.GetRequest(ctx, shipperID, request.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.ContactURL)
}

func TestMatchRequestService_GetRequest_NoQRCodeConfig(t *testing.T) {
	svc, mocks := newMatchRequestServiceWithConfig(t, &config.Config{})
	ctx := context.Background()
	driverID := uuid.New()
	request := pendingRequest(driverID, uuid.New())
	request.Status = entity.MatchRequestStatusAccepted

	freight := freightAt(orb.Point{0.2, 0}, orb.Point{0.8, 0})
	freight.ID = request.FreightID
	trip := equatorTrip(driverID)
	trip.ID = request.TripID

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)
	mocks.freightRepo.EXPECT().
		FindByID(ctx, request.FreightID).
		Return(freight, nil)
	mocks.tripRepo.EXPECT().
		FindByID(ctx, request.TripID).
		Return(trip, nil)

	detail, err := svc.GetRequest(ctx, driverID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, "/matches/requests/"+request.ID.String(), detail.ContactURL)
}

func TestMatchRequestService_GetRequest_Stranger(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	request := pendingRequest(uuid.New(), uuid.New())

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	detail, err := svc.GetRequest(ctx, uuid.New(), request.ID)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestMatchRequestService_ContactQR_NotAccepted(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	driverID := uuid.New()
	request := pendingRequest(driverID, uuid.New())

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	png, err := svc.ContactQR(ctx, driverID, request.ID)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotAccepted)
}

func TestMatchRequestService_ContactQR_Accepted(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	shipperID := uuid.New()
	request := pendingRequest(uuid.New(), shipperID)
	request.Status = entity.MatchRequestStatusAccepted

	mocks.matchRequestRepo.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	expectedURL := "https://app.fretex.com.br/matches/requests/" + request.ID.String()
	mocks.qrcodeService.EXPECT().
		Generate(expectedURL).
		Return([]byte("png-bytes"), nil)

	png, err := svc.ContactQR(ctx, shipperID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestMatchRequestService_ListForTrip_NotOwner(t *testing.T) {
	svc, mocks := newMatchRequestService(t)
	ctx := context.Background()
	trip := equatorTrip(uuid.New())

	mocks.tripRepo.EXPECT().
		FindByID(ctx, trip.ID).
		Return(trip, nil)

	requests, err := svc.ListForTrip(ctx, uuid.New(), trip.ID)
	assert.Nil(t, requests)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}
