package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"fretex/internal/domain/entity"
	"fretex/internal/domain/repository"
	"fretex/internal/infra/persistence/model"
)

type matchRequestRepository struct {
	db *gorm.DB
}

// NewMatchRequestRepository creates a new match request repository.
func NewMatchRequestRepository(db *gorm.DB) repository.MatchRequestRepository {
	return &matchRequestRepository{db: db}
}

// Create inserts a new request. The partial unique index on
// (freight_id, trip_id) WHERE status = 'PENDING' decides races between
// concurrent proposers; the loser gets ErrDuplicatePendingRequest.
func (r *matchRequestRepository) Create(ctx context.Context, request *entity.MatchRequest) error {
	m := model.MatchRequestFromEntity(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePendingRequest
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFreightNotFound
		}

		return errors.Wrap(err, "failed to create match request")
	}

	return nil
}

func (r *matchRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MatchRequest, error) {
	var m model.MatchRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find match request")
	}

	return m.ToEntity(), nil
}

// Update persists a transition out of PENDING. The status guard in the WHERE
// clause makes concurrent transitions first-writer-wins; a terminal row is
// never overwritten.
func (r *matchRequestRepository) Update(ctx context.Context, request *entity.MatchRequest) error {
	m := model.MatchRequestFromEntity(request)
	result := r.db.WithContext(ctx).
		Model(&model.MatchRequest{}).
		Where("id = ? AND status = ?", m.ID, string(entity.MatchRequestStatusPending)).
		Updates(map[string]any{
			"status":       m.Status,
			"responded_at": m.RespondedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update match request")
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&model.MatchRequest{}).
			Where("id = ?", m.ID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to update match request")
		}
		if count == 0 {
			return repository.ErrMatchRequestNotFound
		}

		return repository.ErrRequestNotPending
	}

	return nil
}

func (r *matchRequestRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]*entity.MatchRequest, error) {
	var models []model.MatchRequest
	if err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list match requests by trip")
	}

	return requestsToEntities(models), nil
}

func (r *matchRequestRepository) ListByFreight(ctx context.Context, freightID uuid.UUID) ([]*entity.MatchRequest, error) {
	var models []model.MatchRequest
	if err := r.db.WithContext(ctx).
		Where("freight_id = ?", freightID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list match requests by freight")
	}

	return requestsToEntities(models), nil
}

// LatestStatusByTrip returns the status of each freight's most recent
// request against the trip, so match listings can show where a proposal
// already stands.
func (r *matchRequestRepository) LatestStatusByTrip(ctx context.Context, tripID uuid.UUID) (map[uuid.UUID]entity.MatchRequestStatus, error) {
	type row struct {
		FreightID uuid.UUID
		Status    string
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&model.MatchRequest{}).
		Select("DISTINCT ON (freight_id) freight_id, status").
		Where("trip_id = ?", tripID).
		Order("freight_id, created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load latest request statuses")
	}

	statuses := make(map[uuid.UUID]entity.MatchRequestStatus, len(rows))
	for _, r := range rows {
		statuses[r.FreightID] = entity.MatchRequestStatus(r.Status)
	}

	return statuses, nil
}

func requestsToEntities(models []model.MatchRequest) []*entity.MatchRequest {
	requests := make([]*entity.MatchRequest, len(models))
	for i := range models {
		requests[i] = models[i].ToEntity()
	}

	return requests
}
