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

type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new trip repository.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	m := model.TripFromEntity(trip)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create trip")
	}

	return nil
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	var m model.Trip
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to find trip")
	}

	return m.ToEntity(), nil
}

func (r *tripRepository) List(ctx context.Context, filter repository.TripListFilter) ([]*entity.Trip, error) {
	query := r.db.WithContext(ctx).Model(&model.Trip{})

	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"origin_label ILIKE ? OR destination_label ILIKE ?",
			pattern, pattern,
		)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var models []model.Trip
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list trips")
	}

	trips := make([]*entity.Trip, len(models))
	for i := range models {
		trips[i] = models[i].ToEntity()
	}

	return trips, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	m := model.TripFromEntity(trip)
	result := r.db.WithContext(ctx).
		Model(&model.Trip{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update trip")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTripNotFound
	}

	return nil
}
