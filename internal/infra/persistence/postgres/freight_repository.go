package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"fretex/internal/domain/entity"
	"fretex/internal/domain/repository"
	"fretex/internal/infra/persistence/model"
)

type freightRepository struct {
	db *gorm.DB
}

// NewFreightRepository creates a new freight repository.
func NewFreightRepository(db *gorm.DB) repository.FreightRepository {
	return &freightRepository{db: db}
}

func (r *freightRepository) Create(ctx context.Context, freight *entity.Freight) error {
	m := model.FreightFromEntity(freight)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create freight")
	}

	return nil
}

func (r *freightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Freight, error) {
	var m model.Freight
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFreightNotFound
		}

		return nil, errors.Wrap(err, "failed to find freight")
	}

	return m.ToEntity(), nil
}

func (r *freightRepository) List(ctx context.Context, filter repository.FreightListFilter) ([]*entity.Freight, error) {
	query := r.db.WithContext(ctx).Model(&model.Freight{})

	if filter.ShipperID != nil {
		query = query.Where("shipper_id = ?", *filter.ShipperID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"pickup_label ILIKE ? OR dropoff_label ILIKE ? OR notes ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var models []model.Freight
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list freights")
	}

	return freightsToEntities(models), nil
}

func (r *freightRepository) Update(ctx context.Context, freight *entity.Freight) error {
	m := model.FreightFromEntity(freight)
	result := r.db.WithContext(ctx).
		Model(&model.Freight{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update freight")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFreightNotFound
	}

	return nil
}

// FindOpenWithinBound is the coarse candidate pre-filter: OPEN freights whose
// pickup or dropoff intersects the route's padded bounding envelope. The &&
// operator keeps the query on the GiST indexes.
func (r *freightRepository) FindOpenWithinBound(ctx context.Context, bound orb.Bound, limit int) ([]*entity.Freight, error) {
	envelope := "ST_MakeEnvelope(?, ?, ?, ?, 4326)"
	args := []any{bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat()}

	query := r.db.WithContext(ctx).
		Model(&model.Freight{}).
		Where("status = ?", string(entity.FreightStatusOpen)).
		Where("pickup_geom && "+envelope+" OR dropoff_geom && "+envelope,
			append(append([]any{}, args...), args...)...)

	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.Freight
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find candidate freights")
	}

	return freightsToEntities(models), nil
}

func freightsToEntities(models []model.Freight) []*entity.Freight {
	freights := make([]*entity.Freight, len(models))
	for i := range models {
		freights[i] = models[i].ToEntity()
	}

	return freights
}
