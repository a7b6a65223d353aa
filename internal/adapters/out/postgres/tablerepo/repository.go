package tablerepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/diningtable"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTableRepository implements TableRepository using GORM.
type GormTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTableRepository creates a new GORM dining table repository.
func NewGormTableRepository(db *gorm.DB, tracker aggregateTracker) *GormTableRepository {
	return &GormTableRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a dining table by ID.
func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*diningtable.Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderTable", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing dining table to the database. Columns are selected
// explicitly so clearing a table (occupied false, zero guests) actually writes.
func (r *GormTableRepository) Update(ctx context.Context, table *diningtable.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	dto := fromDomain(table)
	result := r.db.WithContext(ctx).
		Model(&TableDTO{}).
		Where("id = ?", dto.ID).
		Select("Occupied", "NumberOfGuests").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(table.ID(), table)
	return nil
}
