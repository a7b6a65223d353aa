// Package tablerepo provides persistence for dining tables. Table lifecycle
// is managed elsewhere; the order engine reads occupancy and clears tables
// when their last outstanding order completes.
package tablerepo

import (
	"kitchen/internal/core/domain/model/diningtable"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for dining tables.
type TableDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Occupied       bool
	NumberOfGuests int
}

// TableName specifies the database table name for dining table entities.
func (TableDTO) TableName() string {
	return "dining_tables"
}

// fromDomain converts a dining table entity to its database representation.
func fromDomain(table *diningtable.Table) TableDTO {
	return TableDTO{
		ID:             table.ID().Bytes(),
		Occupied:       table.IsOccupied(),
		NumberOfGuests: table.NumberOfGuests(),
	}
}

// toDomain converts a database DTO to a dining table entity using RestoreTable.
func toDomain(dto TableDTO) (*diningtable.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return diningtable.RestoreTable(id, dto.Occupied, dto.NumberOfGuests)
}
