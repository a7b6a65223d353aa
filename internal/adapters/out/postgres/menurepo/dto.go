// Package menurepo provides read-only persistence for the menu catalog.
// The order engine only resolves menus for validation and price snapshotting,
// so this repository exposes no write operations.
package menurepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuDTO represents the database structure for menu catalog entries.
type MenuDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PriceCents int64
	Displayed  bool `gorm:"index"`
}

// TableName specifies the database table name for menu entities.
func (MenuDTO) TableName() string {
	return "menus"
}

// toDomain converts a database DTO to a menu entity using RestoreMenu.
func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenu(id, kernel.NewMoney(dto.PriceCents), dto.Displayed)
}
