// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sort"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and table assignment.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderType       int
	Status          int        `gorm:"index"`
	DeliveryAddress string     `gorm:"type:text"`
	TableID         *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	LineItems       []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one menu selection within an order. Line items are
// immutable after order creation, so they are only ever inserted alongside
// their order and never updated.
type LineItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey"`
	MenuID     uuid.UUID `gorm:"type:uuid"`
	Quantity   int64
	PriceCents int64
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Line items keep their request order through the seq column.
func fromDomain(aggregate *order.Order) OrderDTO {
	var tableID *uuid.UUID
	if id := aggregate.TableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	items := aggregate.LineItems()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, LineItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			Seq:        i,
			MenuID:     item.MenuID().Bytes(),
			Quantity:   item.Quantity(),
			PriceCents: item.Price().Cents(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderType:       int(aggregate.Type()),
		Status:          int(aggregate.Status()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		TableID:         tableID,
		CreatedAt:       aggregate.CreatedAt(),
		LineItems:       itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.TableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.TableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}

		tableID = &tID
	}

	sort.Slice(dto.LineItems, func(i, j int) bool {
		return dto.LineItems[i].Seq < dto.LineItems[j].Seq
	})

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		menuID, menuErr := kernel.UUIDFromBytes(itemDTO.MenuID[:])
		if menuErr != nil {
			return nil, menuErr
		}

		item, itemErr := order.NewLineItem(menuID, itemDTO.Quantity, kernel.NewMoney(itemDTO.PriceCents))
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		order.Type(dto.OrderType),
		order.Status(dto.Status),
		items,
		dto.DeliveryAddress,
		tableID,
		dto.CreatedAt,
	)
}
