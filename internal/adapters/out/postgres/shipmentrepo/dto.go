// Package shipmentrepo provides data transfer objects and mapping
// functions for shipment persistence, plus the single-row id counter the
// registry allocates identifiers from.
package shipmentrepo

import (
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Ids come from the counter table, never from the database's
// own sequence, so autoIncrement is disabled.
type ShipmentDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false"`
	Status   int    `gorm:"not null"`
	Location string `gorm:"type:varchar(100);not null"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// counterRowID is the fixed key of the single counter row.
const counterRowID = int64(1)

// CounterDTO is the single-row monotonic id counter. NextID holds the id
// the next successful creation will receive, starting at 1.
type CounterDTO struct {
	ID     int64 `gorm:"primaryKey;autoIncrement:false"`
	NextID int64 `gorm:"not null"`
}

// TableName specifies the database table name for the id counter.
func (CounterDTO) TableName() string {
	return "shipment_counter"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:       int64(aggregate.ID()),
		Status:   int(aggregate.Status()),
		Location: aggregate.Location().String(),
	}
}

// toDomain converts a database DTO to a shipment aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	location, err := kernel.NewLocation(dto.Location)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		kernel.ShipmentID(dto.ID),
		shipment.Status(dto.Status),
		location,
	)
}
