package domain

import "github.com/google/uuid"

// TableStatus represents the floor status of a table
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
	TableOccupied  TableStatus = "occupied"
)

// Table represents a physical table of a restaurant
type Table struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Capacity     int
	Status       TableStatus
}

// IsOffered returns true if the table can be assigned to new reservations
func (t *Table) IsOffered() bool {
	return t.Status == TableAvailable
}

// Fits returns true if the table seats partySize guests
func (t *Table) Fits(partySize int) bool {
	return t.Capacity >= partySize
}
