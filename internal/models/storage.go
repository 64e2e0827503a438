package models

// StorageLocation represents a physical storage area in the kitchen.
// Capacity and usage share one numeric unit per location; currentUsage is
// expected to stay at or below capacity by convention, not enforcement.
type StorageLocation struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Type         StorageLocationType `json:"type"`
	Description  string              `json:"description"`
	Capacity     float64             `json:"capacity"`
	CurrentUsage float64             `json:"currentUsage"`
	Temperature  *float64            `json:"temperature,omitempty"`
	Humidity     *float64            `json:"humidity,omitempty"`
	Icon         string              `json:"icon"`
	Color        string              `json:"color"`
}

// Utilization returns usage as a percentage of capacity, 0 for zero capacity.
func (l StorageLocation) Utilization() float64 {
	if l.Capacity <= 0 {
		return 0
	}
	return l.CurrentUsage / l.Capacity * 100
}

// StorageLocationType represents the kind of a storage location
type StorageLocationType string

const (
	// Storage location kinds
	LocationRefrigerator StorageLocationType = "refrigerator"
	LocationFreezer      StorageLocationType = "freezer"
	LocationPantry       StorageLocationType = "pantry"
	LocationDryStorage   StorageLocationType = "dry-storage"
	LocationWineCellar   StorageLocationType = "wine-cellar"
	LocationSpiceRack    StorageLocationType = "spice-rack"
)

// StorageConditions represents the environmental requirements of an item.
type StorageConditions struct {
	Temperature    *float64 `json:"temperature,omitempty"`
	Humidity       *float64 `json:"humidity,omitempty"`
	LightSensitive bool     `json:"lightSensitive"`
	Airtight       bool     `json:"airtight"`
}
