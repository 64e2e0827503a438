package store

// Namespaced persistence keys, one per collection. The layout matches the
// dashboard's saved state: every key maps to one JSON document.
const (
	KeyChefs        = "kitchen-chefs"
	KeyIngredients  = "kitchen-ingredients"
	KeyLocations    = "kitchen-storage-locations"
	KeyProducts     = "kitchen-elaborated-products"
	KeyBatches      = "kitchen-production-batches"
	KeyConsumptions = "kitchen-consumption-records"
	KeyShopping     = "kitchen-shopping"
	KeyBudget       = "kitchen-budget"
	KeyDismissed    = "kitchen-dismissed-alerts"
)

// Backend persists one JSON document per namespaced key. Load returns
// (nil, nil) for a key that has never been saved; callers treat that as
// "no data" and fall back to an empty collection.
type Backend interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}
