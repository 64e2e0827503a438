package derive

// StockStatus represents the classification of a stock level against its
// minimum threshold
type StockStatus string

const (
	// Stock statuses
	StockCritical StockStatus = "critical"
	StockLow      StockStatus = "low"
	StockOK       StockStatus = "ok"
)

// Classify maps a current stock level and its minimum threshold to a status
// tag. Zero stock is critical, anything below the minimum is low, everything
// at or above it is ok. The same rule applies to ingredients and elaborated
// products.
func Classify(current, min float64) StockStatus {
	switch {
	case current == 0:
		return StockCritical
	case current < min:
		return StockLow
	default:
		return StockOK
	}
}
