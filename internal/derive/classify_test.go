package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		min     float64
		want    StockStatus
	}{
		{"zero stock is critical", 0, 5, StockCritical},
		{"below minimum is low", 1, 5, StockLow},
		{"just under minimum is low", 4.99, 5, StockLow},
		{"exactly at minimum is ok", 5, 5, StockOK},
		{"above minimum is ok", 12, 5, StockOK},
		{"zero stock with zero minimum is still critical", 0, 0, StockCritical},
		{"positive stock with zero minimum is ok", 3, 0, StockOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.current, tt.min))
		})
	}
}
