package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, 10, 0},
		{"negative", -3, -1, 1, 10, 0},
		{"plain", 3, 20, 3, 20, 40},
		{"capped limit", 1, 500, 1, 100, 0},
		{"second page default limit", 2, 0, 2, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, window := NormalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantLimit, window.Limit)
			assert.Equal(t, tt.wantOffset, window.Offset)
		})
	}
}
