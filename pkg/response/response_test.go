package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
	}{
		{"exact fit", 1, 10, 30, 3},
		{"remainder adds a page", 1, 10, 31, 4},
		{"empty", 1, 10, 0, 0},
		{"single short page", 2, 25, 7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, m.Page)
			assert.Equal(t, tt.limit, m.Limit)
			assert.Equal(t, tt.total, m.Total)
			assert.Equal(t, tt.wantPages, m.TotalPages)
		})
	}
}
