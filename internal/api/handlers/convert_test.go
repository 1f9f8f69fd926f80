package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPagination(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 0, 1, 10},
		{"explicit values", 2, 25, 2, 25},
		{"per_page capped", 1, 500, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := defaultPagination(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(1, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 5, totalPages(41, 10))
}

func TestTimeOrZero(t *testing.T) {
	assert.True(t, timeOrZero(nil).IsZero())

	now := time.Now()
	assert.Equal(t, now, timeOrZero(&now))
}
