package shared_test

import (
	"indivoyage/shared"
	"indivoyage/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "no items", total: 0, limit: 6, expected: 0},
		{name: "exact multiple", total: 12, limit: 6, expected: 2},
		{name: "partial last page", total: 7, limit: 6, expected: 2},
		{name: "fewer than one page", total: 3, limit: 8, expected: 1},
		{name: "invalid limit", total: 10, limit: 0, expected: 0},
		{name: "negative total", total: -1, limit: 6, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name     string
		page     int
		limit    int
		expected []int
	}{
		{name: "first page", page: 1, limit: 6, expected: []int{1, 2, 3, 4, 5, 6}},
		{name: "last page holds remainder", page: 2, limit: 6, expected: []int{7}},
		{name: "past the end", page: 3, limit: 6, expected: []int{}},
		{name: "page zero means first", page: 0, limit: 3, expected: []int{1, 2, 3}},
		{name: "default limit", page: 1, limit: 0, expected: items},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Paginate(items, tt.page, tt.limit))
		})
	}

	assert.NotNil(t, shared.Paginate([]string(nil), 1, 6))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
	assert.Equal(t, "limiter:127.0.0.1:curl/8.0", shared.BuildCacheKey("limiter", "127.0.0.1", "", "curl/8.0"))
	assert.Equal(t, "limiter:[__1]_8080", shared.BuildCacheKey("limiter", "[::1]:8080"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 6, Search: "Goa", Category: "beaches"}

	assert.Equal(t, "offer:get_all:p2:l6:s=goa:c=beaches:r=:i=", shared.BuildCacheKeyWithQuery("offer:get_all", params))
	assert.NotEqual(t,
		shared.BuildCacheKeyWithQuery("offer:get_all", params),
		shared.BuildCacheKeyWithQuery("offer:get_all", dto.QueryParams{Page: 3, Limit: 6, Search: "Goa", Category: "beaches"}),
	)
	assert.NotEqual(t,
		shared.BuildCacheKeyWithQuery("offer:get_all", params),
		shared.BuildCacheKeyWithQuery("offer:get_all", dto.QueryParams{Page: 2, Limit: 6, Search: "Goa", Category: "Beaches"}),
	)
}
