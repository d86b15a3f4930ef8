package shared

import (
	"indivoyage/shared/constant"
	"indivoyage/shared/dto"
	"math"
	"strconv"
	"strings"
)

const cacheKeySeparator = ":"

// CalculateTotalPage returns the number of pages needed for total items. No items means no pages.
func CalculateTotalPage(total, limit int) (res int) {
	if total <= 0 || limit <= 0 {
		return 0
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// Paginate returns the 1-based page of items. Pages past the end are empty, never nil.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = constant.DefaultValuePage
	}

	if limit <= 0 {
		limit = constant.DefaultValueLimit
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := min(start+limit, len(items))

	return items[start:end]
}

// BuildCacheKey joins the prefix and the non-empty parts into one namespaced key.
func BuildCacheKey(prefix string, parts ...string) string {
	keys := []string{prefix}

	for _, part := range parts {
		if part == constant.Empty {
			continue
		}

		keys = append(keys, strings.ReplaceAll(part, cacheKeySeparator, "_"))
	}

	return strings.Join(keys, cacheKeySeparator)
}

// BuildCacheKeyWithQuery keys a listing result by every query value that can change it.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams) string {
	return BuildCacheKey(prefix,
		"p"+strconv.Itoa(params.Page),
		"l"+strconv.Itoa(params.Limit),
		"s="+strings.ToLower(params.Search),
		"c="+params.Category,
		"r="+strings.ToLower(params.Region),
		"i="+strings.ToLower(params.Interest),
	)
}
