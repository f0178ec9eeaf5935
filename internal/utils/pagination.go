package utils

import (
	"math"
	"strconv"
)

const (
	MinPageLimit = 1
	MaxPageLimit = 50

	// MaxOffset keeps offset+limit inside int for any page number.
	MaxOffset = math.MaxInt - MaxPageLimit
)

// PageMeta is the pagination envelope returned with paginated listings.
type PageMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NormalizePage clamps page to at least 1 and limit to [MinPageLimit, MaxPageLimit].
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < MinPageLimit {
		limit = MinPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// Offset returns the number of rows to skip for a normalized page, capped at
// MaxOffset.
func Offset(page, limit int) int {
	page, limit = NormalizePage(page, limit)
	if page-1 > MaxOffset/limit {
		return MaxOffset
	}
	return (page - 1) * limit
}

// Paginate builds the envelope for total matching rows. Pages is
// ceil(total/limit), which is 0 for an empty result.
func Paginate(page, limit int, total int64) PageMeta {
	page, limit = NormalizePage(page, limit)
	if total < 0 {
		total = 0
	}
	l := int64(limit)
	return PageMeta{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: (total + l - 1) / l,
	}
}

// ParseIntOr reads a query value as an int, falling back when it is missing
// or not a number.
func ParseIntOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
