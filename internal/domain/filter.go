package domain

import (
	"math"
	"time"
)

// HistoryFilter narrows a user's prediction history. Nil fields do not
// constrain the result.
type HistoryFilter struct {
	Disease   *string
	PlantType *string
	// Search matches disease, plant type or plant name, case-insensitively.
	Search   *string
	DateFrom *time.Time
	DateTo   *time.Time
}

// Page is one page of a filtered result set. Total counts the whole
// filtered set, not only Data.
type Page[T any] struct {
	Data     []T `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Offset returns the number of rows preceding a 1-based page. It saturates
// at math.MaxInt instead of overflowing, so a page far past the end still
// reads as empty.
func Offset(page, pageSize int) int {
	if page < 1 || pageSize < 1 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}
