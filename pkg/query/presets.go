package query

import (
	"time"

	"github.com/umputun/azupdates/pkg/domain"
)

// MaxLimit is the upper bound for the number of returned updates
const MaxLimit = 100

// default limits of the preset queries
const (
	DefaultListLimit      = 10
	DefaultStatusLimit    = 20
	DefaultDateRangeLimit = 50
)

// ClampLimit forces limit into [1, MaxLimit]
func ClampLimit(limit int) int {
	return Clamp(limit, 1, MaxLimit)
}

// Clamp forces v into [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Recent returns the most recent updates
func Recent(updates []domain.Update, limit int) []domain.Update {
	return Search(updates, Params{Limit: ClampLimit(limit)}, time.Time{}).Updates
}

// Keyword returns updates with query in title or description, optionally with given status
func Keyword(updates []domain.Update, query, status string, limit int) []domain.Update {
	return Search(updates, Params{Query: query, Status: status, Limit: ClampLimit(limit)}, time.Time{}).Updates
}

// ByCategory returns updates with a category containing the given one, optionally with given status
func ByCategory(updates []domain.Update, category, status string, limit int) []domain.Update {
	return Search(updates, Params{Category: category, Status: status, Limit: ClampLimit(limit)}, time.Time{}).Updates
}

// Previews returns updates in preview, optionally limited to a category
func Previews(updates []domain.Update, category string, limit int) []domain.Update {
	p := Params{Status: string(domain.StatusInPreview), Category: category, Limit: ClampLimit(limit)}
	return Search(updates, p, time.Time{}).Updates
}

// Retirements returns retirement notices, optionally limited to a category
func Retirements(updates []domain.Update, category string, limit int) []domain.Update {
	p := Params{Status: string(domain.StatusRetirements), Category: category, Limit: ClampLimit(limit)}
	return Search(updates, p, time.Time{}).Updates
}

// ByDateRange returns updates published between start and end, end defaults to now.
// Bad dates give an empty list.
func ByDateRange(updates []domain.Update, start, end, status string, limit int, now time.Time) []domain.Update {
	if start == "" {
		return []domain.Update{}
	}
	p := Params{StartDate: start, EndDate: end, Status: status, Limit: ClampLimit(limit)}
	return Search(updates, p, now).Updates
}

// Details returns the update with the given guid, nil if not found
func Details(updates []domain.Update, guid string) *domain.Update {
	if guid == "" {
		return nil
	}
	res := Search(updates, Params{GUID: guid}, time.Time{})
	if res.Total == 0 {
		return nil
	}
	return &res.Updates[0]
}
