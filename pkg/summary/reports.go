package summary

import (
	"sort"
	"time"

	"github.com/umputun/azupdates/pkg/domain"
)

// PeriodReport groups updates of the last weeks by category
type PeriodReport struct {
	Period     Period             `json:"period"`
	TotalCount int                `json:"total_count"`
	ByStatus   map[string]int     `json:"by_status"`
	ByCategory []CategoryStats    `json:"by_category"`
	Highlights []domain.Highlight `json:"highlights"`
}

// Overview is a dashboard over all cached updates
type Overview struct {
	TotalUpdates  int             `json:"total_updates"`
	ByStatus      map[string]int  `json:"by_status"`
	TopCategories []CategoryCount `json:"top_categories"`
	DateRange     *DateRange      `json:"date_range"`
}

// CategoryCount is a category with the number of its occurrences
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryList lists all categories seen in updates
type CategoryList struct {
	TotalCategories int             `json:"total_categories"`
	Categories      []CategoryCount `json:"categories"`
	Error           string          `json:"error,omitempty"`
}

// LastWeeks reports updates of the last weeks, all categories included.
// Weeks is clamped to [1, 12] and highlightCount to [1, 50].
func LastWeeks(updates []domain.Update, weeks, highlightCount int, now time.Time) PeriodReport {
	weeks = clamp(weeks, 1, MaxWeeks)
	highlightCount = clamp(highlightCount, 1, MaxTopN)

	w := newWindow(weeks, now)
	scope := inWindow(updates, w)
	return PeriodReport{
		Period:     *w.period(),
		TotalCount: len(scope),
		ByStatus:   countStatuses(scope),
		ByCategory: categoryStats(scope),
		Highlights: highlights(scope, highlightCount),
	}
}

// OverviewOf summarizes all updates with top 10 categories
func OverviewOf(updates []domain.Update) Overview {
	res := Overview{
		TotalUpdates:  len(updates),
		ByStatus:      countStatuses(updates),
		TopCategories: categoryCounts(updates),
	}
	if len(res.TopCategories) > overviewCategoryCap {
		res.TopCategories = res.TopCategories[:overviewCategoryCap]
	}
	if len(updates) > 0 {
		oldest, newest := bounds(updates)
		res.DateRange = &DateRange{Oldest: oldest.Format(time.RFC3339), Newest: newest.Format(time.RFC3339)}
	}
	return res
}

// Categories lists every category with its count, sorted by count descending, then by name
func Categories(updates []domain.Update) CategoryList {
	cats := categoryCounts(updates)
	return CategoryList{TotalCategories: len(cats), Categories: cats}
}

func categoryCounts(updates []domain.Update) []CategoryCount {
	counts := make(map[string]int)
	for _, u := range updates {
		for _, cat := range u.Categories {
			counts[cat]++
		}
	}

	res := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		res = append(res, CategoryCount{Name: name, Count: count})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return res[i].Name < res[j].Name
	})
	return res
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
