// Package summary aggregates cached updates into dashboard statistics
package summary

import (
	"sort"
	"time"

	"github.com/umputun/azupdates/pkg/domain"
)

// limits and defaults for summaries
const (
	DefaultTopN         = 10
	MaxTopN             = 50
	MaxWeeks            = 12
	DefaultPeriodWeeks  = 2
	overviewCategoryCap = 10
)

// Params defines summarize scope. Weeks == 0 means all cached updates.
type Params struct {
	Weeks int
	TopN  int
}

// Result is the summarize outcome
type Result struct {
	TotalUpdates  int                `json:"total_updates"`
	ByStatus      map[string]int     `json:"by_status"`
	TopCategories []CategoryStats    `json:"top_categories"`
	DateRange     *DateRange         `json:"date_range"`
	Highlights    []domain.Highlight `json:"highlights"`
}

// CategoryStats counts updates in a category with per-status breakdown
type CategoryStats struct {
	Category string         `json:"category"`
	Count    int            `json:"count"`
	Statuses map[string]int `json:"statuses"`
}

// DateRange reports the oldest and newest update in scope and the time window, if any.
// With a window and nothing in scope it is the window itself, start, end and weeks.
type DateRange struct {
	Oldest string  `json:"oldest,omitempty"`
	Newest string  `json:"newest,omitempty"`
	Period *Period `json:"period,omitempty"`
	Start  string  `json:"start,omitempty"`
	End    string  `json:"end,omitempty"`
	Weeks  int     `json:"weeks,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Period is a look-back window
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Weeks int    `json:"weeks"`
}

// window is a closed time interval
type window struct {
	start, end time.Time
	weeks      int
}

func newWindow(weeks int, now time.Time) window {
	end := now.UTC()
	return window{start: end.Add(-time.Duration(weeks) * 7 * 24 * time.Hour), end: end, weeks: weeks}
}

func (w window) contains(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

func (w window) period() *Period {
	return &Period{Start: w.start.Format(domain.DateLayout), End: w.end.Format(domain.DateLayout), Weeks: w.weeks}
}

// Summarize computes statistics over updates, restricted to the last p.Weeks weeks if set.
// p.TopN limits both top categories and highlights, 0 means default.
func Summarize(updates []domain.Update, p Params, now time.Time) Result {
	topN := p.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	scope := updates
	var period *Period
	if p.Weeks > 0 {
		w := newWindow(p.Weeks, now)
		scope = inWindow(updates, w)
		period = w.period()
	}

	res := Result{
		TotalUpdates:  len(scope),
		ByStatus:      countStatuses(scope),
		TopCategories: truncate(categoryStats(scope), topN),
		Highlights:    highlights(scope, topN),
	}

	switch {
	case len(scope) > 0:
		oldest, newest := bounds(scope)
		res.DateRange = &DateRange{Oldest: oldest.Format(time.RFC3339), Newest: newest.Format(time.RFC3339), Period: period}
	case period != nil:
		res.DateRange = &DateRange{Start: period.Start, End: period.End, Weeks: period.Weeks}
	}
	return res
}

// Failed returns an empty summarize result carrying the error message
func Failed(msg string) Result {
	return Result{
		ByStatus:      map[string]int{},
		TopCategories: []CategoryStats{},
		DateRange:     &DateRange{Error: msg},
		Highlights:    []domain.Highlight{},
	}
}

func inWindow(updates []domain.Update, w window) []domain.Update {
	res := make([]domain.Update, 0, len(updates))
	for _, u := range updates {
		if w.contains(u.Published) {
			res = append(res, u)
		}
	}
	return res
}

// countStatuses counts updates per status, absent status counted as "Unknown"
func countStatuses(updates []domain.Update) map[string]int {
	res := make(map[string]int)
	for _, u := range updates {
		res[u.StatusLabel()]++
	}
	return res
}

// categoryStats counts every category occurrence with status breakdown,
// sorted by count descending, then by name
func categoryStats(updates []domain.Update) []CategoryStats {
	idx := make(map[string]int)
	res := make([]CategoryStats, 0)
	for _, u := range updates {
		for _, cat := range u.Categories {
			i, ok := idx[cat]
			if !ok {
				i = len(res)
				idx[cat] = i
				res = append(res, CategoryStats{Category: cat, Statuses: make(map[string]int)})
			}
			res[i].Count++
			res[i].Statuses[u.StatusLabel()]++
		}
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return res[i].Category < res[j].Category
	})
	return res
}

func truncate(stats []CategoryStats, n int) []CategoryStats {
	if len(stats) > n {
		return stats[:n]
	}
	return stats
}

// highlights picks the n most recent updates
func highlights(updates []domain.Update, n int) []domain.Highlight {
	recent := make([]domain.Update, len(updates))
	copy(recent, updates)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Published.After(recent[j].Published) })
	if len(recent) > n {
		recent = recent[:n]
	}

	res := make([]domain.Highlight, 0, len(recent))
	for _, u := range recent {
		res = append(res, u.ToHighlight())
	}
	return res
}

// bounds returns the oldest and newest publication time, updates must not be empty
func bounds(updates []domain.Update) (oldest, newest time.Time) {
	oldest, newest = updates[0].Published, updates[0].Published
	for _, u := range updates[1:] {
		if u.Published.Before(oldest) {
			oldest = u.Published
		}
		if u.Published.After(newest) {
			newest = u.Published
		}
	}
	return oldest, newest
}
