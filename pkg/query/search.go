// Package query implements filtering of cached updates. Search is the single
// engine, the other functions are presets of it kept for the simple tools.
package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/azupdates/pkg/domain"
)

// NoFiltersNote is reported in filters echo when search was called without filters
const NoFiltersNote = "No filters applied, returning most recent updates"

// Params defines search filters, empty values are not applied.
// Limit <= 0 means no limit.
type Params struct {
	Query     string
	Category  string
	Status    string
	StartDate string
	EndDate   string
	GUID      string
	Limit     int
}

// Filters echoes the filters applied by a search
type Filters struct {
	Query     string `json:"query,omitempty"`
	Category  string `json:"category,omitempty"`
	Status    string `json:"status,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	GUID      string `json:"guid,omitempty"`
	Note      string `json:"note,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Result is a search outcome. Total is the number of matches before the limit.
type Result struct {
	Total   int
	Updates []domain.Update
	Filters Filters
}

// Invalid reports if the search was rejected because of bad parameters
func (r Result) Invalid() bool {
	return r.Filters.Error != ""
}

// Search filters updates by all given params, keeping the input order.
// GUID lookup ignores every other filter. Bad dates produce an empty result
// with Filters.Error set.
func Search(updates []domain.Update, p Params, now time.Time) Result {
	if p.GUID != "" {
		return lookup(updates, p.GUID)
	}

	m, err := newMatcher(p, now)
	if err != nil {
		msg := err.Error()
		var de *DateError
		if errors.As(err, &de) {
			msg = fmt.Sprintf("Invalid %s format: %s", de.Field, de.Value)
		}
		return Result{Updates: []domain.Update{}, Filters: Filters{Error: msg}}
	}

	matched := make([]domain.Update, 0)
	for _, u := range updates {
		if m.match(u) {
			matched = append(matched, u)
		}
	}

	res := Result{Total: len(matched), Updates: matched, Filters: m.echo(p)}
	if p.Limit > 0 && len(matched) > p.Limit {
		res.Updates = matched[:p.Limit]
	}
	return res
}

// Find returns the update with exact guid match
func Find(updates []domain.Update, guid string) (domain.Update, bool) {
	for _, u := range updates {
		if u.GUID == guid {
			return u, true
		}
	}
	return domain.Update{}, false
}

func lookup(updates []domain.Update, guid string) Result {
	res := Result{Updates: []domain.Update{}, Filters: Filters{GUID: guid}}
	if u, ok := Find(updates, guid); ok {
		res.Total = 1
		res.Updates = []domain.Update{u}
	}
	return res
}

// DateError reports a date filter that could not be parsed
type DateError struct {
	Field string
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid %s format: %q", e.Field, e.Value)
}

// matcher holds prepared, lowercased filter values
type matcher struct {
	query    string
	category string
	status   string
	start    *time.Time
	end      *time.Time
}

func newMatcher(p Params, now time.Time) (*matcher, error) {
	m := &matcher{
		query:    strings.ToLower(p.Query),
		category: strings.ToLower(p.Category),
		status:   strings.ToLower(p.Status),
	}

	if p.StartDate != "" {
		start, err := ParseDate(p.StartDate)
		if err != nil {
			return nil, &DateError{Field: "start_date", Value: p.StartDate}
		}
		m.start = &start
	}

	switch {
	case p.EndDate != "":
		end, err := ParseDate(p.EndDate)
		if err != nil {
			return nil, &DateError{Field: "end_date", Value: p.EndDate}
		}
		m.end = &end
	case m.start != nil:
		end := now.UTC()
		m.end = &end
	}

	return m, nil
}

func (m *matcher) match(u domain.Update) bool {
	if m.status != "" && (!u.HasStatus() || strings.ToLower(string(*u.Status)) != m.status) {
		return false
	}

	if m.category != "" && !MatchCategory(u.Categories, m.category) {
		return false
	}

	if m.start != nil && u.Published.Before(*m.start) {
		return false
	}
	if m.end != nil && u.Published.After(*m.end) {
		return false
	}

	if m.query != "" &&
		!strings.Contains(strings.ToLower(u.Title), m.query) &&
		!strings.Contains(strings.ToLower(u.Description), m.query) {
		return false
	}

	return true
}

// echo builds filters summary, end date is reported even when defaulted to now
func (m *matcher) echo(p Params) Filters {
	f := Filters{
		Query:     p.Query,
		Category:  p.Category,
		Status:    p.Status,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
	}
	if f.EndDate == "" && m.end != nil {
		f.EndDate = m.end.Format(domain.DateLayout)
	}
	if f == (Filters{}) {
		f.Note = NoFiltersNote
	}
	return f
}

// MatchCategory checks if lowercased needle is a substring of any category
func MatchCategory(categories []string, needle string) bool {
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c), needle) {
			return true
		}
	}
	return false
}

// dateLayouts are accepted ISO forms for date bounds, plain date first
var dateLayouts = []string{domain.DateLayout, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

// ParseDate parses an ISO date or date-time. Plain dates and date-times
// without offset are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
