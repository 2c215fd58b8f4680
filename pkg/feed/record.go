package feed

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/umputun/azupdates/pkg/domain"
)

// statusTitleRe matches status tags in titles like "[Launched]" or "[In preview]"
var statusTitleRe = regexp.MustCompile(`(?i)\[(Launched|In preview|In development|Retirements?)\]`)

// statusCategories are the category tags the feed uses for statuses, lowercased
var statusCategories = map[string]bool{"launched": true, "in preview": true, "in development": true, "retirements": true}

// BuildUpdate converts a raw feed entry into an update.
// A panic while assembling the entry is recovered and reported as an error,
// so a single malformed entry can be dropped without aborting the refresh.
func BuildUpdate(entry domain.Entry, now time.Time) (upd domain.Update, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("build update from entry %q: %v", entry.Title, r)
		}
	}()

	guid := entry.ID
	if guid == "" {
		guid = entry.Link
	}

	description := entry.Summary
	if description == "" {
		description = entry.Description
	}

	var categories []string
	if len(entry.Categories) > 0 {
		categories = make([]string, len(entry.Categories))
		copy(categories, entry.Categories)
	}

	return domain.Update{
		GUID:        guid,
		Title:       entry.Title,
		Link:        entry.Link,
		Description: description,
		Published:   parseDate(entry, now),
		Categories:  categories,
		Status:      ExtractStatus(entry.Title, categories),
	}, nil
}

// ExtractStatus derives the update status, the title tag wins over category tags.
// Returns nil if neither stage finds a known status.
func ExtractStatus(title string, categories []string) *domain.Status {
	if m := statusTitleRe.FindStringSubmatch(title); m != nil {
		return normalizeStatus(m[1])
	}

	for _, cat := range categories {
		if !statusCategories[strings.ToLower(strings.TrimSpace(cat))] {
			continue
		}
		if st := normalizeStatus(cat); st != nil {
			return st
		}
	}
	return nil
}

// normalizeStatus maps a status label in any casing to its canonical form.
// "In preview" and "In development" keep the lowercase second word.
func normalizeStatus(label string) *domain.Status {
	var st domain.Status
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "in preview":
		st = domain.StatusInPreview
	case "in development":
		st = domain.StatusInDevelopment
	case "launched":
		st = domain.StatusLaunched
	case "retirements", "retirement":
		st = domain.StatusRetirements
	default:
		return nil
	}
	return &st
}

// parseDate picks the publication time: published string, updated string,
// then parser-provided times, falling back to now. Strings without offset are UTC.
// Result is always UTC.
func parseDate(entry domain.Entry, now time.Time) time.Time {
	for _, s := range []string{entry.Published, entry.Updated} {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if t, err := dateparse.ParseIn(strings.TrimSpace(s), time.UTC); err == nil {
			return t.UTC()
		}
	}

	for _, t := range []*time.Time{entry.PublishedParsed, entry.UpdatedParsed} {
		if t != nil && !t.IsZero() {
			return t.UTC()
		}
	}

	return now.UTC()
}
