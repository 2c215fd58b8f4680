package domain

import "time"

// Status is a rollout stage of an announced update
type Status string

const (
	StatusLaunched      Status = "Launched"
	StatusInPreview     Status = "In preview"
	StatusInDevelopment Status = "In development"
	StatusRetirements   Status = "Retirements"
)

// StatusUnknown is the bucket label for updates without a status in aggregations
const StatusUnknown = "Unknown"

// Statuses lists all canonical status values
var Statuses = []Status{StatusLaunched, StatusInPreview, StatusInDevelopment, StatusRetirements}

// Update represents one normalized announcement from the feed.
// Updates are built once per feed refresh and never modified afterwards.
type Update struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Published   time.Time // always UTC
	Categories  []string  // in feed order, duplicates preserved
	Status      *Status   // nil if no status could be derived
}

// StatusLabel returns the status as a string, or "Unknown" when absent
func (u Update) StatusLabel() string {
	if u.Status == nil {
		return StatusUnknown
	}
	return string(*u.Status)
}

// HasStatus checks if the update has a status
func (u Update) HasStatus() bool {
	return u.Status != nil
}

// Entry is a raw feed entry as delivered by the feed parser.
// Every field is optional, empty strings and nil times mean "not provided".
type Entry struct {
	ID              string
	Link            string
	Title           string
	Summary         string
	Description     string
	Published       string
	Updated         string
	PublishedParsed *time.Time
	UpdatedParsed   *time.Time
	Categories      []string
}
