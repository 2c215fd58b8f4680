package domain

import "time"

// UpdateJSON is the wire representation of an update
type UpdateJSON struct {
	GUID        string   `json:"guid"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	PubDate     string   `json:"pub_date"`
	Categories  []string `json:"categories"`
	Status      *string  `json:"status"`
}

// Highlight is a compact projection of an update used in summaries
type Highlight struct {
	Title      string   `json:"title"`
	Link       string   `json:"link"`
	Status     *string  `json:"status"`
	Date       string   `json:"date"`
	Categories []string `json:"categories"`
}

// DateLayout is the calendar date format used on the wire
const DateLayout = "2006-01-02"

// ToJSON converts update to its wire representation
func (u Update) ToJSON() UpdateJSON {
	return UpdateJSON{
		GUID:        u.GUID,
		Title:       u.Title,
		Link:        u.Link,
		Description: u.Description,
		PubDate:     u.Published.Format(time.RFC3339),
		Categories:  nonNilStrings(u.Categories),
		Status:      u.statusPtr(),
	}
}

// ToHighlight converts update to a highlight projection
func (u Update) ToHighlight() Highlight {
	return Highlight{
		Title:      u.Title,
		Link:       u.Link,
		Status:     u.statusPtr(),
		Date:       u.Published.Format(DateLayout),
		Categories: nonNilStrings(u.Categories),
	}
}

// UpdatesToJSON converts a list of updates to wire representation, never nil
func UpdatesToJSON(updates []Update) []UpdateJSON {
	res := make([]UpdateJSON, 0, len(updates))
	for _, u := range updates {
		res = append(res, u.ToJSON())
	}
	return res
}

func (u Update) statusPtr() *string {
	if u.Status == nil {
		return nil
	}
	s := string(*u.Status)
	return &s
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
