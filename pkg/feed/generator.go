package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/azupdates/pkg/domain"
)

// Generator creates RSS feeds from updates
type Generator struct {
	baseURL string
	policy  *bluemonday.Policy
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		policy:  bluemonday.UGCPolicy(),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed from updates. Filter is a human readable
// description of the selection, empty for the unfiltered feed.
func (g *Generator) GenerateRSS(updates []domain.Update, filter, selfPath string) (string, error) {
	title := "Azure Updates"
	description := "Azure service updates"
	if filter != "" {
		title = fmt.Sprintf("Azure Updates - %s", filter)
		description = fmt.Sprintf("Azure service updates matching %s", filter)
	}

	rssItems := make([]*RSSItem, 0, len(updates))
	for _, u := range updates {
		rssItems = append(rssItems, g.convertToRSSItem(u))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   description,
			AtomLink:      &AtomLink{Href: g.baseURL + selfPath, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().UTC().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts an update to an RSS item, status goes first in categories
func (g *Generator) convertToRSSItem(u domain.Update) *RSSItem {
	categories := make([]string, 0, len(u.Categories)+1)
	if u.HasStatus() && !containsFold(u.Categories, u.StatusLabel()) {
		categories = append(categories, u.StatusLabel())
	}
	categories = append(categories, u.Categories...)

	return &RSSItem{
		Title:       u.Title,
		Link:        u.Link,
		GUID:        u.GUID,
		Description: g.policy.Sanitize(u.Description),
		PubDate:     u.Published.Format(time.RFC1123Z),
		Categories:  categories,
	}
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
