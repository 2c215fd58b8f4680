package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/azupdates/pkg/domain"
)

// Parser fetches a feed over HTTP and parses it into raw entries
type Parser struct {
	client    *http.Client
	userAgent string
}

// NewParser creates a new feed parser. Timeout bounds the whole request, body read included.
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch retrieves the feed from the given URL and returns its entries in document order
func (p *Parser) Fetch(ctx context.Context, url string) ([]domain.Entry, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	entries := make([]domain.Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		entries = append(entries, p.toEntry(item))
	}
	return entries, nil
}

// toEntry maps a gofeed item to an entry, keeping optional fields empty when missing.
// Text is kept as published, html is sanitized only when rendered.
func (p *Parser) toEntry(item *gofeed.Item) domain.Entry {
	entry := domain.Entry{
		ID:              item.GUID,
		Link:            item.Link,
		Title:           item.Title,
		Summary:         item.Description,
		Description:     item.Content,
		Published:       item.Published,
		Updated:         item.Updated,
		PublishedParsed: item.PublishedParsed,
		UpdatedParsed:   item.UpdatedParsed,
	}
	if len(item.Categories) > 0 {
		entry.Categories = append([]string(nil), item.Categories...)
	}
	return entry
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addFeedHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
