package feed

import "net/http"

// addFeedHeaders sets content negotiation headers for feed fetching
func addFeedHeaders(req *http.Request) {
	// accept header for feeds, xml variants first
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	// the cache layer owns freshness, intermediaries should not serve stale copies
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
}
