package server

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/umputun/azupdates/pkg/query"
)

const defaultRSSLimit = 50

// rssHandler re-exports cached updates as RSS, filtered by query, category and status params
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	updates, err := s.updates.Updates(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get updates for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusBadGateway)
		return
	}

	q := r.URL.Query()
	params := query.Params{
		Query:    q.Get("query"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Limit:    defaultRSSLimit,
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			params.Limit = query.ClampLimit(limit)
		}
	}

	res := query.Search(updates, params, timeNow())
	rss, err := s.generator.GenerateRSS(res.Updates, rssFilter(params), r.URL.RequestURI())
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// rssFilter describes applied filters for the channel title
func rssFilter(p query.Params) string {
	parts := make([]string, 0, 3)
	if p.Status != "" {
		parts = append(parts, p.Status)
	}
	if p.Category != "" {
		parts = append(parts, p.Category)
	}
	if p.Query != "" {
		parts = append(parts, strconv.Quote(p.Query))
	}
	return strings.Join(parts, ", ")
}
