package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/azupdates/pkg/domain"
	"github.com/umputun/azupdates/pkg/query"
)

var errInvalidLimit = errors.New("limit must be between 1 and 100")

// timeNow is replaced in tests
var timeNow = time.Now

// statusHandler returns server status with cache state
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    timeNow().UTC(),
	}
	if fetched := s.updates.FetchedAt(); !fetched.IsZero() {
		status["cache_fetched_at"] = fetched.UTC()
	}
	renderJSON(w, r, http.StatusOK, status)
}

// searchResponse mirrors the search tool result
type searchResponse struct {
	TotalFound     int                 `json:"total_found"`
	Updates        []domain.UpdateJSON `json:"updates"`
	FiltersApplied query.Filters       `json:"filters_applied"`
}

// searchHandler runs a search with the same filters as the search tool, passed as query params
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	updates, err := s.updates.Updates(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get updates: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	q := r.URL.Query()
	params := query.Params{
		Query:     q.Get("query"),
		Category:  q.Get("category"),
		Status:    q.Get("status"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		GUID:      q.Get("guid"),
		Limit:     query.DefaultListLimit,
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > query.MaxLimit {
			renderError(w, r, errInvalidLimit, http.StatusBadRequest)
			return
		}
		params.Limit = limit
	}

	res := query.Search(updates, params, timeNow())
	code := http.StatusOK
	if res.Invalid() {
		code = http.StatusBadRequest
	}
	renderJSON(w, r, code, searchResponse{
		TotalFound:     res.Total,
		Updates:        domain.UpdatesToJSON(res.Updates),
		FiltersApplied: res.Filters,
	})
}

// refreshHandler forces the cache to reload the feed
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	updates, err := s.updates.Refresh(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to refresh feed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"updates": len(updates), "fetched_at": s.updates.FetchedAt().UTC()})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
