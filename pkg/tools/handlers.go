package tools

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/umputun/azupdates/pkg/domain"
	"github.com/umputun/azupdates/pkg/query"
	"github.com/umputun/azupdates/pkg/summary"
)

// SearchResponse is the result of the unified search tool
type SearchResponse struct {
	TotalFound     int                 `json:"total_found"`
	Updates        []domain.UpdateJSON `json:"updates"`
	FiltersApplied query.Filters       `json:"filters_applied"`
}

// PingResponse is the result of ping
type PingResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

func (s *Service) registerAll() {
	s.register(Tool{
		Name:        "ping",
		Description: "Check that the server is alive",
		InputSchema: inputSchema(&PingInput{}),
	}, typed(s, "ping", s.ping))

	s.register(Tool{
		Name: "azure_updates_search",
		Description: "Search, filter and retrieve Azure service updates. Combines keyword search, category and status " +
			"filters, date ranges and lookup by guid. Returns total_found, the matching updates and the filters applied.",
		InputSchema: inputSchema(&SearchInput{}),
	}, typed(s, "azure_updates_search", s.search))

	s.register(Tool{
		Name: "azure_updates_summarize",
		Description: "Summarize Azure updates: totals by status, top categories with status breakdown, date range and " +
			"most recent highlights. Optionally limited to the last N weeks.",
		InputSchema: inputSchema(&SummarizeInput{}),
	}, typed(s, "azure_updates_summarize", s.summarize))

	s.register(Tool{
		Name:        "azure_updates_list_categories",
		Description: "List all categories found in Azure updates with the number of updates in each",
		InputSchema: inputSchema(&PingInput{}),
	}, typed(s, "azure_updates_list_categories", s.listCategoriesSafe))

	s.register(Tool{
		Name:        "list_updates",
		Description: "List the most recent Azure updates",
		InputSchema: inputSchema(&ListUpdatesInput{}),
	}, typed(s, "list_updates", s.listUpdates))

	s.register(Tool{
		Name:        "search_updates",
		Description: "Search Azure updates by keyword in title and description",
		InputSchema: inputSchema(&SearchUpdatesInput{}),
	}, typed(s, "search_updates", s.searchUpdates))

	s.register(Tool{
		Name:        "get_updates_by_category",
		Description: "Get Azure updates for a category, partial names match (e.g. 'AKS', 'Compute')",
		InputSchema: inputSchema(&CategoryInput{}),
	}, typed(s, "get_updates_by_category", s.byCategory))

	s.register(Tool{
		Name:        "get_retirements",
		Description: "Get Azure retirement and deprecation notices",
		InputSchema: inputSchema(&StatusFeedInput{}),
	}, typed(s, "get_retirements", s.retirements))

	s.register(Tool{
		Name:        "get_previews",
		Description: "Get Azure features currently in preview",
		InputSchema: inputSchema(&StatusFeedInput{}),
	}, typed(s, "get_previews", s.previews))

	s.register(Tool{
		Name:        "get_updates_by_date_range",
		Description: "Get Azure updates published within a date range",
		InputSchema: inputSchema(&DateRangeInput{}),
	}, typed(s, "get_updates_by_date_range", s.byDateRange))

	s.register(Tool{
		Name:        "get_update_details",
		Description: "Get full details of a single Azure update by its guid",
		InputSchema: inputSchema(&DetailsInput{}),
	}, typed(s, "get_update_details", s.details))

	s.register(Tool{
		Name:        "list_categories",
		Description: "List all categories found in Azure updates with the number of updates in each",
		InputSchema: inputSchema(&PingInput{}),
	}, typed(s, "list_categories", s.listCategories))

	s.register(Tool{
		Name:        "get_updates_summary",
		Description: "Get an overview of all cached Azure updates: totals by status, top categories and date range",
		InputSchema: inputSchema(&PingInput{}),
	}, typed(s, "get_updates_summary", s.overview))

	s.register(Tool{
		Name:        "get_two_week_summary",
		Description: "Summarize Azure updates of the last weeks grouped by category with highlights",
		InputSchema: inputSchema(&PeriodInput{}),
	}, typed(s, "get_two_week_summary", s.lastWeeks))
}

func (s *Service) ping(_ context.Context, _ PingInput) (any, error) {
	return PingResponse{Status: "ok", Service: ServiceName, Timestamp: s.now().UTC().Format(time.RFC3339)}, nil
}

func (s *Service) search(ctx context.Context, in SearchInput) (any, error) {
	log.Printf("[DEBUG] search updates, query=%q, category=%q, status=%q, start=%q, end=%q, guid=%q",
		in.Query, in.Category, in.Status, in.StartDate, in.EndDate, in.GUID)
	updates, err := s.provider.Updates(ctx)
	if err != nil {
		log.Printf("[WARN] search failed, %v", err)
		return SearchResponse{Updates: []domain.UpdateJSON{}, FiltersApplied: query.Filters{Error: fetchFailure(err)}}, nil
	}

	res := query.Search(updates, query.Params{
		Query:     in.Query,
		Category:  in.Category,
		Status:    in.Status,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		GUID:      in.GUID,
		Limit:     intOr(in.Limit, query.DefaultListLimit),
	}, s.now())
	return SearchResponse{TotalFound: res.Total, Updates: domain.UpdatesToJSON(res.Updates), FiltersApplied: res.Filters}, nil
}

func (s *Service) summarize(ctx context.Context, in SummarizeInput) (any, error) {
	updates, err := s.provider.Updates(ctx)
	if err != nil {
		log.Printf("[WARN] summarize failed, %v", err)
		return summary.Failed(fetchFailure(err)), nil
	}
	return summary.Summarize(updates, summary.Params{Weeks: intOr(in.Weeks, 0), TopN: intOr(in.TopN, summary.DefaultTopN)}, s.now()), nil
}

func (s *Service) listCategoriesSafe(ctx context.Context, _ PingInput) (any, error) {
	updates, err := s.provider.Updates(ctx)
	if err != nil {
		log.Printf("[WARN] list categories failed, %v", err)
		return summary.CategoryList{Categories: []summary.CategoryCount{}, Error: fetchFailure(err)}, nil
	}
	return summary.Categories(updates), nil
}

func (s *Service) listUpdates(ctx context.Context, in ListUpdatesInput) (any, error) {
	updates, err := s.updates(ctx)
	if err != nil {
		return nil, err
	}
	return domain.UpdatesToJSON(query.Recent(updates, intOr(in.Limit, query.DefaultListLimit))), nil
}

func (s *Service) searchUpdates(ctx context.Context, in SearchUpdatesInput) (any, error) {
	updates, err := s.updates(ctx)
	if err != nil {
		return nil, err
	}
	return domain.UpdatesToJSON(query.Keyword(updates, in.Query, in.Status, intOr(in.Limit, query.DefaultListLimit))), nil
}

func (s *Service) byCategory(ctx context.Context, in CategoryInput) (any, error) {
	updates, err := s.updates(ctx)
	if err != nil {
		return nil, err
	}
	return domain.UpdatesToJSON(query.ByCategory(updates, in.Category, in.Status, intOr(in.Limit, query.DefaultListLimit))), nil
}

func (s *Service) retirements(ctx context.Context, in StatusFeedInput) (any, error) {
	updates, err := s.updates(ctx)
	if err != nil {
		return nil, err
	}
	return domain.UpdatesToJSON(query.Retirements(updates, in.Category, intOr(in.Limit, query.DefaultStatusLimit))), nil
}

func (s *Service) previews(ctx context.Context, in StatusFeedInput) (any, error) {
	updates, err := s.updates(ctx)
	if err != nil {
		return nil, err
	}
	return domain.UpdatesToJSON(query.Previews(updates, in.Category, intOr(in.Limit, query.DefaultStatusLimit))), nil
}

func (s *Service) byDateRange(ctx context.Context, in DateRangeInput) (any, error) {
	updates, err := s.updates(ctx)
	if err != nil {
		return nil, err
	}
	limit := intOr(in.Limit, query.DefaultDateRangeLimit)
	return domain.UpdatesToJSON(query.ByDateRange(updates, in.StartDate, in.EndDate, in.Status, limit, s.now())), nil
}

func (s *Service) details(ctx context.Context, in DetailsInput) (any, error) {
	updates, err := s.updates(ctx)
	if err != nil {
		return nil, err
	}
	u := query.Details(updates, in.GUID)
	if u == nil {
		return nil, nil
	}
	res := u.ToJSON()
	return &res, nil
}

func (s *Service) listCategories(ctx context.Context, _ PingInput) (any, error) {
	updates, err := s.updates(ctx)
	if err != nil {
		return nil, err
	}
	return summary.Categories(updates), nil
}

func (s *Service) overview(ctx context.Context, _ PingInput) (any, error) {
	updates, err := s.updates(ctx)
	if err != nil {
		return nil, err
	}
	return summary.OverviewOf(updates), nil
}

func (s *Service) lastWeeks(ctx context.Context, in PeriodInput) (any, error) {
	updates, err := s.updates(ctx)
	if err != nil {
		return nil, err
	}
	weeks := intOr(in.Weeks, summary.DefaultPeriodWeeks)
	count := intOr(in.HighlightCount, summary.DefaultTopN)
	return summary.LastWeeks(updates, weeks, count, s.now()), nil
}

// updates gets cached updates for tools reporting fetch failures as errors
func (s *Service) updates(ctx context.Context) ([]domain.Update, error) {
	updates, err := s.provider.Updates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Azure updates: %w", err)
	}
	return updates, nil
}
