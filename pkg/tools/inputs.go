package tools

// PingInput has no arguments
type PingInput struct{}

// SearchInput defines arguments of the unified search tool
type SearchInput struct {
	Query     string `json:"query,omitempty" jsonschema_description:"Keyword to match against title and description (case-insensitive)"`
	Category  string `json:"category,omitempty" jsonschema_description:"Category to filter by (case-insensitive partial match, e.g. 'AKS' matches 'Azure Kubernetes Service (AKS)')"`
	Status    string `json:"status,omitempty" jsonschema:"enum=Launched,enum=In preview,enum=In development,enum=Retirements" jsonschema_description:"Status filter. Valid values: Launched, In preview, In development, Retirements" validate:"omitempty,oneof='Launched' 'In preview' 'In development' 'Retirements'"`
	StartDate string `json:"start_date,omitempty" jsonschema_description:"Start date in ISO format (YYYY-MM-DD). Only include updates published on or after this date"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"End date in ISO format (YYYY-MM-DD). Only include updates published on or before this date. Defaults to now when start_date is provided"`
	GUID      string `json:"guid,omitempty" jsonschema_description:"Unique identifier to retrieve a single specific update. When provided, all other filters are ignored"`
	Limit     *int   `json:"limit,omitempty" jsonschema:"minimum=1,maximum=100,default=10" jsonschema_description:"Maximum number of results to return (default: 10, max: 100)" validate:"omitempty,min=1,max=100"`
}

// SummarizeInput defines arguments of the unified summarize tool
type SummarizeInput struct {
	Weeks *int `json:"weeks,omitempty" jsonschema:"minimum=1,maximum=12" jsonschema_description:"Number of weeks to look back. When omitted, summarizes all available updates" validate:"omitempty,min=1,max=12"`
	TopN  *int `json:"top_n,omitempty" jsonschema:"minimum=1,maximum=50,default=10" jsonschema_description:"Number of top categories and highlighted updates to include (default: 10, max: 50)" validate:"omitempty,min=1,max=50"`
}

// ListUpdatesInput defines arguments of list_updates
type ListUpdatesInput struct {
	Limit *int `json:"limit,omitempty" jsonschema:"default=10" jsonschema_description:"Maximum number of updates to return (default: 10, max: 100)"`
}

// SearchUpdatesInput defines arguments of search_updates
type SearchUpdatesInput struct {
	Query  string `json:"query" jsonschema_description:"Search term to match against title and description (case-insensitive)" validate:"required"`
	Limit  *int   `json:"limit,omitempty" jsonschema:"default=10" jsonschema_description:"Maximum number of results to return (default: 10, max: 100)"`
	Status string `json:"status,omitempty" jsonschema_description:"Optional status filter (Launched, In preview, In development, Retirements)"`
}

// CategoryInput defines arguments of get_updates_by_category
type CategoryInput struct {
	Category string `json:"category" jsonschema_description:"Category to filter by (e.g. 'AKS' matches 'Azure Kubernetes Service (AKS)')" validate:"required"`
	Limit    *int   `json:"limit,omitempty" jsonschema:"default=10" jsonschema_description:"Maximum number of results to return (default: 10, max: 100)"`
	Status   string `json:"status,omitempty" jsonschema_description:"Optional status filter (Launched, In preview, In development, Retirements)"`
}

// StatusFeedInput defines arguments of get_previews and get_retirements
type StatusFeedInput struct {
	Limit    *int   `json:"limit,omitempty" jsonschema:"default=20" jsonschema_description:"Maximum number of results to return (default: 20, max: 100)"`
	Category string `json:"category,omitempty" jsonschema_description:"Optional category filter (case-insensitive partial match)"`
}

// DateRangeInput defines arguments of get_updates_by_date_range
type DateRangeInput struct {
	StartDate string `json:"start_date" jsonschema_description:"Start date in ISO format (YYYY-MM-DD). Includes updates from this date" validate:"required"`
	EndDate   string `json:"end_date,omitempty" jsonschema_description:"Optional end date in ISO format (YYYY-MM-DD). Defaults to now"`
	Limit     *int   `json:"limit,omitempty" jsonschema:"default=50" jsonschema_description:"Maximum number of results to return (default: 50, max: 100)"`
	Status    string `json:"status,omitempty" jsonschema_description:"Optional status filter (Launched, In preview, In development, Retirements)"`
}

// DetailsInput defines arguments of get_update_details
type DetailsInput struct {
	GUID string `json:"guid" jsonschema_description:"The unique identifier of the update" validate:"required"`
}

// PeriodInput defines arguments of get_two_week_summary
type PeriodInput struct {
	Weeks          *int `json:"weeks,omitempty" jsonschema:"default=2" jsonschema_description:"Number of weeks to look back (default: 2, range: 1-12)"`
	HighlightCount *int `json:"highlight_count,omitempty" jsonschema:"default=10" jsonschema_description:"Number of highlighted updates to include (default: 10, max: 50)"`
}

// intOr returns *v or def if v is nil
func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
