package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/azupdates/pkg/domain"
	"github.com/umputun/azupdates/pkg/tools/mocks"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func mkUpdate(guid, title string, published time.Time, status domain.Status, categories ...string) domain.Update {
	u := domain.Update{GUID: guid, Title: title, Link: "https://example.com/" + guid, Description: title + " details",
		Published: published, Categories: categories}
	if status != "" {
		st := status
		u.Status = &st
	}
	return u
}

func testUpdates() []domain.Update {
	return []domain.Update{
		mkUpdate("g1", "AKS long term support", time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC),
			domain.StatusLaunched, "Azure Kubernetes Service (AKS)", "Compute"),
		mkUpdate("g2", "Cosmos DB vector search", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			domain.StatusInPreview, "Azure Cosmos DB", "Databases"),
		mkUpdate("g3", "Networking changes", time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC), "", "Networking"),
		mkUpdate("g4", "Classic VMs", time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC),
			domain.StatusRetirements, "Virtual Machines", "Compute"),
		mkUpdate("g5", "AKS preview feature", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			domain.StatusInPreview, "Azure Kubernetes Service (AKS)"),
	}
}

func newTestService(updates []domain.Update, err error) (*Service, *mocks.UpdatesProviderMock) {
	provider := &mocks.UpdatesProviderMock{
		UpdatesFunc: func(ctx context.Context) ([]domain.Update, error) { return updates, err },
	}
	svc := NewService(provider)
	svc.now = func() time.Time { return testNow }
	return svc, provider
}

// call invokes a tool and returns its result re-decoded from JSON
func call(t *testing.T, svc *Service, name, args string) any {
	t.Helper()
	res, err := svc.Call(context.Background(), name, json.RawMessage(args))
	require.NoError(t, err)
	data, err := json.Marshal(res)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func guidsOf(t *testing.T, v any) []string {
	t.Helper()
	list, ok := v.([]any)
	require.True(t, ok, "expected list, got %T", v)
	res := make([]string, 0, len(list))
	for _, item := range list {
		res = append(res, item.(map[string]any)["guid"].(string))
	}
	return res
}

func TestService_Tools(t *testing.T) {
	svc, _ := newTestService(nil, nil)
	names := make([]string, 0)
	for _, tool := range svc.Tools() {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
		require.NotNil(t, tool.InputSchema, tool.Name)
		assert.Equal(t, "object", tool.InputSchema.Type, tool.Name)
	}
	assert.ElementsMatch(t, []string{"ping", "azure_updates_search", "azure_updates_summarize",
		"azure_updates_list_categories", "list_updates", "search_updates", "get_updates_by_category",
		"get_retirements", "get_previews", "get_updates_by_date_range", "get_update_details", "list_categories",
		"get_updates_summary", "get_two_week_summary"}, names)
}

func TestService_InputSchema(t *testing.T) {
	svc, _ := newTestService(nil, nil)
	var search, details Tool
	for _, tool := range svc.Tools() {
		switch tool.Name {
		case "azure_updates_search":
			search = tool
		case "get_update_details":
			details = tool
		}
	}

	data, err := json.Marshal(search.InputSchema)
	require.NoError(t, err)
	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	props := schema["properties"].(map[string]any)
	assert.Len(t, props, 7)
	limit := props["limit"].(map[string]any)
	assert.InDelta(t, 1, limit["minimum"], 0)
	assert.InDelta(t, 100, limit["maximum"], 0)
	status := props["status"].(map[string]any)
	assert.Equal(t, []any{"Launched", "In preview", "In development", "Retirements"}, status["enum"])
	assert.Empty(t, schema["required"])
	assert.NotContains(t, string(data), "$schema")

	assert.Equal(t, []string{"guid"}, details.InputSchema.Required)
}

func TestService_CallUnknown(t *testing.T) {
	svc, _ := newTestService(nil, nil)
	_, err := svc.Call(context.Background(), "nope", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestService_Ping(t *testing.T) {
	svc, provider := newTestService(nil, nil)
	res := call(t, svc, "ping", "")
	assert.Equal(t, map[string]any{"status": "ok", "service": "azure-updates-mcp", "timestamp": "2025-06-15T12:00:00Z"}, res)
	assert.Empty(t, provider.UpdatesCalls(), "ping should not touch the feed")
}

func TestService_Search(t *testing.T) {
	svc, _ := newTestService(testUpdates(), nil)

	t.Run("no filters", func(t *testing.T) {
		res := call(t, svc, "azure_updates_search", "{}").(map[string]any)
		assert.InDelta(t, 5, res["total_found"], 0)
		assert.Len(t, res["updates"], 5)
		assert.Equal(t, map[string]any{"note": "No filters applied, returning most recent updates"}, res["filters_applied"])
	})

	t.Run("category and status with limit", func(t *testing.T) {
		res := call(t, svc, "azure_updates_search", `{"category":"aks","status":"In preview","limit":1}`).(map[string]any)
		assert.InDelta(t, 1, res["total_found"], 0)
		assert.Equal(t, []string{"g5"}, guidsOf(t, res["updates"]))
		assert.Equal(t, map[string]any{"category": "aks", "status": "In preview"}, res["filters_applied"])
	})

	t.Run("total counts before limit", func(t *testing.T) {
		res := call(t, svc, "azure_updates_search", `{"category":"compute","limit":1}`).(map[string]any)
		assert.InDelta(t, 2, res["total_found"], 0)
		assert.Equal(t, []string{"g1"}, guidsOf(t, res["updates"]))
	})

	t.Run("start date defaults end to today", func(t *testing.T) {
		res := call(t, svc, "azure_updates_search", `{"start_date":"2025-06-01"}`).(map[string]any)
		assert.Equal(t, []string{"g1", "g2", "g3"}, guidsOf(t, res["updates"]))
		assert.Equal(t, map[string]any{"start_date": "2025-06-01", "end_date": "2025-06-15"}, res["filters_applied"])
	})

	t.Run("bad date", func(t *testing.T) {
		res := call(t, svc, "azure_updates_search", `{"start_date":"yesterday"}`).(map[string]any)
		assert.InDelta(t, 0, res["total_found"], 0)
		assert.Equal(t, []any{}, res["updates"])
		assert.Equal(t, map[string]any{"error": "Invalid start_date format: yesterday"}, res["filters_applied"])
	})

	t.Run("guid lookup", func(t *testing.T) {
		res := call(t, svc, "azure_updates_search", `{"guid":"g4","status":"Launched"}`).(map[string]any)
		assert.Equal(t, []string{"g4"}, guidsOf(t, res["updates"]))
		upd := res["updates"].([]any)[0].(map[string]any)
		assert.Equal(t, "Retirements", upd["status"])
		assert.Equal(t, "2025-05-20T08:00:00Z", upd["pub_date"])
		assert.Equal(t, map[string]any{"guid": "g4"}, res["filters_applied"])
	})
}

func TestService_SearchValidation(t *testing.T) {
	svc, provider := newTestService(testUpdates(), nil)
	tbl := []struct {
		name, args, reason string
	}{
		{"limit too big", `{"limit":101}`, "limit: max=100"},
		{"limit zero", `{"limit":0}`, "limit: min=1"},
		{"status not in enum", `{"status":"launched"}`, "status: oneof"},
		{"wrong type", `{"limit":"ten"}`, "cannot unmarshal"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Call(context.Background(), "azure_updates_search", json.RawMessage(tt.args))
			require.Error(t, err)
			var ierr *InputError
			require.ErrorAs(t, err, &ierr)
			assert.Equal(t, "azure_updates_search", ierr.Tool)
			assert.Contains(t, ierr.Reason, tt.reason)
		})
	}
	assert.Empty(t, provider.UpdatesCalls())
}

func TestService_SearchFetchFailure(t *testing.T) {
	svc, _ := newTestService(nil, errors.New("connection refused"))
	res := call(t, svc, "azure_updates_search", `{"query":"aks"}`).(map[string]any)
	assert.InDelta(t, 0, res["total_found"], 0)
	assert.Equal(t, []any{}, res["updates"])
	assert.Equal(t, map[string]any{"error": "Failed to fetch Azure updates: connection refused"}, res["filters_applied"])
}

func TestService_Summarize(t *testing.T) {
	svc, _ := newTestService(testUpdates(), nil)

	t.Run("all updates", func(t *testing.T) {
		res := call(t, svc, "azure_updates_summarize", "{}").(map[string]any)
		assert.InDelta(t, 5, res["total_updates"], 0)
		assert.Equal(t, map[string]any{"Launched": 1.0, "In preview": 2.0, "Retirements": 1.0, "Unknown": 1.0}, res["by_status"])
		dr := res["date_range"].(map[string]any)
		assert.Equal(t, "2025-04-01T00:00:00Z", dr["oldest"])
		assert.Equal(t, "2025-06-14T09:00:00Z", dr["newest"])
		assert.NotContains(t, dr, "period")
		assert.Len(t, res["highlights"], 5)
	})

	t.Run("last two weeks, top 1", func(t *testing.T) {
		res := call(t, svc, "azure_updates_summarize", `{"weeks":2,"top_n":1}`).(map[string]any)
		assert.InDelta(t, 3, res["total_updates"], 0)
		assert.Len(t, res["top_categories"], 1)
		assert.Len(t, res["highlights"], 1)
		period := res["date_range"].(map[string]any)["period"].(map[string]any)
		assert.Equal(t, map[string]any{"start": "2025-06-01", "end": "2025-06-15", "weeks": 2.0}, period)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := svc.Call(context.Background(), "azure_updates_summarize", json.RawMessage(`{"weeks":13}`))
		var ierr *InputError
		require.ErrorAs(t, err, &ierr)
		assert.Contains(t, ierr.Error(), "weeks: max=12")

		_, err = svc.Call(context.Background(), "azure_updates_summarize", json.RawMessage(`{"top_n":51}`))
		require.ErrorAs(t, err, &ierr)
		assert.Contains(t, ierr.Error(), "top_n: max=50")
	})
}

func TestService_SummarizeFetchFailure(t *testing.T) {
	svc, _ := newTestService(nil, errors.New("timeout"))
	res := call(t, svc, "azure_updates_summarize", `{"weeks":1}`).(map[string]any)
	assert.InDelta(t, 0, res["total_updates"], 0)
	assert.Equal(t, map[string]any{}, res["by_status"])
	assert.Equal(t, []any{}, res["top_categories"])
	assert.Equal(t, []any{}, res["highlights"])
	assert.Equal(t, map[string]any{"error": "Failed to fetch Azure updates: timeout"}, res["date_range"])
}

func TestService_LegacyTools(t *testing.T) {
	svc, _ := newTestService(testUpdates(), nil)

	tbl := []struct {
		tool, args string
		want       []string
	}{
		{"list_updates", `{}`, []string{"g1", "g2", "g3", "g4", "g5"}},
		{"list_updates", `{"limit":2}`, []string{"g1", "g2"}},
		{"list_updates", `{"limit":-5}`, []string{"g1"}},
		{"list_updates", `{"limit":500}`, []string{"g1", "g2", "g3", "g4", "g5"}},
		{"search_updates", `{"query":"aks"}`, []string{"g1", "g5"}},
		{"search_updates", `{"query":"AKS","status":"Launched"}`, []string{"g1"}},
		{"get_updates_by_category", `{"category":"compute"}`, []string{"g1", "g4"}},
		{"get_updates_by_category", `{"category":"kubernetes","status":"In preview"}`, []string{"g5"}},
		{"get_retirements", `{}`, []string{"g4"}},
		{"get_retirements", `{"category":"databases"}`, []string{}},
		{"get_previews", `{}`, []string{"g2", "g5"}},
		{"get_previews", `{"category":"cosmos","limit":0}`, []string{"g2"}},
		{"get_updates_by_date_range", `{"start_date":"2025-05-01","end_date":"2025-06-02"}`, []string{"g3", "g4"}},
		{"get_updates_by_date_range", `{"start_date":"2025-06-02"}`, []string{"g1", "g2"}},
		{"get_updates_by_date_range", `{"start_date":"bad-date"}`, []string{}},
	}
	for _, tt := range tbl {
		t.Run(tt.tool+" "+tt.args, func(t *testing.T) {
			assert.Equal(t, tt.want, guidsOf(t, call(t, svc, tt.tool, tt.args)))
		})
	}
}

func TestService_LegacyRequiredArgs(t *testing.T) {
	svc, _ := newTestService(testUpdates(), nil)
	for _, name := range []string{"search_updates", "get_updates_by_category", "get_updates_by_date_range", "get_update_details"} {
		_, err := svc.Call(context.Background(), name, json.RawMessage(`{}`))
		var ierr *InputError
		require.ErrorAs(t, err, &ierr, name)
		assert.Contains(t, ierr.Reason, "required", name)
	}
}

func TestService_UpdateDetails(t *testing.T) {
	svc, _ := newTestService(testUpdates(), nil)

	res := call(t, svc, "get_update_details", `{"guid":"g3"}`).(map[string]any)
	assert.Equal(t, "g3", res["guid"])
	assert.Nil(t, res["status"])
	assert.Equal(t, []any{"Networking"}, res["categories"])

	assert.Nil(t, call(t, svc, "get_update_details", `{"guid":"missing"}`))
}

func TestService_Categories(t *testing.T) {
	svc, _ := newTestService(testUpdates(), nil)
	for _, name := range []string{"list_categories", "azure_updates_list_categories"} {
		res := call(t, svc, name, "").(map[string]any)
		assert.InDelta(t, 6, res["total_categories"], 0, name)
		cats := res["categories"].([]any)
		require.Len(t, cats, 6, name)
		assert.Equal(t, map[string]any{"name": "Azure Kubernetes Service (AKS)", "count": 2.0}, cats[0], name)
		assert.Equal(t, map[string]any{"name": "Compute", "count": 2.0}, cats[1], name)
		assert.Equal(t, map[string]any{"name": "Azure Cosmos DB", "count": 1.0}, cats[2], name)
		assert.NotContains(t, res, "error")
	}
}

func TestService_Reports(t *testing.T) {
	svc, _ := newTestService(testUpdates(), nil)

	t.Run("overview", func(t *testing.T) {
		res := call(t, svc, "get_updates_summary", "").(map[string]any)
		assert.InDelta(t, 5, res["total_updates"], 0)
		assert.Equal(t, map[string]any{"oldest": "2025-04-01T00:00:00Z", "newest": "2025-06-14T09:00:00Z"}, res["date_range"])
	})

	t.Run("two weeks default", func(t *testing.T) {
		res := call(t, svc, "get_two_week_summary", "{}").(map[string]any)
		assert.InDelta(t, 3, res["total_count"], 0)
		assert.Equal(t, map[string]any{"start": "2025-06-01", "end": "2025-06-15", "weeks": 2.0}, res["period"])
		assert.Len(t, res["highlights"], 3)
	})

	t.Run("weeks clamped", func(t *testing.T) {
		res := call(t, svc, "get_two_week_summary", `{"weeks":100,"highlight_count":0}`).(map[string]any)
		assert.InDelta(t, 12, res["period"].(map[string]any)["weeks"], 0)
		assert.InDelta(t, 5, res["total_count"], 0)
		assert.Len(t, res["highlights"], 1)
	})
}

func TestService_LegacyFetchFailure(t *testing.T) {
	svc, _ := newTestService(nil, errors.New("boom"))

	_, err := svc.Call(context.Background(), "list_updates", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch Azure updates: boom")

	res := call(t, svc, "azure_updates_list_categories", "").(map[string]any)
	assert.Equal(t, map[string]any{"total_categories": 0.0, "categories": []any{},
		"error": "Failed to fetch Azure updates: boom"}, res)
}
