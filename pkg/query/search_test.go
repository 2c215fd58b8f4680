package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/azupdates/pkg/domain"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func mkUpdate(guid, title, description string, published time.Time, status domain.Status, categories ...string) domain.Update {
	u := domain.Update{
		GUID:        guid,
		Title:       title,
		Link:        "https://example.com/" + guid,
		Description: description,
		Published:   published,
		Categories:  categories,
	}
	if status != "" {
		st := status
		u.Status = &st
	}
	return u
}

// testUpdates returns updates sorted newest first, the way the cache keeps them
func testUpdates() []domain.Update {
	return []domain.Update{
		mkUpdate("g1", "[Launched] AKS long term support", "LTS for Kubernetes", time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC),
			domain.StatusLaunched, "Azure Kubernetes Service (AKS)", "Compute"),
		mkUpdate("g2", "[In preview] Cosmos DB vector search", "vector indexes", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			domain.StatusInPreview, "Azure Cosmos DB", "Databases"),
		mkUpdate("g3", "Networking changes", "new gateway SKUs for AKS clusters", time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC),
			"", "Networking"),
		mkUpdate("g4", "[Retirement] Classic VMs", "migrate before deadline", time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC),
			domain.StatusRetirements, "Virtual Machines", "Compute"),
		mkUpdate("g5", "No categories update", "plain", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), domain.StatusLaunched),
	}
}

func guids(updates []domain.Update) []string {
	res := make([]string, 0, len(updates))
	for _, u := range updates {
		res = append(res, u.GUID)
	}
	return res
}

func TestSearch_GUID(t *testing.T) {
	updates := testUpdates()

	t.Run("known guid ignores other filters", func(t *testing.T) {
		res := Search(updates, Params{GUID: "g3", Status: "Launched", Category: "nope", StartDate: "bad", Limit: 1}, testNow)
		assert.Equal(t, 1, res.Total)
		assert.Equal(t, []string{"g3"}, guids(res.Updates))
		assert.Equal(t, Filters{GUID: "g3"}, res.Filters)
		assert.False(t, res.Invalid())
	})

	t.Run("unknown guid", func(t *testing.T) {
		res := Search(updates, Params{GUID: "missing", Query: "AKS"}, testNow)
		assert.Equal(t, 0, res.Total)
		assert.NotNil(t, res.Updates)
		assert.Empty(t, res.Updates)
		assert.Equal(t, Filters{GUID: "missing"}, res.Filters)
	})
}

func TestSearch_NoFilters(t *testing.T) {
	res := Search(testUpdates(), Params{Limit: 3}, testNow)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, []string{"g1", "g2", "g3"}, guids(res.Updates))
	assert.Equal(t, Filters{Note: NoFiltersNote}, res.Filters)
}

func TestSearch_Filters(t *testing.T) {
	tbl := []struct {
		name   string
		params Params
		want   []string
	}{
		{"category substring", Params{Category: "AKS"}, []string{"g1"}},
		{"category case insensitive", Params{Category: "aks"}, []string{"g1"}},
		{"category shared", Params{Category: "compute"}, []string{"g1", "g4"}},
		{"status exact case insensitive", Params{Status: "in PREVIEW"}, []string{"g2"}},
		{"status not substring", Params{Status: "Launch"}, []string{}},
		{"status skips absent", Params{Status: "Launched"}, []string{"g1", "g5"}},
		{"keyword in title", Params{Query: "cosmos"}, []string{"g2"}},
		{"keyword in title or description", Params{Query: "aks"}, []string{"g1", "g3"}},
		{"keyword does not span title and description", Params{Query: "supportlts"}, []string{}},
		{"combined", Params{Query: "aks", Category: "Networking"}, []string{"g3"}},
		{"start date inclusive from midnight", Params{StartDate: "2025-06-01"}, []string{"g1", "g2", "g3"}},
		{"end date is start of day", Params{StartDate: "2025-05-01", EndDate: "2025-06-10"}, []string{"g2", "g3", "g4", "g5"}},
		{"end date excludes later same day", Params{StartDate: "2025-06-01", EndDate: "2025-06-01"}, []string{}},
		{"end date alone", Params{EndDate: "2025-05-21"}, []string{"g4", "g5"}},
		{"date-time bounds", Params{StartDate: "2025-06-01T23:59:00", EndDate: "2025-06-14T09:00:00Z"}, []string{"g1", "g2", "g3"}},
		{"date and status", Params{StartDate: "2025-05-01", Status: "Launched"}, []string{"g1", "g5"}},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			res := Search(testUpdates(), tt.params, testNow)
			assert.Equal(t, tt.want, guids(res.Updates))
			assert.Equal(t, len(tt.want), res.Total)
			assert.False(t, res.Invalid())
		})
	}
}

func TestSearch_DefaultEndDate(t *testing.T) {
	updates := append(testUpdates(), mkUpdate("future", "from the future", "", testNow.Add(time.Hour), ""))
	res := Search(updates, Params{StartDate: "2025-06-10"}, testNow)
	assert.Equal(t, []string{"g1", "g2"}, guids(res.Updates), "end defaults to now, not end of day")
	assert.Equal(t, Filters{StartDate: "2025-06-10", EndDate: "2025-06-15"}, res.Filters)
}

func TestSearch_InvalidDates(t *testing.T) {
	t.Run("start", func(t *testing.T) {
		res := Search(testUpdates(), Params{StartDate: "not-a-date", Query: "aks"}, testNow)
		assert.True(t, res.Invalid())
		assert.Equal(t, 0, res.Total)
		assert.Empty(t, res.Updates)
		assert.Equal(t, Filters{Error: "Invalid start_date format: not-a-date"}, res.Filters)
	})

	t.Run("end", func(t *testing.T) {
		res := Search(testUpdates(), Params{StartDate: "2025-01-01", EndDate: "2025-13-40"}, testNow)
		assert.True(t, res.Invalid())
		assert.Equal(t, "Invalid end_date format: 2025-13-40", res.Filters.Error)
	})
}

func TestSearch_LimitKeepsTotal(t *testing.T) {
	updates := make([]domain.Update, 0, 40)
	for i := range 37 {
		updates = append(updates, mkUpdate(fmt.Sprintf("m%d", i), "match", "", testNow.Add(-time.Duration(i)*time.Hour), ""))
	}
	for i := range 3 {
		updates = append(updates, mkUpdate(fmt.Sprintf("x%d", i), "other", "", testNow.Add(-time.Duration(100+i)*time.Hour), ""))
	}

	res := Search(updates, Params{Query: "match", Limit: 10}, testNow)
	assert.Equal(t, 37, res.Total)
	require.Len(t, res.Updates, 10)
	assert.Equal(t, "m0", res.Updates[0].GUID)
	assert.Equal(t, Filters{Query: "match"}, res.Filters)
}

func TestParseDate(t *testing.T) {
	tbl := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2025-01-31", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), false},
		{" 2025-01-31 ", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), false},
		{"2025-01-31T10:20:30", time.Date(2025, 1, 31, 10, 20, 30, 0, time.UTC), false},
		{"2025-01-31T10:20", time.Date(2025, 1, 31, 10, 20, 0, 0, time.UTC), false},
		{"2025-01-31T10:20:30+02:00", time.Date(2025, 1, 31, 8, 20, 30, 0, time.UTC), false},
		{"not-a-date", time.Time{}, true},
		{"31/01/2025", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tbl {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}
