package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRefresh(100*time.Millisecond, nil)
	c.RecordRefresh(200*time.Millisecond, nil)
	c.RecordRefresh(time.Second, errors.New("timeout"))
	c.RecordCacheHit()
	c.RecordDroppedEntries(3)

	assert.InDelta(t, 2, testutil.ToFloat64(c.refreshSuccess), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(c.refreshFail), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(c.cacheHits), 0.001)
	assert.InDelta(t, 3, testutil.ToFloat64(c.droppedEntries), 0.001)
	assert.Equal(t, 1, testutil.CollectAndCount(c.refreshLatency))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordCacheHit()

	ts := httptest.NewServer(Handler(reg))
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "azupdates_cache_hits_total 1")
	assert.Contains(t, string(body), "azupdates_feed_refresh_latency_seconds_bucket")
}
