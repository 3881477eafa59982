package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	c := New()

	c.RecordEvent("checklist.submitted")
	c.RecordEvent("checklist.submitted")
	c.CallOpened("corrective", "high")
	c.LoginFailed()
	c.ObserveInspection(2.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.events.WithLabelValues("checklist.submitted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.callsOpened.WithLabelValues("corrective", "high")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.loginFailures))
	assert.Equal(t, 1, testutil.CollectAndCount(c.inspectionScore))
}

func TestScrapeTimeGauges(t *testing.T) {
	c := New()
	open := 3
	require.NoError(t, c.RegisterOpenCalls(func() int { return open }))
	require.NoError(t, c.RegisterLifecycle(func() map[string]int {
		return map[string]int{"expired": 2, "new": 5}
	}))

	expected := `
# HELP gym_equipment_lifecycle Equipment count by lifecycle status.
# TYPE gym_equipment_lifecycle gauge
gym_equipment_lifecycle{status="expired"} 2
gym_equipment_lifecycle{status="new"} 5
# HELP gym_technical_calls_open Technical calls not yet resolved.
# TYPE gym_technical_calls_open gauge
gym_technical_calls_open 3
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected),
		"gym_equipment_lifecycle", "gym_technical_calls_open"))

	open = 4
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(strings.Replace(expected, "gym_technical_calls_open 3", "gym_technical_calls_open 4", 1)),
		"gym_equipment_lifecycle", "gym_technical_calls_open"))
}

func TestHandler(t *testing.T) {
	c := New()
	c.RecordEvent("equipment.created")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `gym_domain_events_total{event="equipment.created"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
