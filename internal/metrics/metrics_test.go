package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorsRegistered(t *testing.T) {
	UsersCreated.Inc()
	HTTPRequests.WithLabelValues("GET", "/", "200").Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["exercise_tracker_users_created_total"])
	assert.True(t, names["exercise_tracker_http_requests_total"])
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(ExercisesLogged)
	ExercisesLogged.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ExercisesLogged))

	before = testutil.ToFloat64(EventsPublished.WithLabelValues("ok"))
	EventsPublished.WithLabelValues("ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(EventsPublished.WithLabelValues("ok")))
}
