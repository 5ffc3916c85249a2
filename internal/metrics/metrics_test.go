package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, m *Metrics, name string) *dto.MetricFamily {
	t.Helper()

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	t.Fatalf("métrica %s não encontrada", name)
	return nil
}

func TestObserveRun(t *testing.T) {
	m := New()
	completedAt := time.Date(2024, 1, 16, 11, 0, 0, 0, time.UTC)

	m.ObserveRun(nil, completedAt)
	m.ObserveRun(errors.New("falhou"), completedAt)
	m.ObserveRun(errors.New("falhou de novo"), completedAt)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Runs.WithLabelValues(ResultFailure)))
	assert.Equal(t, float64(completedAt.Unix()), testutil.ToFloat64(m.LastSuccess))
}

func TestObserveStep(t *testing.T) {
	m := New()

	m.ObserveStep("extract_data", 2*time.Second, nil)
	m.ObserveStep("send_report", time.Second, errors.New("telegram fora do ar"))
	m.ObserveAttempt()
	m.ObserveAttempt()

	assert.Equal(t, 0.0, testutil.ToFloat64(m.StepFailures.WithLabelValues("extract_data")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StepFailures.WithLabelValues("send_report")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunAttempts))

	family := findFamily(t, m, "reportbot_step_duration_seconds")
	require.Len(t, family.GetMetric(), 2)
	for _, metric := range family.GetMetric() {
		assert.Equal(t, uint64(1), metric.GetHistogram().GetSampleCount())
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveAttempt()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), "reportbot_run_attempts_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
