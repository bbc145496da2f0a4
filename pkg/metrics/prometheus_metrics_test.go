package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewPrometheusMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	namespace := "ravl"
	subsystem := "index"

	metrics := NewPrometheusMetrics(registry, namespace, subsystem)

	assert.NotNil(t, metrics)
	assert.NotNil(t, metrics.OperationsTotal)
	assert.NotNil(t, metrics.Keys)
	assert.NotNil(t, metrics.Height)

	metrics.OperationsTotal.WithLabelValues("insert", "added").Inc()
	metrics.Keys.Set(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues("insert", "added")))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.Keys))

	count, err := testutil.GatherAndCount(registry)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
