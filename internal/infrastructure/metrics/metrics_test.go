package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersOnInjectedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SetPages(3)
	m.AddBlits(2)
	m.SetCacheCapacity(CacheTotal, 1024)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Pages))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Blits))
	assert.Equal(t, 1024.0, testutil.ToFloat64(m.CacheCapacity.WithLabelValues(CacheTotal)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNew_TwoInstancesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}

func TestNilMetrics_IsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SetPages(1)
		m.SetFrames(1)
		m.AddDamageSpans(1)
		m.AddBlits(1)
		m.SetCacheCapacity(CacheDisk, 1)
		m.IncBlocked()
		m.IncLastPageClosed()
		m.IncIPC("x", "sync")
	})
}
