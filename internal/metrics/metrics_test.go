package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveImport(t *testing.T) {
	c := registry()
	before := testutil.ToFloat64(c.importRows.WithLabelValues(RowDuplicate))

	ObserveImport("created", 3, 1, 2)

	assert.Equal(t, before+2, testutil.ToFloat64(c.importRows.WithLabelValues(RowDuplicate)))
	assert.GreaterOrEqual(t, testutil.ToFloat64(c.importRequests.WithLabelValues("created")), 1.0)
}

func TestObserveImpactView(t *testing.T) {
	c := registry()
	before := testutil.ToFloat64(c.impactViews.WithLabelValues("not_found"))
	ObserveImpactView(false)
	assert.Equal(t, before+1, testutil.ToFloat64(c.impactViews.WithLabelValues("not_found")))
}

func TestObserveHTTP(t *testing.T) {
	ObserveHTTP("GET", "/impact/:token", 200, 15*time.Millisecond)
	c := registry()
	assert.GreaterOrEqual(t, testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/impact/:token", "200")), 1.0)
}
