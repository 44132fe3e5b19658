package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveGeneration(t *testing.T) {
	before := testutil.ToFloat64(generationsTotal)
	ObserveGeneration(12)
	ObserveGeneration(9)

	assert.Equal(t, before+2, testutil.ToFloat64(generationsTotal))
	assert.Equal(t, 9.0, testutil.ToFloat64(population))

	ObservePopulation(4)
	assert.Equal(t, 4.0, testutil.ToFloat64(population))
}

func TestObserveTransformAndPattern(t *testing.T) {
	before := testutil.ToFloat64(transformsTotal.WithLabelValues("rotate_cw"))
	ObserveTransform("rotate_cw")
	assert.Equal(t, before+1, testutil.ToFloat64(transformsTotal.WithLabelValues("rotate_cw")))

	ignoredBefore := testutil.ToFloat64(ignoredChars)
	ObservePattern("rle", 3)
	assert.Equal(t, ignoredBefore+3, testutil.ToFloat64(ignoredChars))
	assert.GreaterOrEqual(t, testutil.ToFloat64(patternsDecoded.WithLabelValues("rle")), 1.0)
}

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveGeneration(1)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "lifegrid_generations_total")
	assert.Contains(t, string(body), "lifegrid_population")
}
