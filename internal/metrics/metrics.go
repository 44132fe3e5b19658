// Package metrics exposes Prometheus collectors for a running board.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	generationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifegrid_generations_total",
		Help: "Generations evolved since start.",
	})

	population = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lifegrid_population",
		Help: "Populated cells after the last change.",
	})

	transformsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifegrid_transforms_total",
		Help: "Geometric transforms applied, by operation.",
	}, []string{"op"})

	patternsDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifegrid_patterns_decoded_total",
		Help: "Pattern files decoded, by format.",
	}, []string{"format"})

	ignoredChars = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifegrid_pattern_ignored_chars_total",
		Help: "Characters skipped while decoding RLE patterns.",
	})
)

// ObserveGeneration records one evolve and the resulting population.
func ObserveGeneration(pop int) {
	generationsTotal.Inc()
	population.Set(float64(pop))
}

// ObservePopulation records the population after an edit or transform.
func ObservePopulation(pop int) {
	population.Set(float64(pop))
}

// ObserveTransform counts a transform by name.
func ObserveTransform(op string) {
	transformsTotal.WithLabelValues(op).Inc()
}

// ObservePattern counts a decoded pattern and the characters it skipped.
func ObservePattern(format string, ignored int) {
	patternsDecoded.WithLabelValues(format).Inc()
	ignoredChars.Add(float64(ignored))
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
