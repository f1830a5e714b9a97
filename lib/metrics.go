package lib

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	contigsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mgbin_contigs_loaded",
			Help: "Number of contigs that passed the length cutoff in the current run.",
		},
	)
	distancePairsComputed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mgbin_distance_pairs_computed_total",
			Help: "Total number of contig pairs whose fused distance was computed.",
		},
	)
	distanceCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mgbin_distance_cache_hits_total",
			Help: "Number of runs that reused a saved distance matrix.",
		},
	)
	distanceCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mgbin_distance_cache_misses_total",
			Help: "Number of runs that had to recompute the distance matrix.",
		},
	)
	binsMade = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mgbin_bins_made",
			Help: "Number of bins accepted by the last extraction.",
		},
	)
	phaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mgbin_phase_duration_seconds",
			Help:    "Duration of core creation phases.",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
		},
		[]string{"phase"},
	)
)

func init() {
	prometheus.MustRegister(contigsLoaded)
	prometheus.MustRegister(distancePairsComputed)
	prometheus.MustRegister(distanceCacheHits)
	prometheus.MustRegister(distanceCacheMisses)
	prometheus.MustRegister(binsMade)
	prometheus.MustRegister(phaseDuration)
}
