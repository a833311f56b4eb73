package blockindex

import "github.com/prometheus/client_golang/prometheus"

var (
	loadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "weave_index",
		Subsystem: "block_index",
		Name:      "loads_total",
		Help:      "Number of snapshots successfully loaded.",
	})
	lookupHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "weave_index",
		Subsystem: "block_index",
		Name:      "lookup_hits_total",
		Help:      "Number of height/offset lookups that resolved to a block.",
	})
	lookupMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "weave_index",
		Subsystem: "block_index",
		Name:      "lookup_misses_total",
		Help:      "Number of height/offset lookups that returned absent.",
	})
)

func init() {
	prometheus.MustRegister(loadsTotal, lookupHitsTotal, lookupMissesTotal)
}

func (idx *Index) countLookup(hit bool) {
	if hit {
		lookupHitsTotal.Inc()
	} else {
		lookupMissesTotal.Inc()
	}
}
