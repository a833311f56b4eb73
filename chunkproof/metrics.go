package chunkproof

import "github.com/prometheus/client_golang/prometheus"

var (
	validateTxPathTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "weave_index",
		Subsystem: "chunk_proof",
		Name:      "validate_tx_path_total",
		Help:      "Number of successful tx_path validations.",
	})
	validateDataPathTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "weave_index",
		Subsystem: "chunk_proof",
		Name:      "validate_data_path_total",
		Help:      "Number of successful data_path validations.",
	})
)

func init() {
	prometheus.MustRegister(validateTxPathTotal, validateDataPathTotal)
}
