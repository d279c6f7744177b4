package md5mini

import "github.com/prometheus/client_golang/prometheus"

var (
	bytesAppended = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "md5mini",
		Subsystem: "hash",
		Name:      "bytes_appended_total",
		Help:      "Total number of bytes appended into block buffers.",
	})
	blocksProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "md5mini",
		Subsystem: "hash",
		Name:      "blocks_processed_total",
		Help:      "Total number of 64-byte blocks consumed by the compression function.",
	})
	digestsFinalized = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "md5mini",
		Subsystem: "hash",
		Name:      "digests_finalized_total",
		Help:      "Total number of digests produced by finalize.",
	})
)

// *注册指标到默认注册表
func init() {
	prometheus.MustRegister(bytesAppended)
	prometheus.MustRegister(blocksProcessed)
	prometheus.MustRegister(digestsFinalized)
}
