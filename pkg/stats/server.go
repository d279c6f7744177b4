package stats

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatsPrefix   = "/stats"
	MetricsPrefix = "/metrics"
)

// *Handler 返回挂载了统计接口的处理器
// */stats 输出 JSON 快照,/metrics 输出 prometheus 指标
func Handler(ss Stats) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(StatsPrefix, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(ss.SelfStats())
	})
	mux.Handle(MetricsPrefix, promhttp.Handler())
	return mux
}
