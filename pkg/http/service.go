package http

import (
	"net"
	"net/http"
	"time"

	"github.com/gyy0727/md5mini/pkg/stats"
	"golang.org/x/net/netutil"
	"golang.org/x/time/rate"
)

// *Service 把摘要接口和统计接口装配成一个 HTTP 服务
type Service struct {
	Addr      string             //*监听地址
	MaxConns  int                //*并发连接上限,0 表示不限制
	RateLimit rate.Limit         //*摘要接口的限流速率,0 表示不限流
	Burst     int                //*限流器的突发容量
	Cache     Cache              //*摘要缓存
	Stats     *stats.ServerStats //*运行统计

	srv *http.Server
}

// *组装路由
func (s *Service) Handler() http.Handler {
	var limiter *rate.Limiter
	if s.RateLimit > 0 {
		burst := s.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(s.RateLimit, burst)
	}

	mux := http.NewServeMux()
	mux.Handle(DigestPrefix, DigestHandler{
		Cache:   s.Cache,
		Stats:   s.Stats,
		Limiter: limiter,
	})
	statsHandler := stats.Handler(s.Stats)
	mux.Handle(stats.StatsPrefix, statsHandler)
	mux.Handle(stats.MetricsPrefix, statsHandler)
	return mux
}

// *开始监听并一直服务到出错
// *MaxConns 大于0时用 netutil.LimitListener 封住并发连接数
func (s *Service) Start() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	if s.MaxConns > 0 {
		ln = netutil.LimitListener(ln, s.MaxConns)
	}

	s.Stats.Initialize()
	s.srv = &http.Server{
		Handler:     s.Handler(),
		ReadTimeout: 30 * time.Second,
	}
	return s.srv.Serve(ln)
}

// *停止服务
func (s *Service) Stop() error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Close()
}
