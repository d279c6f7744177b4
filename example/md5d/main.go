package main

import (
	"flag"

	digesthttp "github.com/gyy0727/md5mini/pkg/http"
	"github.com/gyy0727/md5mini/pkg/stats"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:9121", "listen address")
	dbpath := flag.String("db", ":memory:", "path to the digest cache database")
	maxconns := flag.Int("maxconns", 128, "max concurrent connections")
	ratelimit := flag.Float64("rate", 0, "digest requests per second, 0 for unlimited")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cache := newDigestCache(*dbpath)
	defer cache.Close()

	svc := &digesthttp.Service{
		Addr:      *addr,
		MaxConns:  *maxconns,
		RateLimit: rate.Limit(*ratelimit),
		Burst:     16,
		Cache:     cache,
		Stats:     &stats.ServerStats{Name: "md5d"},
	}

	logger.Info("md5d starting", zap.String("addr", *addr), zap.String("db", *dbpath))
	if err := svc.Start(); err != nil {
		logger.Fatal("md5d server stopped", zap.Error(err))
	}
}
