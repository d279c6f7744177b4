package http

import (
	"encoding/json"
	"io"
	"net/http"

	md5 "github.com/gyy0727/md5mini"
	"github.com/gyy0727/md5mini/pkg/ioutil"
	"github.com/gyy0727/md5mini/pkg/stats"
	"golang.org/x/time/rate"
)

const DigestPrefix = "/digest"

// *Cache 是摘要缓存的注入点,由上层应用决定怎么存(内存,buntdb 等)
type Cache interface {
	//*按键查询已缓存的摘要
	Lookup(key string) (string, bool)

	//*缓存一条键到摘要的映射
	Store(key string, digest string) error
}

// *摘要接口的应答体
type DigestResponse struct {
	Key    string `json:"key,omitempty"` //*请求里携带的缓存键
	Digest string `json:"digest"`        //*十六进制摘要
	Bytes  int64  `json:"bytes"`         //*参与散列的字节数
	Cached bool   `json:"cached"`        //*是否命中缓存
}

type DigestHandler struct {
	Cache   Cache              //*摘要缓存,可以为 nil
	Stats   *stats.ServerStats //*运行统计,可以为 nil
	Limiter *rate.Limiter      //*限流器,可以为 nil
}

// *POST /digest 对请求体做流式散列并返回摘要
// *带 ?key= 参数时先查缓存,算完后回填缓存
// *GET /digest?key= 只查缓存,不散列
func (h DigestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Limiter != nil && !h.Limiter.Allow() {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("Too many requests"))
		return
	}

	key := r.URL.Query().Get("key")

	switch r.Method {
	case http.MethodGet:
		h.serveLookup(w, key)
	case http.MethodPost, http.MethodPut:
		h.serveDigest(w, r, key)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte("Only GET, POST or PUT requests are allowed"))
	}
}

func (h DigestHandler) serveLookup(w http.ResponseWriter, key string) {
	if key == "" || h.Cache == nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing key or no cache configured"))
		return
	}
	digest, ok := h.Cache.Lookup(key)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("NOT FOUND"))
		return
	}
	if h.Stats != nil {
		h.Stats.CacheHit()
	}
	writeJSON(w, DigestResponse{Key: key, Digest: digest, Cached: true})
}

func (h DigestHandler) serveDigest(w http.ResponseWriter, r *http.Request, key string) {
	var body io.ReadCloser = r.Body
	//*声明了 Content-Length 时校验实际长度
	if r.ContentLength >= 0 {
		body = ioutil.NewExactReadCloser(r.Body, r.ContentLength)
	}

	//*把挂了散列器的读取端和原始请求体的关闭端配成一个 ReadCloser
	hasher := md5.New()
	rc := ioutil.ReaderAndCloser{
		Reader: ioutil.NewDigestReader(body, hasher),
		Closer: body,
	}
	defer rc.Close()

	n, err := io.Copy(io.Discard, rc)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Failed to read request body"))
		return
	}

	digest := hasher.Finalize(nil).Hex()
	if h.Stats != nil {
		h.Stats.DigestProduced(uint64(n))
	}
	if key != "" && h.Cache != nil {
		if err := h.Cache.Store(key, digest); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Failed to store digest"))
			return
		}
	}
	writeJSON(w, DigestResponse{Key: key, Digest: digest, Bytes: n})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
