package stats

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	logger, _ = zap.NewDevelopment()
)

type Stats interface {
	//*返回服务自身的统计信息
	SelfStats() []byte
}

// *ServerStats 记录摘要服务的运行统计
type ServerStats struct {
	Name      string    `json:"name"`      //*服务名称
	StartTime time.Time `json:"startTime"` //*服务启动时间

	DigestCnt   uint64 `json:"digestCnt"`   //*已产出的摘要计数
	BytesHashed uint64 `json:"bytesHashed"` //*已散列的字节总数
	CacheHitCnt uint64 `json:"cacheHitCnt"` //*摘要缓存命中计数

	sync.Mutex
}

// *初始化 ServerStats,重置启动时间和各项计数
func (ss *ServerStats) Initialize() {
	if ss == nil {
		return
	}
	ss.StartTime = time.Now()
}

// *记录一次摘要产出
func (ss *ServerStats) DigestProduced(nbytes uint64) {
	ss.Lock()
	defer ss.Unlock()
	ss.DigestCnt++
	ss.BytesHashed += nbytes
}

// *记录一次缓存命中
func (ss *ServerStats) CacheHit() {
	ss.Lock()
	defer ss.Unlock()
	ss.CacheHitCnt++
}

// *将 ServerStats 结构体序列化为 JSON 格式
func (ss *ServerStats) SelfStats() []byte {
	ss.Lock()
	stats := *ss
	ss.Unlock()
	b, err := json.Marshal(&stats)
	if err != nil {
		logger.Error("stats: error marshalling server stats", zap.Error(err))
	}
	return b
}
