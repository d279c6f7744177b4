package main

import (
	"log"

	"github.com/tidwall/buntdb"
)

// *digestCache 用 buntdb 保存键到摘要的映射,实现 pkg/http 的 Cache 接口
type digestCache struct {
	db *buntdb.DB //*存储的键值对
}

func newDigestCache(path string) *digestCache {
	conn, err := buntdb.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	return &digestCache{db: conn}
}

// *查找键对应的摘要
func (c *digestCache) Lookup(key string) (string, bool) {
	var digest string
	err := c.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err != nil {
			return err
		}
		digest = v
		return nil
	})
	if err != nil {
		return "", false
	}
	return digest, true
}

// *写入一条键到摘要的映射
func (c *digestCache) Store(key string, digest string) error {
	return c.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, digest, nil)
		return err
	})
}

func (c *digestCache) Close() error {
	return c.db.Close()
}
