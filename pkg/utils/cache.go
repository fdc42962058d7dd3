package utils

import (
	"sync"
	"time"
)

// 使用 sync.Map 保证并发安全
var (
	datasetCache sync.Map
)

// cacheItem 内部结构，包含值和过期时间
type cacheItem struct {
	value      []byte
	expiration int64
}

// SetCache 写入缓存
// key: 数据集 URL
// value: 下载的原始字节（CSV / CSV.GZ）
func SetCache(key string, value []byte, ttl time.Duration) {
	exp := time.Now().Add(ttl).Unix()

	datasetCache.Store(key, cacheItem{
		value:      value,
		expiration: exp,
	})
}

// GetCache 读取缓存并校验是否过期
func GetCache(key string) ([]byte, bool) {
	val, ok := datasetCache.Load(key)
	if !ok {
		return nil, false
	}

	item := val.(cacheItem)

	// 检查是否过期
	if time.Now().Unix() > item.expiration {
		datasetCache.Delete(key) // 懒删除
		return nil, false
	}

	return item.value, true
}

// DeleteCache 删除缓存
func DeleteCache(key string) {
	datasetCache.Delete(key)
}
