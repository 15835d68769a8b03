package cache

import (
	"context"
	"time"
)

const catalogKeyPrefix = "catalog:"

// GetCatalog 读取商品目录缓存
func GetCatalog(ctx context.Context, key string, dest interface{}) (bool, error) {
	return GetJSON(ctx, catalogKeyPrefix+key, dest)
}

// SetCatalog 写入商品目录缓存，ttl <= 0 时不写入
func SetCatalog(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return SetJSON(ctx, catalogKeyPrefix+key, value, ttl)
}
