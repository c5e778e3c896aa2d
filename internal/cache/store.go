package cache

import (
	"context"
	"time"
)

// ==================== Store 缓存网关 ====================

// Store 统一封装五种缓存结构（string / hash / list / zset / set）的类型化访问。
// 所有操作直接作用于共享的外部存储，不做客户端侧缓存或重试，
// 连接故障以错误形式原样抛给调用方。
type Store interface {
	// ---- String ----
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Incr(ctx context.Context, key string) (int64, error)
	Delete(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)

	// ---- Hash ----
	HSet(ctx context.Context, key, field, value string) error
	HSetAll(ctx context.Context, key string, fields map[string]string) error
	HGet(ctx context.Context, key, field string) (string, error)
	// HGetAll key 不存在时返回空 map，不报错
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HDel(ctx context.Context, key string, fields ...string) error

	// ---- List ----
	LPush(ctx context.Context, key string, values ...string) error
	RPush(ctx context.Context, key string, values ...string) error
	LPop(ctx context.Context, key string) (string, error)
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// ---- ZSet ----
	ZAdd(ctx context.Context, key, member string, score float64) error
	// ZRange 按 score 升序返回 [start, stop] 区间成员，stop 为 -1 表示取到末尾
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZCard(ctx context.Context, key string) (int64, error)
	ZRem(ctx context.Context, key string, members ...string) error

	// ---- Set ----
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
	SIsMember(ctx context.Context, key, member string) (bool, error)
}
