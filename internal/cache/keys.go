package cache

import "time"

// ==================== Redis Key 常量 ====================

// Key 采用字符串拼接，不是结构化路径，与现有数据保持一致
const (
	// 短信验证码 login:code:<phone>
	LoginCodeKey = "login:code:"
	// 登录用户 Hash login:token:<token>
	LoginUserKey = "login:token:"
	// 商铺缓存 cache:shop:<id>
	CacheShopKey = "cache:shop:"
	// 商铺类型 ZSet（score 为 sort 字段）
	ShopTypeKey = "cache:shop-type"
)

// ==================== 过期时间 ====================

const (
	// 短信验证码有效期
	LoginCodeTTL = 2 * time.Minute
	// 登录态有效期（滑动过期，每次访问刷新）
	LoginUserTTL = 30 * time.Minute
)
