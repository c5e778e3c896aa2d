package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"shop_review_v1_202601/internal/cache"
	"shop_review_v1_202601/internal/model"
	"shop_review_v1_202601/internal/repository"
)

// ==================== ShopService 商铺服务 ====================

// ShopService 商铺服务：旁路缓存读
type ShopService struct {
	shopRepo repository.ShopRepository
	cache    cache.Store
}

// NewShopService 创建商铺服务
func NewShopService(shopRepo repository.ShopRepository, cacheStore cache.Store) *ShopService {
	return &ShopService{shopRepo: shopRepo, cache: cacheStore}
}

// GetByID 查询商铺详情
// 先查 cache:shop:<id>，未命中则回源数据库并回填缓存。
// 回填不设 TTL，与数据库的一致性依赖缓存被动淘汰。
// 并发未命中时可能重复回源，回填内容为同一行的确定性序列化，幂等
func (s *ShopService) GetByID(ctx context.Context, id int64) (*model.Shop, error) {
	key := cache.CacheShopKey + strconv.FormatInt(id, 10)

	shopJSON, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if shopJSON != "" {
		var shop model.Shop
		if err := json.Unmarshal([]byte(shopJSON), &shop); err != nil {
			return nil, err
		}
		return &shop, nil
	}

	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}

	data, err := json.Marshal(shop)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, string(data)); err != nil {
		return nil, err
	}
	return shop, nil
}

// ListByType 按类型分页浏览商铺，直接走数据库，不过缓存
func (s *ShopService) ListByType(ctx context.Context, typeID int64, page, pageSize int) ([]model.Shop, int64, error) {
	return s.shopRepo.ListByType(ctx, typeID, page, pageSize)
}

// ==================== 错误定义 ====================

var ErrShopNotFound = errors.New("店铺不存在！")
