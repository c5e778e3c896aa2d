package service

import (
	"context"
	"encoding/json"
	"errors"

	"shop_review_v1_202601/internal/cache"
	"shop_review_v1_202601/internal/model"
	"shop_review_v1_202601/internal/repository"
)

// ==================== ShopTypeService 商铺类型服务 ====================

// ShopTypeService 商铺类型服务：ZSet 旁路缓存
type ShopTypeService struct {
	typeRepo repository.ShopTypeRepository
	cache    cache.Store
}

// NewShopTypeService 创建商铺类型服务
func NewShopTypeService(typeRepo repository.ShopTypeRepository, cacheStore cache.Store) *ShopTypeService {
	return &ShopTypeService{typeRepo: typeRepo, cache: cacheStore}
}

// List 查询全部商铺类型，按 sort 升序
// 缓存结构为 ZSet，score 取 sort 字段，因此 ZRange 的顺序与数据库
// ORDER BY sort ASC 一致。sort 重复时顺序由 Redis 的平局规则决定
func (s *ShopTypeService) List(ctx context.Context) ([]model.ShopType, error) {
	members, err := s.cache.ZRange(ctx, cache.ShopTypeKey, 0, -1)
	if err != nil {
		return nil, err
	}
	if len(members) > 0 {
		types := make([]model.ShopType, 0, len(members))
		for _, member := range members {
			var t model.ShopType
			if err := json.Unmarshal([]byte(member), &t); err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		return types, nil
	}

	types, err := s.typeRepo.ListOrderedBySort(ctx)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, ErrShopTypeNotFound
	}

	for _, t := range types {
		data, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		if err := s.cache.ZAdd(ctx, cache.ShopTypeKey, string(data), float64(t.Sort)); err != nil {
			return nil, err
		}
	}
	return types, nil
}

// ==================== 错误定义 ====================

var ErrShopTypeNotFound = errors.New("分类不存在！")
