package repository

import (
	"context"

	"gorm.io/gorm"

	"shop_review_v1_202601/internal/model"
)

// ==================== ShopTypeRepository 商铺类型仓库 ====================

// ShopTypeRepository 商铺类型仓库接口
type ShopTypeRepository interface {
	// ListOrderedBySort 按 sort 字段升序返回全部类型
	ListOrderedBySort(ctx context.Context) ([]model.ShopType, error)
}

// ==================== 实现 ====================

type shopTypeRepository struct {
	db *gorm.DB
}

// NewShopTypeRepository 创建商铺类型仓库
func NewShopTypeRepository(db *gorm.DB) ShopTypeRepository {
	return &shopTypeRepository{db: db}
}

// ListOrderedBySort 按 sort 升序查询全部类型
func (r *shopTypeRepository) ListOrderedBySort(ctx context.Context) ([]model.ShopType, error) {
	var types []model.ShopType
	err := r.db.WithContext(ctx).Order("sort ASC").Find(&types).Error
	return types, err
}
