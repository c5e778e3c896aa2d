package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shop_review_v1_202601/internal/model"
)

// ==================== ShopRepository 商铺仓库 ====================

// ShopRepository 商铺仓库接口
type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Shop, error)
	ListByType(ctx context.Context, typeID int64, page, pageSize int) ([]model.Shop, int64, error)
}

// ==================== 实现 ====================

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository 创建商铺仓库
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

// GetByID 根据 ID 获取商铺
func (r *shopRepository) GetByID(ctx context.Context, id int64) (*model.Shop, error) {
	var shop model.Shop
	err := r.db.WithContext(ctx).First(&shop, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// ListByType 按类型分页查询商铺
func (r *shopRepository) ListByType(ctx context.Context, typeID int64, page, pageSize int) ([]model.Shop, int64, error) {
	var shops []model.Shop
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Shop{})
	if typeID > 0 {
		query = query.Where("type_id = ?", typeID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	if err := query.Order("id ASC").Limit(pageSize).Offset(offset).Find(&shops).Error; err != nil {
		return nil, 0, err
	}
	return shops, total, nil
}
