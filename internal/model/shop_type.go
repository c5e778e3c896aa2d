package model

// ShopType 商铺类型表
type ShopType struct {
	BaseModel
	// 类型名称
	Name string `gorm:"size:32;not null" json:"name"`
	// 图标
	Icon string `gorm:"size:255" json:"icon"`
	// 排序值，越小越靠前
	Sort int `gorm:"index" json:"sort"`
}

func (ShopType) TableName() string {
	return "tb_shop_type"
}
