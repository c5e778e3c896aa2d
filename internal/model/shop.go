package model

// Shop 商铺表
type Shop struct {
	BaseModel
	// 商铺名称
	Name string `gorm:"size:128;not null" json:"name"`
	// 商铺类型 ID
	TypeID int64 `gorm:"index" json:"typeId"`
	// 商铺图片，多张以 "," 分隔
	Images string `gorm:"size:1024" json:"images"`
	// 商圈，如陆家嘴
	Area string `gorm:"size:32" json:"area"`
	// 详细地址
	Address string `gorm:"size:255" json:"address"`
	// 经度
	X float64 `json:"x"`
	// 纬度
	Y float64 `json:"y"`
	// 均价，单位分
	AvgPrice int64 `json:"avgPrice"`
	// 销量
	Sold int `json:"sold"`
	// 评论数量
	Comments int `json:"comments"`
	// 评分 1~5 分，乘 10 保存，避免小数
	Score int `json:"score"`
	// 营业时间，如 10:00-22:00
	OpenHours string `gorm:"size:32" json:"openHours"`
}

func (Shop) TableName() string {
	return "tb_shop"
}
