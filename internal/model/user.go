package model

// User 用户表
type User struct {
	BaseModel
	// 手机号，登录唯一凭证
	Phone string `gorm:"size:11;uniqueIndex;not null" json:"phone"`
	// 密码（短信登录场景下可为空）
	Password string `gorm:"size:128" json:"-"`
	// 昵称，默认随机生成
	NickName string `gorm:"size:32" json:"nickName"`
	// 头像地址
	Icon string `gorm:"size:255" json:"icon"`
}

func (User) TableName() string {
	return "tb_user"
}
