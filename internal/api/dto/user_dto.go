package dto

// LoginForm 短信登录表单
type LoginForm struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// UserInfo 登录用户的公开信息，存入 Redis Hash，也是接口返回的用户视图
// 注意不要把手机号等敏感字段放进来
type UserInfo struct {
	ID       int64  `json:"id"`
	NickName string `json:"nickName"`
	Icon     string `json:"icon"`
}
