package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_review_v1_202601/internal/api/dto"
	"shop_review_v1_202601/internal/session"
)

// ==================== Context Keys ====================

const (
	ContextKeyUser = "login_user"
)

// ==================== Gin 中间件 ====================

// RefreshToken Token 刷新中间件，注册为第一个全局中间件。
// 从 authorization 头解析 Token，能解析到登录态就把用户信息写入
// 请求级 Context 并刷新有效期；解析不到也放行，由 LoginRequired
// 决定是否拦截。处理链结束后无条件清理 Context，异常路径也会执行
func RefreshToken(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 处理结束后清除用户信息，防止串到后续复用同一执行槽的请求
		defer c.Set(ContextKeyUser, nil)

		token := c.GetHeader("authorization")
		if token == "" {
			c.Next()
			return
		}

		user, ok, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			// 缓存不可用属于致命故障，直接 500，不做降级
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if !ok {
			c.Next()
			return
		}

		c.Set(ContextKeyUser, user)
		if err := sessions.Renew(c.Request.Context(), token); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Next()
	}
}

// LoginRequired 登录校验中间件，挂在需要登录的路由组上。
// 未登录返回 401，无响应体
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUser(c) == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

// ==================== 辅助函数 ====================

// GetUser 从 Context 获取当前登录用户，未登录返回 nil
func GetUser(c *gin.Context) *dto.UserInfo {
	if val, exists := c.Get(ContextKeyUser); exists {
		if user, ok := val.(*dto.UserInfo); ok {
			return user
		}
	}
	return nil
}

// GetUserID 从 Context 获取当前登录用户 ID，未登录返回 0
func GetUserID(c *gin.Context) int64 {
	if user := GetUser(c); user != nil {
		return user.ID
	}
	return 0
}
