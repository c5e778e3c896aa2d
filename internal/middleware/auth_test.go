package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shop_review_v1_202601/internal/api/dto"
	"shop_review_v1_202601/internal/cache"
	"shop_review_v1_202601/internal/session"
)

// ==================== 测试辅助 ====================

func setupAuthRouter(sessions *session.Store) (*gin.Engine, *int64) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RefreshToken(sessions))

	var handledUserID int64 = -1

	// 公开路由：不强制登录，但有 Token 时填充用户上下文
	r.GET("/shop/1", func(c *gin.Context) {
		handledUserID = GetUserID(c)
		c.Status(http.StatusOK)
	})

	// 受保护路由
	r.GET("/user/me", LoginRequired(), func(c *gin.Context) {
		handledUserID = GetUserID(c)
		c.Status(http.StatusOK)
	})

	return r, &handledUserID
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== 单元测试 ====================

func TestLoginRequired_NoToken(t *testing.T) {
	sessions := session.NewStore(cache.NewMemory())
	r, handled := setupAuthRouter(sessions)

	w := doRequest(r, "/user/me", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("无 Token 访问受保护路由应返回 401，实际 %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("401 不应携带响应体，实际 %q", w.Body.String())
	}
	if *handled != -1 {
		t.Fatal("被拦截的请求不应执行业务处理器")
	}
}

func TestLoginRequired_InvalidToken(t *testing.T) {
	sessions := session.NewStore(cache.NewMemory())
	r, handled := setupAuthRouter(sessions)

	// 未签发过的 Token 与缺失 Token 同等对待
	w := doRequest(r, "/user/me", "deadbeefdeadbeefdeadbeefdeadbeef")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("无效 Token 应返回 401，实际 %d", w.Code)
	}
	if *handled != -1 {
		t.Fatal("被拦截的请求不应执行业务处理器")
	}
}

func TestLoginRequired_ValidToken(t *testing.T) {
	mem := cache.NewMemory()
	sessions := session.NewStore(mem)
	r, handled := setupAuthRouter(sessions)

	token, err := sessions.Issue(context.Background(), &dto.UserInfo{ID: 42, NickName: "user_x"})
	if err != nil {
		t.Fatalf("签发 Token 失败: %v", err)
	}

	w := doRequest(r, "/user/me", token)
	if w.Code != http.StatusOK {
		t.Fatalf("有效 Token 应放行，实际 %d", w.Code)
	}
	if *handled != 42 {
		t.Fatalf("处理器应拿到用户 ID 42，实际 %d", *handled)
	}
}

func TestPublicRoute_OptionalContext(t *testing.T) {
	mem := cache.NewMemory()
	sessions := session.NewStore(mem)
	r, handled := setupAuthRouter(sessions)

	// 无 Token：放行，上下文为空
	w := doRequest(r, "/shop/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("公开路由无 Token 应放行，实际 %d", w.Code)
	}
	if *handled != 0 {
		t.Fatalf("无 Token 时上下文应为空，实际 uid=%d", *handled)
	}

	// 有效 Token：填充可选的用户上下文
	token, _ := sessions.Issue(context.Background(), &dto.UserInfo{ID: 7, NickName: "user_y"})
	w = doRequest(r, "/shop/1", token)
	if w.Code != http.StatusOK {
		t.Fatalf("公开路由带 Token 应放行，实际 %d", w.Code)
	}
	if *handled != 7 {
		t.Fatalf("带 Token 时上下文应填充 uid=7，实际 %d", *handled)
	}
}

func TestRefreshToken_RenewsTTL(t *testing.T) {
	mem := cache.NewMemory()
	sessions := session.NewStore(mem)
	r, _ := setupAuthRouter(sessions)

	ctx := context.Background()
	token, _ := sessions.Issue(ctx, &dto.UserInfo{ID: 1, NickName: "user_x"})
	key := cache.LoginUserKey + token

	// 把 TTL 压短，访问一次后应被刷回完整时长
	mem.Expire(ctx, key, cache.LoginUserTTL/2)

	doRequest(r, "/shop/1", token)

	ttl, _ := mem.TTL(ctx, key)
	if ttl <= cache.LoginUserTTL/2 {
		t.Fatalf("访问后 TTL 应刷新至完整时长，实际 %v", ttl)
	}
}
