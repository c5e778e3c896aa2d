package session

import (
	"context"
	"strconv"

	"shop_review_v1_202601/internal/api/dto"
	"shop_review_v1_202601/internal/cache"
	"shop_review_v1_202601/pkg/utils"
)

// ==================== Store 会话存储 ====================

// Store 管理 Token -> 用户信息 的会话映射。
// Token 为 32 位十六进制随机串，用户信息以 Hash 形式存在
// login:token:<token>，30 分钟滑动过期。
type Store struct {
	cache cache.Store
}

// NewStore 创建会话存储
func NewStore(cacheStore cache.Store) *Store {
	return &Store{cache: cacheStore}
}

// Issue 签发新 Token 并写入用户信息。每次登录都生成全新 Token，不复用
func (s *Store) Issue(ctx context.Context, user *dto.UserInfo) (string, error) {
	token := utils.SimpleUUID()
	key := cache.LoginUserKey + token

	if err := s.cache.HSetAll(ctx, key, userToMap(user)); err != nil {
		return "", err
	}
	if err := s.cache.Expire(ctx, key, cache.LoginUserTTL); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve 根据 Token 取回用户信息。
// Token 不存在、已过期或格式非法统一视为未登录，返回 (nil, false)
func (s *Store) Resolve(ctx context.Context, token string) (*dto.UserInfo, bool, error) {
	fields, err := s.cache.HGetAll(ctx, cache.LoginUserKey+token)
	if err != nil {
		return nil, false, err
	}
	if len(fields) == 0 {
		return nil, false, nil
	}
	return userFromMap(fields), true, nil
}

// Renew 刷新 Token 有效期至完整时长（滑动过期）
func (s *Store) Renew(ctx context.Context, token string) error {
	return s.cache.Expire(ctx, cache.LoginUserKey+token, cache.LoginUserTTL)
}

// ==================== 字段转换 ====================

// userToMap 显式逐字段转换，空字段直接省略，不写空串进 Hash
func userToMap(user *dto.UserInfo) map[string]string {
	fields := make(map[string]string, 3)
	if user.ID != 0 {
		fields["id"] = strconv.FormatInt(user.ID, 10)
	}
	if user.NickName != "" {
		fields["nickName"] = user.NickName
	}
	if user.Icon != "" {
		fields["icon"] = user.Icon
	}
	return fields
}

// userFromMap Hash 字段还原为用户信息，缺失字段取零值
func userFromMap(fields map[string]string) *dto.UserInfo {
	id, _ := strconv.ParseInt(fields["id"], 10, 64)
	return &dto.UserInfo{
		ID:       id,
		NickName: fields["nickName"],
		Icon:     fields["icon"],
	}
}
