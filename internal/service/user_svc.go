package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"shop_review_v1_202601/internal/api/dto"
	"shop_review_v1_202601/internal/cache"
	"shop_review_v1_202601/internal/model"
	"shop_review_v1_202601/internal/repository"
	"shop_review_v1_202601/internal/session"
	"shop_review_v1_202601/pkg/utils"
)

// ==================== UserService 用户服务 ====================

// UserService 用户服务：短信验证码登录
type UserService struct {
	userRepo repository.UserRepository
	cache    cache.Store
	sessions *session.Store
	sms      *SmsService
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository, cacheStore cache.Store, sessions *session.Store, sms *SmsService) *UserService {
	return &UserService{
		userRepo: userRepo,
		cache:    cacheStore,
		sessions: sessions,
		sms:      sms,
	}
}

// ==================== 登录流程 ====================

// SendCode 发送短信验证码
// 生成 6 位数字验证码，写入 login:code:<phone>，2 分钟有效
func (s *UserService) SendCode(ctx context.Context, phone string) (string, error) {
	if utils.IsPhoneInvalid(phone) {
		return "", ErrInvalidPhone
	}

	code := utils.RandomNumbers(6)
	if err := s.cache.SetWithTTL(ctx, cache.LoginCodeKey+phone, code, cache.LoginCodeTTL); err != nil {
		return "", err
	}

	// 短信下发是尽力而为的旁路，失败不影响验证码本身生效
	s.sms.SendCode(ctx, phone, code)
	log.Printf("发送短信验证码成功，验证码：%s", code)
	return code, nil
}

// Login 校验验证码并登录，返回会话 Token
// 验证码按精确字符串比对；用户不存在时按手机号自动注册
func (s *UserService) Login(ctx context.Context, form *dto.LoginForm) (string, error) {
	phone := form.Phone
	if utils.IsPhoneInvalid(phone) {
		return "", ErrInvalidPhone
	}

	cacheCode, err := s.cache.Get(ctx, cache.LoginCodeKey+phone)
	if err != nil {
		return "", err
	}
	if cacheCode == "" || cacheCode != form.Code {
		return "", ErrCodeMismatch
	}

	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return "", err
	}
	if user == nil {
		user, err = s.createUserWithPhone(ctx, phone)
		if err != nil {
			return "", err
		}
	}

	return s.sessions.Issue(ctx, &dto.UserInfo{
		ID:       user.ID,
		NickName: user.NickName,
		Icon:     user.Icon,
	})
}

// createUserWithPhone 按手机号自动注册，昵称为 user_ + 随机串
func (s *UserService) createUserWithPhone(ctx context.Context, phone string) (*model.User, error) {
	user := &model.User{
		Phone:    phone,
		NickName: fmt.Sprintf("user_%s", utils.RandomString(utils.RandomInt(6, 12))),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID 查询用户（个人主页等场景）
func (s *UserService) GetByID(ctx context.Context, id int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &dto.UserInfo{ID: user.ID, NickName: user.NickName, Icon: user.Icon}, nil
}

// ==================== 错误定义 ====================

var (
	ErrInvalidPhone = errors.New("手机号格式错误！")
	ErrCodeMismatch = errors.New("验证码错误")
	ErrUserNotFound = errors.New("用户不存在！")
)
