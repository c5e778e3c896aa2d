package service

import (
	"context"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// ==================== SmsService 短信服务 ====================

// SmsConfig 短信下发配置
type SmsConfig struct {
	// WebhookURL 短信网关回调地址，为空时仅打日志不真正下发
	WebhookURL string
	Timeout    time.Duration
}

// SmsService 验证码短信下发
// 通过 HTTP 网关推送，下发失败只记日志，不阻断登录流程
type SmsService struct {
	client *resty.Client
	url    string
}

// NewSmsService 创建短信服务
func NewSmsService(cfg *SmsConfig) *SmsService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SmsService{
		client: resty.New().SetTimeout(timeout),
		url:    cfg.WebhookURL,
	}
}

// SendCode 下发验证码短信
func (s *SmsService) SendCode(ctx context.Context, phone, code string) {
	if s.url == "" {
		// 开发环境未接短信网关，验证码走日志
		return
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"phone": phone,
			"code":  code,
		}).
		Post(s.url)
	if err != nil {
		log.Printf("短信下发失败 phone=%s: %v", phone, err)
		return
	}
	if resp.IsError() {
		log.Printf("短信网关返回异常 phone=%s status=%d", phone, resp.StatusCode())
	}
}
