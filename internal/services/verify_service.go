package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ArtCreating/blogsite/internal/utils"
)

// 会话里存放验证码和发送时间的键
const (
	CodeKeyRegister        = "register_code"
	CodeKeyBindEmail       = "bind_email_code"
	CodeKeyGetbackPassword = "getback_password_code"
	SendTimeKey            = "send_code_time"
)

const (
	codeLength     = 4
	resendCooldown = 60 // 秒
)

var (
	ErrEmptyEmail     = errors.New("邮箱不能为空")
	ErrSendTooOften   = errors.New("验证码发送过于频繁，请稍后再试")
	ErrUnknownPurpose = errors.New("未知的验证码用途")
)

// CodeStore 当前会话的验证码存取，由调用方注入
type CodeStore interface {
	GetString(key string) string
	GetInt64(key string) int64
	Set(key string, value interface{})
	Delete(key string)
}

// VerifyService 生成并发送邮箱验证码
type VerifyService struct {
	mailer Mailer
	now    func() time.Time
}

func NewVerifyService(mailer Mailer) *VerifyService {
	return &VerifyService{
		mailer: mailer,
		now:    time.Now,
	}
}

// SendCode 给 email 发送一个 4 位验证码并存入会话的 sendFor 键下。
// 冷却时间按会话计算，不区分验证码用途：任何一种验证码发出后
// 60 秒内都不能再发送任何验证码。
func (s *VerifyService) SendCode(codes CodeStore, email, sendFor string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	switch sendFor {
	case CodeKeyRegister, CodeKeyBindEmail, CodeKeyGetbackPassword:
	default:
		return ErrUnknownPurpose
	}

	now := s.now().Unix()
	if last := codes.GetInt64(SendTimeKey); now-last < resendCooldown {
		return ErrSendTooOften
	}

	code := utils.RandomCode(codeLength)
	// 这条路径同步发送，失败直接让请求失败
	if err := s.mailer.Send([]string{email}, "绑定邮箱", fmt.Sprintf("验证码: %s", code), false); err != nil {
		return err
	}

	codes.Set(sendFor, code)
	codes.Set(SendTimeKey, now)
	return nil
}
