package services

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	To           []string
	Subject      string
	Body         string
	FailSilently bool
}

// fakeMailer 记录发出的邮件，可注入发送错误
type fakeMailer struct {
	mu       sync.Mutex
	sent     []sentMail
	err      error
	deliverC chan struct{}
}

func (m *fakeMailer) Send(to []string, subject, body string, failSilently bool) error {
	m.mu.Lock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body, FailSilently: failSilently})
	m.mu.Unlock()
	if m.deliverC != nil {
		m.deliverC <- struct{}{}
	}
	if m.err != nil && !failSilently {
		return m.err
	}
	return nil
}

func (m *fakeMailer) sentMails() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

// memCodes 内存实现的 CodeStore
type memCodes map[string]interface{}

func (m memCodes) GetString(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func (m memCodes) GetInt64(key string) int64 {
	if v, ok := m[key].(int64); ok {
		return v
	}
	return 0
}

func (m memCodes) Set(key string, value interface{}) { m[key] = value }
func (m memCodes) Delete(key string)                 { delete(m, key) }

func newTestVerifyService(mailer Mailer, now time.Time) *VerifyService {
	s := NewVerifyService(mailer)
	s.now = func() time.Time { return now }
	return s
}

func TestSendCodeOK(t *testing.T) {
	mailer := &fakeMailer{}
	codes := memCodes{}
	s := newTestVerifyService(mailer, time.Unix(1000, 0))

	require.NoError(t, s.SendCode(codes, "a@x.com", CodeKeyRegister))

	code := codes.GetString(CodeKeyRegister)
	assert.Len(t, code, 4)
	assert.Equal(t, int64(1000), codes.GetInt64(SendTimeKey))

	sent := mailer.sentMails()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"a@x.com"}, sent[0].To)
	assert.Contains(t, sent[0].Body, code)
	assert.False(t, sent[0].FailSilently)
}

func TestSendCodeEmptyEmail(t *testing.T) {
	mailer := &fakeMailer{}
	codes := memCodes{}
	s := newTestVerifyService(mailer, time.Unix(1000, 0))

	assert.ErrorIs(t, s.SendCode(codes, "", CodeKeyRegister), ErrEmptyEmail)
	assert.Empty(t, mailer.sentMails())
	assert.Empty(t, codes)
}

func TestSendCodeUnknownPurpose(t *testing.T) {
	mailer := &fakeMailer{}
	s := newTestVerifyService(mailer, time.Unix(1000, 0))

	assert.ErrorIs(t, s.SendCode(memCodes{}, "a@x.com", "user_id"), ErrUnknownPurpose)
	assert.Empty(t, mailer.sentMails())
}

func TestSendCodeCooldown(t *testing.T) {
	mailer := &fakeMailer{}
	codes := memCodes{}

	s := newTestVerifyService(mailer, time.Unix(1000, 0))
	require.NoError(t, s.SendCode(codes, "a@x.com", CodeKeyRegister))
	first := codes.GetString(CodeKeyRegister)

	// 59 秒后重发被拒，会话里的验证码保持不变，也不发第二封邮件。
	// 冷却对所有用途生效，换一种验证码类型同样被拒
	s = newTestVerifyService(mailer, time.Unix(1059, 0))
	assert.ErrorIs(t, s.SendCode(codes, "a@x.com", CodeKeyRegister), ErrSendTooOften)
	assert.ErrorIs(t, s.SendCode(codes, "a@x.com", CodeKeyBindEmail), ErrSendTooOften)
	assert.Equal(t, first, codes.GetString(CodeKeyRegister))
	assert.Empty(t, codes.GetString(CodeKeyBindEmail))
	assert.Len(t, mailer.sentMails(), 1)

	// 满 60 秒后可以重发，新码覆盖旧码
	s = newTestVerifyService(mailer, time.Unix(1060, 0))
	require.NoError(t, s.SendCode(codes, "a@x.com", CodeKeyRegister))
	assert.Len(t, mailer.sentMails(), 2)
	assert.Equal(t, int64(1060), codes.GetInt64(SendTimeKey))
}

func TestSendCodeMailFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	codes := memCodes{}
	s := newTestVerifyService(mailer, time.Unix(1000, 0))

	err := s.SendCode(codes, "a@x.com", CodeKeyRegister)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "smtp down"))
	// 发送失败时会话不保留验证码
	assert.Empty(t, codes.GetString(CodeKeyRegister))
}
