// Package forms 把每个用户提交的表单实现为一次性校验器：
// 构造时注入环境（用户查询、当前会话、当前用户），Valid() 跑完
// 所有字段校验和跨字段校验，错误挂在 Errors 上
package forms

import (
	"strings"

	"github.com/ArtCreating/blogsite/internal/models"
)

// 用户可见的错误文案
const (
	MsgBadCredentials      = "用户名或密码不正确"
	MsgUsernameTaken       = "用户名已存在"
	MsgUsernameLength      = "请输入3-30位用户名"
	MsgEmailInvalid        = "请输入有效的邮箱地址"
	MsgEmailTaken          = "邮箱已注册"
	MsgEmailBound          = "邮箱已被绑定"
	MsgAlreadyBound        = "您已经绑定邮箱"
	MsgEmailNotFound       = "邮箱不存在"
	MsgCodeEmpty           = "验证码不能为空"
	MsgCodeWrong           = "验证码不正确"
	MsgPasswordTooShort    = "密码至少6位"
	MsgPasswordMismatch    = "两次输入密码不一致请重新输入密码"
	MsgNewPasswordMismatch = "两次输入的密码不正确"
	MsgOldPasswordWrong    = "输入的密码不正确"
	MsgNotLoggedIn         = "用户尚未登录"
	MsgNicknameEmpty       = "新的昵称不能为空"
	MsgNicknameTooLong     = "昵称最长20个字符"
)

// UserFinder 表单校验需要的用户查询能力
type UserFinder interface {
	ByUsername(username string) (*models.User, bool)
	ByEmail(email string) (*models.User, bool)
}

// CodeStore 当前会话里已下发的验证码
type CodeStore interface {
	GetString(key string) string
}

// FieldError 某个字段上的第一条错误
type FieldError struct {
	Field   string
	Message string
}

// Errors 一次校验产生的全部错误
type Errors struct {
	Fields []FieldError // 字段级错误，按校验顺序
	Form   []string     // 跨字段错误
}

// AddField 记录字段错误，同一字段只保留第一条
func (e *Errors) AddField(field, msg string) {
	for _, fe := range e.Fields {
		if fe.Field == field {
			return
		}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// AddForm 记录跨字段错误
func (e *Errors) AddForm(msg string) {
	e.Form = append(e.Form, msg)
}

// Field 返回某个字段的错误信息，没有则返回空串
func (e *Errors) Field(name string) string {
	for _, fe := range e.Fields {
		if fe.Field == name {
			return fe.Message
		}
	}
	return ""
}

// Empty 是否没有任何错误
func (e *Errors) Empty() bool {
	return len(e.Fields) == 0 && len(e.Form) == 0
}

// First 返回用于页面顶部展示的第一条错误
func (e *Errors) First() string {
	if len(e.Form) > 0 {
		return e.Form[0]
	}
	if len(e.Fields) > 0 {
		return e.Fields[0].Message
	}
	return ""
}

// checkCode 两段式验证码校验：先拒绝空验证码，再拒绝不匹配的验证码
func checkCode(e *Errors, codes CodeStore, sessionKey, submitted string) {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		e.AddField("verification_code", MsgCodeEmpty)
		return
	}
	code := codes.GetString(sessionKey)
	if code == "" || code != submitted {
		e.AddField("verification_code", MsgCodeWrong)
	}
}

// validEmail 粗略校验邮箱格式
func validEmail(email string) bool {
	parts := strings.Split(email, "@")
	return len(parts) == 2 && parts[0] != "" && strings.Contains(parts[1], ".")
}
