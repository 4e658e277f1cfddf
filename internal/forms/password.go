package forms

import (
	"strings"

	"github.com/ArtCreating/blogsite/internal/models"
	"github.com/ArtCreating/blogsite/internal/services"
	"github.com/ArtCreating/blogsite/internal/utils"
)

// ChangePasswordForm 修改密码：旧密码必须能通过哈希校验，
// 新密码两次输入一致且非空
type ChangePasswordForm struct {
	User *models.User // 当前登录用户，未登录为 nil

	PasswordOld      string
	PasswordNew      string
	PasswordNewAgain string

	Errors *Errors
}

func (f *ChangePasswordForm) Valid() bool {
	e := &Errors{}
	f.Errors = e

	if f.User == nil {
		e.AddForm(MsgNotLoggedIn)
		return false
	}

	if !utils.CheckPasswordHash(f.PasswordOld, f.User.Password) {
		e.AddField("password_old", MsgOldPasswordWrong)
	}

	if f.PasswordNew == "" || f.PasswordNew != f.PasswordNewAgain {
		e.AddForm(MsgNewPasswordMismatch)
	}

	return e.Empty()
}

// GetbackPasswordForm 找回密码：邮箱必须已注册，
// 验证码和会话里 getback_password_code 完全一致。
// 重置成功后不自动登录，由调用方决定
type GetbackPasswordForm struct {
	Users UserFinder
	Codes CodeStore

	Email            string
	VerificationCode string
	PasswordNew      string

	User   *models.User // 校验通过后填充为待重置的账号
	Errors *Errors
}

func (f *GetbackPasswordForm) Valid() bool {
	e := &Errors{}
	f.Errors = e

	f.Email = strings.TrimSpace(f.Email)
	user, ok := f.Users.ByEmail(f.Email)
	if !ok {
		e.AddField("email", MsgEmailNotFound)
	}

	checkCode(e, f.Codes, services.CodeKeyGetbackPassword, f.VerificationCode)

	if len(f.PasswordNew) < 6 {
		e.AddField("password_new", MsgPasswordTooShort)
	}

	if e.Empty() {
		f.User = user
		return true
	}
	return false
}
