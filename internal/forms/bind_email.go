package forms

import (
	"strings"

	"github.com/ArtCreating/blogsite/internal/models"
	"github.com/ArtCreating/blogsite/internal/services"
)

// BindEmailForm 绑定邮箱：要求已登录且尚未绑定过，
// 验证码和会话里 bind_email_code 完全一致
type BindEmailForm struct {
	Users UserFinder
	Codes CodeStore
	User  *models.User // 当前登录用户，未登录为 nil

	Email            string
	VerificationCode string

	Errors *Errors
}

func (f *BindEmailForm) Valid() bool {
	e := &Errors{}
	f.Errors = e

	if f.User == nil {
		e.AddForm(MsgNotLoggedIn)
		return false
	}
	if f.User.Email != "" {
		e.AddForm(MsgAlreadyBound)
	}

	f.Email = strings.TrimSpace(f.Email)
	if !validEmail(f.Email) {
		e.AddField("email", MsgEmailInvalid)
	} else if _, ok := f.Users.ByEmail(f.Email); ok {
		e.AddField("email", MsgEmailBound)
	}

	checkCode(e, f.Codes, services.CodeKeyBindEmail, f.VerificationCode)

	return e.Empty()
}
