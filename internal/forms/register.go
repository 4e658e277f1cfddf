package forms

import (
	"strings"

	"github.com/ArtCreating/blogsite/internal/services"
)

// RegisterForm 注册：用户名/邮箱未被占用、两次密码一致、
// 验证码和会话里 register_code 完全一致
type RegisterForm struct {
	Users UserFinder
	Codes CodeStore

	Username         string
	Email            string
	VerificationCode string
	Password         string
	PasswordAgain    string

	Errors *Errors
}

func (f *RegisterForm) Valid() bool {
	e := &Errors{}
	f.Errors = e
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)

	if n := len(f.Username); n < 3 || n > 30 {
		e.AddField("username", MsgUsernameLength)
	} else if _, ok := f.Users.ByUsername(f.Username); ok {
		e.AddField("username", MsgUsernameTaken)
	}

	if !validEmail(f.Email) {
		e.AddField("email", MsgEmailInvalid)
	} else if _, ok := f.Users.ByEmail(f.Email); ok {
		e.AddField("email", MsgEmailTaken)
	}

	if len(f.Password) < 6 {
		e.AddField("password", MsgPasswordTooShort)
	} else if f.Password != f.PasswordAgain {
		e.AddField("password_again", MsgPasswordMismatch)
	}

	checkCode(e, f.Codes, services.CodeKeyRegister, f.VerificationCode)

	return e.Empty()
}
