package forms

import (
	"strings"

	"github.com/ArtCreating/blogsite/internal/models"
	"github.com/ArtCreating/blogsite/internal/utils"
)

// LoginForm 支持用户名或邮箱登录，邮箱会先被解析成对应账号再认证
type LoginForm struct {
	Users UserFinder

	UsernameOrEmail string
	Password        string

	User   *models.User // 校验通过后填充
	Errors *Errors
}

func (f *LoginForm) Valid() bool {
	e := &Errors{}
	f.Errors = e
	f.UsernameOrEmail = strings.TrimSpace(f.UsernameOrEmail)

	if f.UsernameOrEmail == "" || f.Password == "" {
		e.AddForm(MsgBadCredentials)
		return false
	}

	user, ok := f.Users.ByUsername(f.UsernameOrEmail)
	if !ok {
		user, ok = f.Users.ByEmail(f.UsernameOrEmail)
	}
	if !ok || !utils.CheckPasswordHash(f.Password, user.Password) {
		e.AddForm(MsgBadCredentials)
		return false
	}

	f.User = user
	return true
}
