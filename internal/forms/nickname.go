package forms

import (
	"strings"

	"github.com/ArtCreating/blogsite/internal/models"
)

// ChangeNicknameForm 修改昵称，要求已登录
type ChangeNicknameForm struct {
	User *models.User // 当前登录用户，未登录为 nil

	NicknameNew string

	Errors *Errors
}

func (f *ChangeNicknameForm) Valid() bool {
	e := &Errors{}
	f.Errors = e

	if f.User == nil {
		e.AddForm(MsgNotLoggedIn)
		return false
	}

	f.NicknameNew = strings.TrimSpace(f.NicknameNew)
	if f.NicknameNew == "" {
		e.AddField("nickname_new", MsgNicknameEmpty)
	} else if len([]rune(f.NicknameNew)) > 20 {
		e.AddField("nickname_new", MsgNicknameTooLong)
	}

	return e.Empty()
}
