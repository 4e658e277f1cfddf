package handlers

import (
	"github.com/ArtCreating/blogsite/internal/db"
	"github.com/ArtCreating/blogsite/internal/models"

	"github.com/gin-contrib/sessions"
)

// dbUsers 数据库实现的 forms.UserFinder
type dbUsers struct{}

func (dbUsers) ByUsername(username string) (*models.User, bool) {
	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, false
	}
	return &user, true
}

func (dbUsers) ByEmail(email string) (*models.User, bool) {
	if email == "" {
		return nil, false
	}
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, false
	}
	return &user, true
}

// sessionCodes 把 gin session 适配成表单和验证码服务需要的 KV。
// 写操作之后调用方需要 session.Save()
type sessionCodes struct {
	s sessions.Session
}

func (c sessionCodes) GetString(key string) string {
	if v, ok := c.s.Get(key).(string); ok {
		return v
	}
	return ""
}

func (c sessionCodes) GetInt64(key string) int64 {
	switch v := c.s.Get(key).(type) {
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

func (c sessionCodes) Set(key string, value interface{}) {
	c.s.Set(key, value)
}

func (c sessionCodes) Delete(key string) {
	c.s.Delete(key)
}
