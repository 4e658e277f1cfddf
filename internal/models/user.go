package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email     string    `gorm:"index" json:"email"` // 注册时填写，也可以后续绑定，绑定前为空
	Password  string    `gorm:"not null" json:"-"`  // bcrypt 哈希
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No DeletedAt, users are never hard deleted
}

// Profile 用户扩展信息，首次修改昵称时惰性创建
type Profile struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User     User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Nickname string `gorm:"size:20" json:"nickname"`
}

// DisplayName 有昵称用昵称，没有用用户名
func (u *User) DisplayName(p *Profile) string {
	if p != nil && p.Nickname != "" {
		return p.Nickname
	}
	return u.Username
}
