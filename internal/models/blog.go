package models

import (
	"fmt"
	"os"
	"time"
)

// EntityBlog 博客在评论/阅读统计里的实体类型标识
const EntityBlog = "blog"

type Blog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"` // Markdown 原文
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 非数据库字段，查询时填充
	CommentCount int `gorm:"-" json:"comment_count"`
}

// Email 博客作者的通知邮箱，需要 Preload("User")
func (b *Blog) Email() string {
	return b.User.Email
}

// URL 博客详情页的完整链接
func (b *Blog) URL() string {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}
	return fmt.Sprintf("%s/blog/%d", siteURL, b.ID)
}
