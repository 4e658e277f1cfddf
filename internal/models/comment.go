package models

import (
	"time"
)

// Comment 通过 (EntityKind, EntityID) 挂在任意可评论对象上。
// ParentID 为空表示对内容对象的顶层评论，此时 RootID 和 ReplyToID 必须为空；
// ParentID 非空时 RootID 指向所在楼的顶层评论，ReplyToID 指向被回复的用户。
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EntityKind string    `gorm:"size:20;not null;index:idx_comments_entity" json:"entity_kind"`
	EntityID   uint      `gorm:"not null;index:idx_comments_entity" json:"entity_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	RootID     *uint     `gorm:"index" json:"root_id"`
	Root       *Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ParentID   *uint     `gorm:"index" json:"parent_id"`
	Parent     *Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ReplyToID  *uint     `json:"reply_to_id"`
	ReplyTo    *User     `gorm:"foreignKey:ReplyToID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reply_to"`
	CreatedAt  time.Time `json:"created_at"` // 创建后不可变
}
