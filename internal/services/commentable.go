package services

import (
	"errors"
	"sync"
)

// Commentable 可被评论的内容对象必须暴露的能力
type Commentable interface {
	Email() string // 所有者的通知邮箱
	URL() string   // 内容的规范链接
}

// CommentableResolver 根据对象 ID 查出一个可评论对象
type CommentableResolver func(id uint) (Commentable, error)

var ErrUnknownEntityKind = errors.New("未知的评论对象类型")

var (
	commentableMu sync.RWMutex
	commentables  = make(map[string]CommentableResolver)
)

// RegisterCommentable 注册一种可评论的实体类型，启动时调用
func RegisterCommentable(kind string, resolver CommentableResolver) {
	commentableMu.Lock()
	defer commentableMu.Unlock()
	commentables[kind] = resolver
}

// ResolveCommentable 解析 (kind, id) 指向的内容对象
func ResolveCommentable(kind string, id uint) (Commentable, error) {
	commentableMu.RLock()
	resolver := commentables[kind]
	commentableMu.RUnlock()
	if resolver == nil {
		return nil, ErrUnknownEntityKind
	}
	return resolver(id)
}
