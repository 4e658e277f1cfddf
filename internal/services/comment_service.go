package services

import (
	"errors"
	"strings"

	"github.com/ArtCreating/blogsite/internal/models"

	"gorm.io/gorm"
)

// 评论通知邮件标题
const (
	SubjectCommentPost  = "有人评论了你的博客"
	SubjectReplyComment = "有人回复了你的评论"
)

var (
	ErrEmptyComment   = errors.New("评论内容不能为空")
	ErrParentNotFound = errors.New("被回复的评论不存在")
	ErrParentMismatch = errors.New("被回复的评论不属于当前内容")
)

// CommentService 创建和查询评论，创建成功后异步派发通知
type CommentService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewCommentService(database *gorm.DB, notifier *Notifier) *CommentService {
	return &CommentService{
		db:       database,
		notifier: notifier,
	}
}

// Create 创建一条评论。parentID 为 nil 时是对内容对象的顶层评论；
// 否则 root 指向楼层顶层评论，reply_to 指向被回复评论的作者
func (s *CommentService) Create(user *models.User, kind string, entityID uint, text string, parentID *uint) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	// 评论目标必须存在
	target, err := ResolveCommentable(kind, entityID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		EntityKind: kind,
		EntityID:   entityID,
		UserID:     user.ID,
		Text:       text,
	}

	var replyTo *models.User
	if parentID != nil {
		var parent models.Comment
		if err := s.db.Preload("User").First(&parent, *parentID).Error; err != nil {
			return nil, ErrParentNotFound
		}
		if parent.EntityKind != kind || parent.EntityID != entityID {
			return nil, ErrParentMismatch
		}
		comment.ParentID = &parent.ID
		comment.RootID = threadRoot(&parent)
		comment.ReplyToID = &parent.UserID
		replyTo = &parent.User
	}

	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	comment.User = *user

	s.notifier.Dispatch(buildNotice(comment, target, replyTo))
	return comment, nil
}

// ListForEntity 按创建时间升序返回某个内容对象的全部评论
func (s *CommentService) ListForEntity(kind string, entityID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("User").Preload("ReplyTo").
		Where("entity_kind = ? AND entity_id = ?", kind, entityID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CountForEntities 批量统计评论数，entityID -> 数量
func (s *CommentService) CountForEntities(kind string, entityIDs []uint) map[uint]int {
	counts := make(map[uint]int)
	if len(entityIDs) == 0 {
		return counts
	}

	type countResult struct {
		EntityID uint
		Count    int
	}
	var results []countResult
	s.db.Model(&models.Comment{}).
		Select("entity_id, COUNT(*) as count").
		Where("entity_kind = ? AND entity_id IN ?", kind, entityIDs).
		Group("entity_id").
		Scan(&results)

	for _, r := range results {
		counts[r.EntityID] = r.Count
	}
	return counts
}

// threadRoot 返回楼层顶层评论的 ID：父评论本身是顶层评论时就是它自己
func threadRoot(parent *models.Comment) *uint {
	if parent.RootID != nil {
		return parent.RootID
	}
	return &parent.ID
}

// buildNotice 顶层评论通知内容作者，回复通知被回复的用户。
// 收件邮箱为空时 Notifier 会静默跳过
func buildNotice(c *models.Comment, target Commentable, replyTo *models.User) CommentNotice {
	notice := CommentNotice{
		CommentText: c.Text,
		URL:         target.URL(),
	}
	if c.ParentID == nil {
		notice.Subject = SubjectCommentPost
		notice.Email = target.Email()
	} else {
		notice.Subject = SubjectReplyComment
		if replyTo != nil {
			notice.Email = replyTo.Email
		}
	}
	return notice
}
