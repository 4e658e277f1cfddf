package services

import (
	"sync"

	"github.com/ArtCreating/blogsite/internal/logger"
)

// CommentNotice 一封待发送的评论通知邮件
type CommentNotice struct {
	Email       string
	Subject     string
	CommentText string
	URL         string
}

// Notifier 在后台 worker 里投递评论通知邮件。
// 评论请求只负责入队，发送延迟和失败都不会传回请求方
type Notifier struct {
	mailer Mailer
	queue  chan CommentNotice
}

var (
	notifierInstance *Notifier
	notifierOnce     sync.Once
)

// GetNotifier 获取单例通知服务并确保 worker 已启动
func GetNotifier() *Notifier {
	notifierOnce.Do(func() {
		notifierInstance = NewNotifier(NewMailService(), 1000)
		notifierInstance.Start(2)
	})
	return notifierInstance
}

func NewNotifier(mailer Mailer, queueSize int) *Notifier {
	return &Notifier{
		mailer: mailer,
		queue:  make(chan CommentNotice, queueSize),
	}
}

// Start 启动指定数量的发送 worker
func (n *Notifier) Start(workers int) {
	for i := 0; i < workers; i++ {
		go n.worker()
	}
}

// Dispatch 非阻塞入队。收件人为空时静默跳过，队列满时丢弃并记日志
func (n *Notifier) Dispatch(notice CommentNotice) {
	if notice.Email == "" {
		return
	}
	select {
	case n.queue <- notice:
	default:
		logger.Log.Warnf("通知队列已满，丢弃发往 %s 的通知", notice.Email)
	}
}

func (n *Notifier) worker() {
	for notice := range n.queue {
		n.deliver(notice)
	}
}

func (n *Notifier) deliver(notice CommentNotice) {
	body, err := RenderCommentMail(notice.CommentText, notice.URL)
	if err != nil {
		logger.Log.WithError(err).Warn("渲染评论通知邮件失败")
		return
	}
	// 失败只记日志，绝不影响原始请求
	_ = n.mailer.Send([]string{notice.Email}, notice.Subject, body, true)
}
