package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierDelivers(t *testing.T) {
	mailer := &fakeMailer{deliverC: make(chan struct{}, 1)}
	n := NewNotifier(mailer, 10)
	n.Start(1)

	n.Dispatch(CommentNotice{
		Email:       "a@x.com",
		Subject:     SubjectCommentPost,
		CommentText: "写得不错",
		URL:         "http://example.com/blog/1",
	})

	select {
	case <-mailer.deliverC:
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered")
	}

	sent := mailer.sentMails()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"a@x.com"}, sent[0].To)
	assert.Equal(t, SubjectCommentPost, sent[0].Subject)
	assert.Contains(t, sent[0].Body, "写得不错")
	assert.Contains(t, sent[0].Body, "http://example.com/blog/1")
	// worker 发送走静默失败路径
	assert.True(t, sent[0].FailSilently)
}

func TestNotifierSkipsEmptyRecipient(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewNotifier(mailer, 10)

	n.Dispatch(CommentNotice{Subject: SubjectCommentPost, CommentText: "hi"})

	assert.Len(t, n.queue, 0)
	assert.Empty(t, mailer.sentMails())
}

func TestNotifierSendFailureIsSwallowed(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down"), deliverC: make(chan struct{}, 1)}
	n := NewNotifier(mailer, 10)
	n.Start(1)

	n.Dispatch(CommentNotice{Email: "a@x.com", Subject: SubjectReplyComment, CommentText: "hi", URL: "u"})

	select {
	case <-mailer.deliverC:
	case <-time.After(time.Second):
		t.Fatal("notification was not attempted")
	}
	// 失败被吞掉，worker 继续工作
	n.Dispatch(CommentNotice{Email: "b@x.com", Subject: SubjectReplyComment, CommentText: "hi", URL: "u"})
	select {
	case <-mailer.deliverC:
	case <-time.After(time.Second):
		t.Fatal("worker stopped after a failure")
	}
	assert.Len(t, mailer.sentMails(), 2)
}

func TestRenderCommentMail(t *testing.T) {
	body, err := RenderCommentMail("你好 <b>世界</b>", "http://example.com/blog/1")
	require.NoError(t, err)
	// 评论文本按 HTML 转义，链接原样保留
	assert.Contains(t, body, "你好 &lt;b&gt;世界&lt;/b&gt;")
	assert.Contains(t, body, `href="http://example.com/blog/1"`)
}
