package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"strings"

	"github.com/ArtCreating/blogsite/internal/logger"
)

// Mailer 发信能力，verify/notify 服务只依赖这个接口
type Mailer interface {
	// Send 发送一封 HTML 邮件。failSilently 为 true 时发送失败只记日志不返回错误
	Send(to []string, subject, body string, failSilently bool) error
}

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool

	// 测试时替换，默认 smtp.SendMail
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		logger.Log.Warn("MailService disabled: Missing SMTP environment variables")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		Enabled:  enabled,
		sendMail: smtp.SendMail,
	}
}

func (s *MailService) Send(to []string, subject, body string, failSilently bool) error {
	if !s.Enabled {
		logger.Log.Warnf("MailService disabled, skip sending %q to %v", subject, to)
		return nil
	}

	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

	if err := s.sendMail(addr, auth, s.From, to, msg); err != nil {
		logger.Log.WithError(err).Warnf("Failed to send email to %v: %s", to, subject)
		if failSilently {
			return nil
		}
		return err
	}
	logger.Log.Infof("Email sent to %v: %s", to, subject)
	return nil
}

var commentMailTmpl = template.Must(template.New("comment_mail").Parse(`<div>
<p>{{.CommentText}}</p>
<p><a href="{{.URL}}">点击查看</a></p>
</div>`))

// RenderCommentMail 渲染评论通知邮件正文
func RenderCommentMail(commentText, url string) (string, error) {
	var buf bytes.Buffer
	data := map[string]string{
		"CommentText": commentText,
		"URL":         url,
	}
	if err := commentMailTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render comment mail: %w", err)
	}
	return buf.String(), nil
}
