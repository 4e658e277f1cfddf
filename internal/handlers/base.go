package handlers

import (
	"strings"

	"github.com/ArtCreating/blogsite/internal/middleware"
	"github.com/ArtCreating/blogsite/internal/models"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError 通用错误页
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// CurrentUser 从上下文取当前登录用户，未登录返回 nil
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(middleware.CheckUserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// redirectTarget 成功后的跳转地址：优先 from 参数，只接受站内路径
func redirectTarget(c *gin.Context, fallback string) string {
	from := c.Query("from")
	if from != "" && strings.HasPrefix(from, "/") && !strings.HasPrefix(from, "//") {
		return from
	}
	return fallback
}
