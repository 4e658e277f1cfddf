package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/ArtCreating/blogsite/internal/db"
	"github.com/ArtCreating/blogsite/internal/models"
	"github.com/ArtCreating/blogsite/internal/services"
	"github.com/ArtCreating/blogsite/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	commentService *services.CommentService
	statsService   *services.StatsService
}

func NewBlogHandler() *BlogHandler {
	return &BlogHandler{
		commentService: services.NewCommentService(db.DB, services.GetNotifier()),
		statsService:   services.NewStatsService(db.DB, utils.GetCache()),
	}
}

func (h *BlogHandler) List(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}

	perPage := 10
	offset := (page - 1) * perPage

	var total int64
	db.DB.Model(&models.Blog{}).Count(&total)
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	var blogs []models.Blog
	db.DB.Preload("User").
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&blogs)

	h.fillCommentCounts(blogs)

	Render(c, http.StatusOK, "blog/list.html", gin.H{
		"Blogs":      blogs,
		"Page":       page,
		"TotalPages": totalPages,
	})
}

func (h *BlogHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var blog models.Blog
	if err := db.DB.Preload("User").First(&blog, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "博客不存在")
		return
	}

	comments, _ := h.commentService.ListForEntity(models.EntityBlog, blog.ID)

	h.recordReadOnce(c, blog.ID)

	Render(c, http.StatusOK, "blog/detail.html", gin.H{
		"Blog":     blog,
		"Content":  utils.RenderMarkdown(blog.Content),
		"Comments": comments,
	})
}

// recordReadOnce 同一会话对同一篇博客每天只计一次阅读
func (h *BlogHandler) recordReadOnce(c *gin.Context, blogID uint) {
	session := sessions.Default(c)
	key := fmt.Sprintf("read_blog_%d_%s", blogID, time.Now().Format("2006-01-02"))
	if session.Get(key) != nil {
		return
	}
	h.statsService.RecordRead(models.EntityBlog, blogID)
	session.Set(key, true)
	session.Save()
}

func (h *BlogHandler) CreateComment(c *gin.Context) {
	user := CurrentUser(c)
	id := utils.StringToUint(c.Param("id"))

	text := c.PostForm("text")
	var parentID *uint
	if p := c.PostForm("parent_id"); p != "" {
		pid := utils.StringToUint(p)
		parentID = &pid
	}

	if _, err := h.commentService.Create(user, models.EntityBlog, id, text, parentID); err != nil {
		RenderError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/blog/%d", id))
}

// fillCommentCounts 批量填充博客的评论数量
func (h *BlogHandler) fillCommentCounts(blogs []models.Blog) {
	if len(blogs) == 0 {
		return
	}
	ids := make([]uint, len(blogs))
	for i, b := range blogs {
		ids[i] = b.ID
	}
	counts := h.commentService.CountForEntities(models.EntityBlog, ids)
	for i := range blogs {
		blogs[i].CommentCount = counts[blogs[i].ID]
	}
}
