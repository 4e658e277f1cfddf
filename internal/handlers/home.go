package handlers

import (
	"net/http"

	"github.com/ArtCreating/blogsite/internal/db"
	"github.com/ArtCreating/blogsite/internal/models"
	"github.com/ArtCreating/blogsite/internal/services"
	"github.com/ArtCreating/blogsite/internal/utils"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	statsService *services.StatsService
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{
		statsService: services.NewStatsService(db.DB, utils.GetCache()),
	}
}

// Home 首页：近 7 天阅读趋势、今天/昨天热读、7 天热门博客（走缓存）
func (h *HomeHandler) Home(c *gin.Context) {
	dates, readNums := h.statsService.SevenDaysReadData(models.EntityBlog)

	var recentBlogs []models.Blog
	db.DB.Preload("User").Order("created_at DESC").Limit(10).Find(&recentBlogs)

	Render(c, http.StatusOK, "home.html", gin.H{
		"Dates":               dates,
		"ReadNums":            readNums,
		"TodayHotData":        h.statsService.TodayHotData(models.EntityBlog),
		"YesterdayHotData":    h.statsService.YesterdayHotData(models.EntityBlog),
		"HotBlogsInSevenDays": h.statsService.HotBlogsInSevenDays(),
		"RecentBlogs":         recentBlogs,
	})
}
