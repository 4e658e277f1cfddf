package main

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/ArtCreating/blogsite/internal/db"
	"github.com/ArtCreating/blogsite/internal/logger"
	"github.com/ArtCreating/blogsite/internal/middleware"
	"github.com/ArtCreating/blogsite/internal/models"
	"github.com/ArtCreating/blogsite/internal/router"
	"github.com/ArtCreating/blogsite/internal/services"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, finding env vars from system")
	}

	logger.Init()

	// Initialize Database
	db.Init()

	// 注册可评论实体：博客
	services.RegisterCommentable(models.EntityBlog, func(id uint) (services.Commentable, error) {
		var blog models.Blog
		if err := db.DB.Preload("User").First(&blog, id).Error; err != nil {
			return nil, err
		}
		return &blog, nil
	})

	// 启动评论通知 worker
	services.GetNotifier()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("blogsite_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Log.Infof("Blogsite server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	// FuncMap
	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"timeAgo": func(t interface{}) string {
			var timeVal time.Time
			switch v := t.(type) {
			case time.Time:
				timeVal = v
			default:
				return ""
			}

			duration := time.Since(timeVal)
			seconds := int(duration.Seconds())

			if seconds < 60 {
				return fmt.Sprintf("%d秒前", seconds)
			} else if seconds < 3600 {
				return fmt.Sprintf("%d分钟前", seconds/60)
			} else if seconds < 86400 {
				return fmt.Sprintf("%d小时前", seconds/3600)
			} else if seconds < 2592000 {
				return fmt.Sprintf("%d天前", seconds/86400)
			} else if seconds < 31536000 {
				return fmt.Sprintf("%d个月前", seconds/2592000)
			}
			return fmt.Sprintf("%d年前", seconds/31536000)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	// Manual registration to ensure keys match handler expectation
	r.AddFromFilesFuncs("home.html", funcMap, assemble(templatesDir+"/views/home.html")...)
	r.AddFromFilesFuncs("form.html", funcMap, assemble(templatesDir+"/views/form.html")...)
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	// Blog
	r.AddFromFilesFuncs("blog/list.html", funcMap, assemble(templatesDir+"/views/blog/list.html")...)
	r.AddFromFilesFuncs("blog/detail.html", funcMap, assemble(templatesDir+"/views/blog/detail.html")...)

	// User
	r.AddFromFilesFuncs("user/login.html", funcMap, assemble(templatesDir+"/views/user/login.html")...)
	r.AddFromFilesFuncs("user/register.html", funcMap, assemble(templatesDir+"/views/user/register.html")...)
	r.AddFromFilesFuncs("user/user_info.html", funcMap, assemble(templatesDir+"/views/user/user_info.html")...)
	r.AddFromFilesFuncs("user/bind_email.html", funcMap, assemble(templatesDir+"/views/user/bind_email.html")...)
	r.AddFromFilesFuncs("user/getback_password.html", funcMap, assemble(templatesDir+"/views/user/getback_password.html")...)

	return r
}
