package db

import (
	"os"

	"github.com/ArtCreating/blogsite/internal/logger"
	"github.com/ArtCreating/blogsite/internal/models"
	"github.com/ArtCreating/blogsite/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=blogsite port=5432 sslmode=disable TimeZone=Asia/Shanghai"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalf("Failed to connect to database: %v", err)
	}

	logger.Log.Info("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Blog{},
		&models.Comment{},
		&models.ReadStat{},
	)
	if err != nil {
		logger.Log.Fatalf("Failed to migrate database: %v", err)
	}
	logger.Log.Info("Database migration completed")

	// Seed demo content
	seedBlogs()
}

func seedBlogs() {
	// 检查是否已有博客数据
	var count int64
	DB.Model(&models.Blog{}).Count(&count)
	if count > 0 {
		logger.Log.Info("Blogs already seeded, skipping")
		return
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		logger.Log.Errorf("Failed to hash seed password: %v", err)
		return
	}
	admin := models.User{
		Username: "admin",
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: hash,
	}
	if err := DB.Where(models.User{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
		logger.Log.Errorf("Failed to create seed user: %v", err)
		return
	}

	blogs := []models.Blog{
		{UserID: admin.ID, Title: "欢迎来到我的博客", Content: "这是第一篇博客,欢迎留言评论。"},
		{UserID: admin.ID, Title: "关于本站", Content: "本站用于记录技术笔记和生活随笔。"},
	}
	for _, blog := range blogs {
		if err := DB.Create(&blog).Error; err != nil {
			logger.Log.Errorf("Failed to create seed blog %s: %v", blog.Title, err)
		}
	}
	logger.Log.Info("Initial blogs created successfully")
}
