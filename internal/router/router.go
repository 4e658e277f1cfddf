package router

import (
	"github.com/ArtCreating/blogsite/internal/handlers"
	"github.com/ArtCreating/blogsite/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	homeHandler := handlers.NewHomeHandler()
	blogHandler := handlers.NewBlogHandler()
	userHandler := handlers.NewUserHandler()

	// 公共路由 (Public Routes)
	r.GET("/", homeHandler.Home)            // 首页 - 阅读统计和热门博客
	r.GET("/blog", blogHandler.List)        // 博客列表
	r.GET("/blog/:id", blogHandler.Detail)  // 博客详情页

	r.GET("/login", userHandler.ShowLogin)              // 登录页面
	r.POST("/login", userHandler.Login)                 // 提交登录
	r.POST("/login_modal", userHandler.LoginForModal)   // 弹窗登录 (AJAX)
	r.GET("/register", userHandler.ShowRegister)        // 注册页面
	r.POST("/register", userHandler.Register)           // 提交注册
	r.GET("/logout", userHandler.Logout)                // 退出登录
	r.GET("/send_verification_code", userHandler.SendVerificationCode) // 发送验证码 (AJAX)
	r.GET("/getback_password", userHandler.ShowGetbackPassword)        // 找回密码页面
	r.POST("/getback_password", userHandler.GetbackPassword)           // 提交找回密码

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/blog/:id/comment", blogHandler.CreateComment) // 发表评论
	}

	user := r.Group("/user")
	user.Use(middleware.AuthRequired())
	{
		user.GET("", userHandler.UserInfo)                           // 个人中心
		user.GET("/change_nickname", userHandler.ShowChangeNickname) // 修改昵称页面
		user.POST("/change_nickname", userHandler.ChangeNickname)    // 提交修改昵称
		user.GET("/bind_email", userHandler.ShowBindEmail)           // 绑定邮箱页面
		user.POST("/bind_email", userHandler.BindEmail)              // 提交绑定邮箱
		user.GET("/change_password", userHandler.ShowChangePassword) // 修改密码页面
		user.POST("/change_password", userHandler.ChangePassword)    // 提交修改密码
	}
}
