package handlers

import (
	"net/http"

	"github.com/ArtCreating/blogsite/internal/db"
	"github.com/ArtCreating/blogsite/internal/forms"
	"github.com/ArtCreating/blogsite/internal/logger"
	"github.com/ArtCreating/blogsite/internal/models"
	"github.com/ArtCreating/blogsite/internal/services"
	"github.com/ArtCreating/blogsite/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	verifyService *services.VerifyService
}

func NewUserHandler() *UserHandler {
	return &UserHandler{
		verifyService: services.NewVerifyService(services.NewMailService()),
	}
}

func (h *UserHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "user/login.html", nil)
}

func (h *UserHandler) Login(c *gin.Context) {
	form := &forms.LoginForm{
		Users:           dbUsers{},
		UsernameOrEmail: c.PostForm("username_or_email"),
		Password:        c.PostForm("password"),
	}
	if !form.Valid() {
		Render(c, http.StatusUnauthorized, "user/login.html", gin.H{"Error": form.Errors.First()})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", form.User.ID)
	session.Save()

	c.Redirect(http.StatusFound, redirectTarget(c, "/"))
}

// LoginForModal 弹窗登录，返回 JSON 状态
func (h *UserHandler) LoginForModal(c *gin.Context) {
	form := &forms.LoginForm{
		Users:           dbUsers{},
		UsernameOrEmail: c.PostForm("username_or_email"),
		Password:        c.PostForm("password"),
	}
	if !form.Valid() {
		c.JSON(http.StatusOK, gin.H{"status": "ERROR"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", form.User.ID)
	session.Save()

	c.JSON(http.StatusOK, gin.H{"status": "SUCCESS"})
}

func (h *UserHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "user/register.html", nil)
}

func (h *UserHandler) Register(c *gin.Context) {
	session := sessions.Default(c)
	form := &forms.RegisterForm{
		Users:            dbUsers{},
		Codes:            sessionCodes{session},
		Username:         c.PostForm("username"),
		Email:            c.PostForm("email"),
		VerificationCode: c.PostForm("verification_code"),
		Password:         c.PostForm("password"),
		PasswordAgain:    c.PostForm("password_again"),
	}
	if !form.Valid() {
		Render(c, http.StatusBadRequest, "user/register.html", gin.H{
			"Error":  form.Errors.First(),
			"Errors": form.Errors,
			"Form":   form,
		})
		return
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "系统错误，请稍后再试")
		return
	}
	user := models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		logger.Log.WithError(err).Warn("创建用户失败")
		Render(c, http.StatusConflict, "user/register.html", gin.H{"Error": forms.MsgUsernameTaken})
		return
	}

	// 验证码已消费，清掉并登录
	session.Delete(services.CodeKeyRegister)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, redirectTarget(c, "/"))
}

func (h *UserHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, redirectTarget(c, "/"))
}

func (h *UserHandler) UserInfo(c *gin.Context) {
	user := CurrentUser(c)

	var profile models.Profile
	db.DB.Where("user_id = ?", user.ID).First(&profile)

	Render(c, http.StatusOK, "user/user_info.html", gin.H{
		"Nickname": user.DisplayName(&profile),
	})
}

func (h *UserHandler) ShowChangeNickname(c *gin.Context) {
	Render(c, http.StatusOK, "form.html", gin.H{
		"PageTitle":  "修改昵称",
		"FormTitle":  "修改昵称",
		"SubmitText": "修改",
	})
}

func (h *UserHandler) ChangeNickname(c *gin.Context) {
	form := &forms.ChangeNicknameForm{
		User:        CurrentUser(c),
		NicknameNew: c.PostForm("nickname_new"),
	}
	if !form.Valid() {
		Render(c, http.StatusBadRequest, "form.html", gin.H{
			"PageTitle":  "修改昵称",
			"FormTitle":  "修改昵称",
			"SubmitText": "修改",
			"Error":      form.Errors.First(),
		})
		return
	}

	// Profile 惰性创建
	var profile models.Profile
	db.DB.Where(models.Profile{UserID: form.User.ID}).FirstOrCreate(&profile)
	db.DB.Model(&profile).Update("nickname", form.NicknameNew)

	c.Redirect(http.StatusFound, redirectTarget(c, "/"))
}

func (h *UserHandler) ShowBindEmail(c *gin.Context) {
	Render(c, http.StatusOK, "user/bind_email.html", nil)
}

func (h *UserHandler) BindEmail(c *gin.Context) {
	session := sessions.Default(c)
	form := &forms.BindEmailForm{
		Users:            dbUsers{},
		Codes:            sessionCodes{session},
		User:             CurrentUser(c),
		Email:            c.PostForm("email"),
		VerificationCode: c.PostForm("verification_code"),
	}
	if !form.Valid() {
		Render(c, http.StatusBadRequest, "user/bind_email.html", gin.H{
			"Error":  form.Errors.First(),
			"Errors": form.Errors,
		})
		return
	}

	if err := db.DB.Model(form.User).Update("email", form.Email).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "绑定邮箱失败，请稍后再试")
		return
	}

	session.Delete(services.CodeKeyBindEmail)
	session.Save()

	c.Redirect(http.StatusFound, redirectTarget(c, "/"))
}

// SendVerificationCode AJAX 发送验证码，返回 JSON 状态。
// 冷却期内的重复请求返回 ERROR，不发信也不覆盖已有验证码
func (h *UserHandler) SendVerificationCode(c *gin.Context) {
	email := c.Query("email")
	sendFor := c.Query("send_for")

	session := sessions.Default(c)
	if err := h.verifyService.SendCode(sessionCodes{session}, email, sendFor); err != nil {
		logger.Log.WithError(err).Infof("发送验证码失败: %s", email)
		c.JSON(http.StatusOK, gin.H{"status": "ERROR"})
		return
	}
	session.Save()

	c.JSON(http.StatusOK, gin.H{"status": "SUCCESS"})
}

func (h *UserHandler) ShowChangePassword(c *gin.Context) {
	Render(c, http.StatusOK, "form.html", gin.H{
		"PageTitle":  "修改密码",
		"FormTitle":  "修改密码",
		"SubmitText": "修改",
	})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	form := &forms.ChangePasswordForm{
		User:             CurrentUser(c),
		PasswordOld:      c.PostForm("password_old"),
		PasswordNew:      c.PostForm("password_new"),
		PasswordNewAgain: c.PostForm("password_new_again"),
	}
	if !form.Valid() {
		Render(c, http.StatusBadRequest, "form.html", gin.H{
			"PageTitle":  "修改密码",
			"FormTitle":  "修改密码",
			"SubmitText": "修改",
			"Error":      form.Errors.First(),
		})
		return
	}

	hash, err := utils.HashPassword(form.PasswordNew)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "系统错误，请稍后再试")
		return
	}
	db.DB.Model(form.User).Update("password", hash)

	// 改完密码强制重新登录
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.Redirect(http.StatusFound, "/login")
}

func (h *UserHandler) ShowGetbackPassword(c *gin.Context) {
	Render(c, http.StatusOK, "user/getback_password.html", nil)
}

func (h *UserHandler) GetbackPassword(c *gin.Context) {
	session := sessions.Default(c)
	form := &forms.GetbackPasswordForm{
		Users:            dbUsers{},
		Codes:            sessionCodes{session},
		Email:            c.PostForm("email"),
		VerificationCode: c.PostForm("verification_code"),
		PasswordNew:      c.PostForm("password_new"),
	}
	if !form.Valid() {
		Render(c, http.StatusBadRequest, "user/getback_password.html", gin.H{
			"Error":  form.Errors.First(),
			"Errors": form.Errors,
		})
		return
	}

	hash, err := utils.HashPassword(form.PasswordNew)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "系统错误，请稍后再试")
		return
	}
	db.DB.Model(form.User).Update("password", hash)

	// 重置成功后不自动登录
	session.Delete(services.CodeKeyGetbackPassword)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}
