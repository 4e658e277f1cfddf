package forms

import (
	"testing"

	"github.com/ArtCreating/blogsite/internal/models"
	"github.com/ArtCreating/blogsite/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterForm(users UserFinder, codes CodeStore) *RegisterForm {
	return &RegisterForm{
		Users:            users,
		Codes:            codes,
		Username:         "newuser",
		Email:            "new@x.com",
		VerificationCode: "aB3x",
		Password:         "secret1",
		PasswordAgain:    "secret1",
	}
}

func TestRegisterFormOK(t *testing.T) {
	codes := fakeCodes{services.CodeKeyRegister: "aB3x"}
	form := validRegisterForm(fakeUsers{}, codes)

	assert.True(t, form.Valid())
	assert.True(t, form.Errors.Empty())
}

func TestRegisterFormEmptyCode(t *testing.T) {
	codes := fakeCodes{services.CodeKeyRegister: "aB3x"}
	form := validRegisterForm(fakeUsers{}, codes)
	form.VerificationCode = ""

	require.False(t, form.Valid())
	assert.Equal(t, MsgCodeEmpty, form.Errors.Field("verification_code"))
}

func TestRegisterFormWrongCode(t *testing.T) {
	codes := fakeCodes{services.CodeKeyRegister: "aB3x"}
	form := validRegisterForm(fakeUsers{}, codes)
	form.VerificationCode = "zz99"

	require.False(t, form.Valid())
	assert.Equal(t, MsgCodeWrong, form.Errors.Field("verification_code"))
}

func TestRegisterFormNoSessionCode(t *testing.T) {
	// 会话里没有下发过验证码时，提交任何验证码都算不正确
	form := validRegisterForm(fakeUsers{}, fakeCodes{})

	require.False(t, form.Valid())
	assert.Equal(t, MsgCodeWrong, form.Errors.Field("verification_code"))
}

func TestRegisterFormUsernameTaken(t *testing.T) {
	existing := newTestUser(t, "newuser", "old@x.com", "secret1")
	codes := fakeCodes{services.CodeKeyRegister: "aB3x"}
	form := validRegisterForm(fakeUsers{users: []*models.User{existing}}, codes)

	require.False(t, form.Valid())
	assert.Equal(t, MsgUsernameTaken, form.Errors.Field("username"))
}

func TestRegisterFormEmailTaken(t *testing.T) {
	existing := newTestUser(t, "olduser", "new@x.com", "secret1")
	codes := fakeCodes{services.CodeKeyRegister: "aB3x"}
	form := validRegisterForm(fakeUsers{users: []*models.User{existing}}, codes)

	require.False(t, form.Valid())
	assert.Equal(t, MsgEmailTaken, form.Errors.Field("email"))
}

func TestRegisterFormPasswordMismatch(t *testing.T) {
	codes := fakeCodes{services.CodeKeyRegister: "aB3x"}
	form := validRegisterForm(fakeUsers{}, codes)
	form.PasswordAgain = "secret2"

	require.False(t, form.Valid())
	assert.Equal(t, MsgPasswordMismatch, form.Errors.Field("password_again"))
}

func TestRegisterFormUsernameLength(t *testing.T) {
	codes := fakeCodes{services.CodeKeyRegister: "aB3x"}
	form := validRegisterForm(fakeUsers{}, codes)
	form.Username = "ab"

	require.False(t, form.Valid())
	assert.Equal(t, MsgUsernameLength, form.Errors.Field("username"))
}

func TestRegisterFormBadEmail(t *testing.T) {
	codes := fakeCodes{services.CodeKeyRegister: "aB3x"}
	form := validRegisterForm(fakeUsers{}, codes)
	form.Email = "not-an-email"

	require.False(t, form.Valid())
	assert.Equal(t, MsgEmailInvalid, form.Errors.Field("email"))
}
