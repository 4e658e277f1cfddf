package forms

import (
	"testing"

	"github.com/ArtCreating/blogsite/internal/models"
	"github.com/ArtCreating/blogsite/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsers 内存实现的 UserFinder
type fakeUsers struct {
	users []*models.User
}

func (f fakeUsers) ByUsername(username string) (*models.User, bool) {
	for _, u := range f.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

func (f fakeUsers) ByEmail(email string) (*models.User, bool) {
	if email == "" {
		return nil, false
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

// fakeCodes 内存实现的 CodeStore
type fakeCodes map[string]string

func (f fakeCodes) GetString(key string) string {
	return f[key]
}

func newTestUser(t *testing.T, username, email, password string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &models.User{ID: 1, Username: username, Email: email, Password: hash}
}

func TestLoginFormByUsername(t *testing.T) {
	user := newTestUser(t, "alice", "a@x.com", "secret1")
	form := &LoginForm{
		Users:           fakeUsers{users: []*models.User{user}},
		UsernameOrEmail: "alice",
		Password:        "secret1",
	}

	require.True(t, form.Valid())
	assert.Equal(t, user, form.User)
}

func TestLoginFormByEmail(t *testing.T) {
	user := newTestUser(t, "alice", "a@x.com", "secret1")
	form := &LoginForm{
		Users:           fakeUsers{users: []*models.User{user}},
		UsernameOrEmail: "a@x.com",
		Password:        "secret1",
	}

	require.True(t, form.Valid())
	assert.Equal(t, user, form.User)
}

func TestLoginFormWrongPassword(t *testing.T) {
	user := newTestUser(t, "alice", "a@x.com", "secret1")
	form := &LoginForm{
		Users:           fakeUsers{users: []*models.User{user}},
		UsernameOrEmail: "alice",
		Password:        "wrong",
	}

	require.False(t, form.Valid())
	assert.Equal(t, MsgBadCredentials, form.Errors.First())
	assert.Nil(t, form.User)
}

func TestLoginFormUnknownUser(t *testing.T) {
	form := &LoginForm{
		Users:           fakeUsers{},
		UsernameOrEmail: "nobody",
		Password:        "secret1",
	}

	require.False(t, form.Valid())
	assert.Equal(t, MsgBadCredentials, form.Errors.First())
}

func TestLoginFormEmptyFields(t *testing.T) {
	form := &LoginForm{Users: fakeUsers{}}

	require.False(t, form.Valid())
	assert.Equal(t, MsgBadCredentials, form.Errors.First())
}
