package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/blog/internal/constants"
	"github.com/yukikurage/blog/internal/models"
)

func TestIndex_NoPosts(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()

	for _, path := range []string{"/", "/index"} {
		w := b.get(path)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "There is no posts yet", path)
	}

	w := b.post("/index", url.Values{})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()

	require.Equal(t, http.StatusOK, b.get("/register").Code)
	require.Zero(t, env.count(&models.User{}))

	w := b.register("user", "u@u.ru", "123")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = b.follow(w)
	assert.Contains(t, w.Body.String(), constants.FlashRegistered)

	var user models.User
	require.NoError(t, env.db.First(&user).Error)
	assert.Equal(t, "user", user.Username)
	assert.Equal(t, "u@u.ru", user.Email)
	assert.NotEqual(t, "123", user.PasswordHash)
}

func TestAuthHandler_RegisterDuplicates(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()
	require.Equal(t, http.StatusFound, b.register("user", "u@u.ru", "123").Code)

	w := b.register("user", "other@u.ru", "123")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "User with this username already exists")

	w = b.register("other", "u@u.ru", "123")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "User with this email already exists")

	assert.Equal(t, int64(1), env.count(&models.User{}))
}

func TestAuthHandler_RegisterInvalidForm(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()

	w := b.post("/register", url.Values{
		"username":  {"user"},
		"email":     {"not-an-email"},
		"password":  {"123"},
		"password2": {"456"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email address.")
	assert.Contains(t, w.Body.String(), "Field must be equal to password.")
	assert.Zero(t, env.count(&models.User{}))
}

func TestAuthHandler_RegisterRejectsURLDelimiters(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()

	for _, name := range []string{"a/b", "what?", "#1", "100%", `a\b`} {
		w := b.register(name, "u@u.ru", "123")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, name)
		assert.Contains(t, w.Body.String(), "Username cannot contain any of", name)
	}
	assert.Zero(t, env.count(&models.User{}))
}

func TestAuthHandler_LoginTrimsUsername(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()
	require.Equal(t, http.StatusFound, b.register("  user ", "u@u.ru", "123").Code)

	w := b.login(" user  ", "123")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/user/user", w.Header().Get("Location"))
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()
	b.register("user", "u@u.ru", "123")

	w := b.login("user", "123")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/user/user", w.Header().Get("Location"))

	w = b.follow(w)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User: user")
	assert.Contains(t, w.Body.String(), "You haven't got any posts, create it!")

	// Logged-in users are sent away from the auth pages
	for _, path := range []string{"/login", "/register"} {
		w = b.get(path)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/index", w.Header().Get("Location"), path)
	}
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()
	b.register("user", "u@u.ru", "123")

	wrongPassword := b.follow(b.login("user", "000"))
	unknownUser := b.follow(b.login("another_name", "123"))

	for _, w := range []string{wrongPassword.Body.String(), unknownUser.Body.String()} {
		assert.Contains(t, w, constants.FlashInvalidLogin)
		assert.NotContains(t, w, "You haven't got any posts, create it!")
	}

	// Still anonymous
	w := b.get("/user/user")
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAuthHandler_LoginNext(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()
	b.register("user", "u@u.ru", "123")

	w := b.get("/edit_profile")
	require.Equal(t, http.StatusFound, w.Code)
	loginURL := w.Header().Get("Location")
	assert.Equal(t, "/login?next=%2Fedit_profile", loginURL)

	w = b.follow(w)
	assert.Contains(t, w.Body.String(), constants.FlashLoginRequired)

	w = b.post(loginURL, url.Values{"username": {"user"}, "password": {"123"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/edit_profile", w.Header().Get("Location"))
}

func TestAuthHandler_LoginRejectsOffsiteNext(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()
	b.register("user", "u@u.ru", "123")

	w := b.post("/login?next="+url.QueryEscape("https://evil.example/"), url.Values{
		"username": {"user"},
		"password": {"123"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/user/user", w.Header().Get("Location"))
}

func TestAuthHandler_LoginRememberMe(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()
	b.register("user", "u@u.ru", "123")

	w := b.post("/login", url.Values{
		"username":    {"user"},
		"password":    {"123"},
		"remember_me": {"true"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	var found bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == constants.SessionCookieName {
			found = true
			assert.Equal(t, 3600, ck.MaxAge)
		}
	}
	assert.True(t, found)
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()
	b.register("user", "u@u.ru", "123")
	b.login("user", "123")
	require.Equal(t, http.StatusOK, b.get("/user/user").Code)

	w := b.get("/logout")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/index", w.Header().Get("Location"))

	assert.NotEqual(t, http.StatusOK, b.get("/user/user").Code)
}

func TestUserHandler_EditProfile(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()
	b.register("user", "u@u.ru", "123")
	b.register("taken", "t@u.ru", "123")
	b.login("user", "123")

	w := b.get("/edit_profile")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="user"`)

	t.Run("unchanged name is accepted", func(t *testing.T) {
		w := b.post("/edit_profile", url.Values{"username": {"user"}})
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/user/user", w.Header().Get("Location"))
	})

	t.Run("taken name is rejected", func(t *testing.T) {
		w := b.post("/edit_profile", url.Values{"username": {"taken"}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Please use a different username.")
	})

	t.Run("name with a slash is rejected", func(t *testing.T) {
		w := b.post("/edit_profile", url.Values{"username": {"a/b"}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Username cannot contain any of")
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		w := b.post("/edit_profile", url.Values{"username": {"   "}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required.")
	})

	t.Run("new name is saved", func(t *testing.T) {
		w := b.post("/edit_profile", url.Values{"username": {"New name"}})
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/user/New%20name", w.Header().Get("Location"))

		w = b.follow(w)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), constants.FlashChangesSaved)

		var user models.User
		require.NoError(t, env.db.Order("id").First(&user).Error)
		assert.Equal(t, "New name", user.Username)
	})
}

func TestUserHandler_UnknownUser(t *testing.T) {
	env := setupTestEnv(t)
	b := env.browser()
	b.register("user", "u@u.ru", "123")
	b.login("user", "123")

	assert.Equal(t, http.StatusNotFound, b.get("/user/nobody").Code)
}

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.browser().get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
