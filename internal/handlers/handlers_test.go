package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/blog/internal/models"
	"github.com/yukikurage/blog/internal/repository"
	"github.com/yukikurage/blog/internal/services"
	"github.com/yukikurage/blog/internal/session"
	"github.com/yukikurage/blog/internal/testutil"
	"gorm.io/gorm"
)

type testEnv struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	manager := session.NewManager(authService, time.Hour, false)

	router := NewRouter(cookie.NewStore([]byte("test-secret")), Handlers{
		Sessions: manager,
		Auth:     NewAuthHandler(authService, manager),
		Users:    NewUserHandler(authService, postService, manager),
		Posts:    NewPostHandler(postService, commentService, manager, 20),
		Comments: NewCommentHandler(commentService, manager),
		Health:   NewHealthHandler(db),
	})

	return &testEnv{t: t, db: db, router: router}
}

// browser replays the session cookie between requests
type browser struct {
	env     *testEnv
	cookies map[string]*http.Cookie
}

func (e *testEnv) browser() *browser {
	return &browser{env: e, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	b.env.t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	b.env.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(b.cookies, ck.Name)
			continue
		}
		b.cookies[ck.Name] = ck
	}
	return w
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, target, nil)
}

func (b *browser) post(target string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, target, form)
}

// follow walks redirects the way a browser would
func (b *browser) follow(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	b.env.t.Helper()

	for i := 0; i < 10 && (w.Code == http.StatusFound || w.Code == http.StatusSeeOther); i++ {
		w = b.get(w.Header().Get("Location"))
	}
	return w
}

func (b *browser) register(username, email, password string) *httptest.ResponseRecorder {
	return b.post("/register", url.Values{
		"username":  {username},
		"email":     {email},
		"password":  {password},
		"password2": {password},
	})
}

func (b *browser) login(username, password string) *httptest.ResponseRecorder {
	return b.post("/login", url.Values{
		"username": {username},
		"password": {password},
	})
}

func (e *testEnv) count(model interface{}) int64 {
	e.t.Helper()
	var n int64
	require.NoError(e.t, e.db.Model(model).Count(&n).Error)
	return n
}

func (e *testEnv) firstPost() models.Post {
	e.t.Helper()
	var post models.Post
	require.NoError(e.t, e.db.Order("id").First(&post).Error)
	return post
}

func (e *testEnv) firstComment() models.Comment {
	e.t.Helper()
	var comment models.Comment
	require.NoError(e.t, e.db.Order("id").First(&comment).Error)
	return comment
}
