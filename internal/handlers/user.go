package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/blog/internal/constants"
	"github.com/yukikurage/blog/internal/dto"
	apierrors "github.com/yukikurage/blog/internal/errors"
	"github.com/yukikurage/blog/internal/forms"
	"github.com/yukikurage/blog/internal/services"
	"github.com/yukikurage/blog/internal/session"
)

// UserHandler serves profile pages
type UserHandler struct {
	authService *services.AuthService
	postService *services.PostService
	sessions    *session.Manager
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(authService *services.AuthService, postService *services.PostService, sessions *session.Manager) *UserHandler {
	return &UserHandler{
		authService: authService,
		postService: postService,
		sessions:    sessions,
	}
}

// Profile lists the posts of a user. Its owner can publish a new post from it.
func (h *UserHandler) Profile(c *gin.Context, current session.Principal) {
	user, err := h.authService.GetUserByUsername(c.Param("username"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	page := dto.UserPage{
		User:    dto.ToUserDTO(*user),
		IsOwner: user.ID == current.UserID(),
	}
	status := http.StatusOK

	if c.Request.Method == http.MethodPost {
		if !page.IsOwner {
			apierrors.Forbidden(c, "You can only publish posts on your own page")
			return
		}

		form, _, errs := forms.BindEntry(c, forms.PostEntry, false)
		if errs == nil {
			_, err := h.postService.CreatePost(current.UserID(), services.PostInput{
				Title:   form.Title,
				Content: form.Content,
			})
			if err != nil {
				respondServiceError(c, err)
				return
			}
			redirectWithFlash(c, h.sessions, userURL(user.Username), constants.FlashPostCreated)
			return
		}

		page.Form = form
		page.Errors = errs
		status = http.StatusUnprocessableEntity
	}

	posts, err := h.postService.ListByAuthor(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	for i := range posts {
		posts[i].Author = *user
	}
	page.Posts = dto.ToPostDTOs(posts)
	page.PostCount = len(posts)

	page.Layout = layout(c, h.sessions, current, user.Username)
	c.HTML(status, "user.html", page)
}

// EditProfile changes the username of the current user
func (h *UserHandler) EditProfile(c *gin.Context, current session.Principal) {
	var page dto.EditProfilePage

	if c.Request.Method != http.MethodPost {
		page.Form.Username = current.User.Username
		page.Layout = layout(c, h.sessions, current, "Edit Profile")
		c.HTML(http.StatusOK, "edit_profile.html", page)
		return
	}

	page.Errors = forms.Bind(c, &page.Form)
	if page.Errors == nil {
		user, err := h.authService.UpdateUsername(current.UserID(), page.Form.Username)
		if err == nil {
			redirectWithFlash(c, h.sessions, userURL(user.Username), constants.FlashChangesSaved)
			return
		}

		if !errors.Is(err, services.ErrDuplicateUsername) {
			respondServiceError(c, err)
			return
		}
		page.Errors = forms.Errors{}
		page.Errors.Add("username", "Please use a different username.")
	}

	page.Layout = layout(c, h.sessions, current, "Edit Profile")
	c.HTML(http.StatusUnprocessableEntity, "edit_profile.html", page)
}
