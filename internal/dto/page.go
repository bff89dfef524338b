package dto

import (
	"github.com/yukikurage/blog/internal/forms"
	"github.com/yukikurage/blog/internal/utils"
)

// Layout is the data every page shares: the title, the logged-in user and
// the flashes popped for this response
type Layout struct {
	Title       string
	CurrentUser *UserDTO
	Flashes     []string
}

// EntryFormView is the post/comment form with its validation messages
type EntryFormView struct {
	Form         forms.EntryForm
	Errors       forms.Errors
	DeleteButton bool
}

// IndexPage lists all posts
type IndexPage struct {
	Layout
	Posts      []PostDTO
	Pagination *utils.PaginationResponse
}

// RegisterPage renders the registration form
type RegisterPage struct {
	Layout
	Form   forms.RegistrationForm
	Errors forms.Errors
}

// LoginPage renders the login form
type LoginPage struct {
	Layout
	Form   forms.LoginForm
	Errors forms.Errors
}

// UserPage shows a profile and, to its owner, the new post form
type UserPage struct {
	Layout
	EntryFormView
	User      UserDTO
	Posts     []PostDTO
	PostCount int
	IsOwner   bool
}

// PostPage shows a post with its comments and the comment form
type PostPage struct {
	Layout
	EntryFormView
	Post          PostDTO
	Comments      []CommentDTO
	IsOwner       bool
	CurrentUserID uint64
}

// EditProfilePage renders the username form
type EditProfilePage struct {
	Layout
	Form   forms.ProfileForm
	Errors forms.Errors
}

// EditEntryPage renders the edit form of a post or comment
type EditEntryPage struct {
	Layout
	EntryFormView
}
