package constants

import "time"

const (
	// SessionCookieName is the name of the cookie holding the session
	SessionCookieName = "blog_session"

	// ContextKeyUserID is the session key holding the authenticated user ID
	ContextKeyUserID      = "user_id"
	// SessionKeyRemember records whether the login asked to be remembered
	SessionKeyRemember    = "remember"
	// ContextKeyPrincipal is the gin context key caching the resolved principal
	ContextKeyPrincipal   = "principal"
	// ContextKeyRequestID is the gin context key holding the request ID
	ContextKeyRequestID   = "request_id"
	// ContextKeyCurrentUser holds the logged-in *models.User, or nil
	ContextKeyCurrentUser = "current_user"

	// HeaderRequestID carries the request ID in requests and responses
	HeaderRequestID = "X-Request-ID"
)

// Field limits, matching the column sizes
const (
	MaxUsernameLength       = 64
	MaxEmailLength          = 120
	MaxTitleLength          = 64
	MaxPostContentLength    = 2000
	MaxCommentContentLength = 1000
)

// UsernameForbiddenChars cannot appear in usernames, which are used as URL
// path segments
const UsernameForbiddenChars = "/?#%\\"

// MaxRememberDuration is the longest "remember me" login. The session
// cookie codec rejects older cookies.
const MaxRememberDuration = 30 * 24 * time.Hour

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 100000
)

// Flash messages shown after redirects
const (
	FlashRegistered     = "Congratulations, you`ve successfully registered!"
	FlashInvalidLogin   = "Invalid username or password"
	FlashLoginRequired  = "Please log in to access this page."
	FlashPostCreated    = "Congratulations, you`ve successfully created new post!"
	FlashCommentLogin   = "Please log in or register for leaving comments"
	FlashChangesSaved   = "Your changes have been saved."
	FlashPostDeleted    = "Your post is successfully deleted"
	FlashCommentDeleted = "Your comment is successfully deleted"
)
