package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/blog/internal/constants"
	"github.com/yukikurage/blog/internal/dto"
	"github.com/yukikurage/blog/internal/forms"
	"github.com/yukikurage/blog/internal/middleware"
	"github.com/yukikurage/blog/internal/services"
	"github.com/yukikurage/blog/internal/session"
	"github.com/yukikurage/blog/internal/utils"
)

type PostHandler struct {
	postService    *services.PostService
	commentService *services.CommentService
	sessions       *session.Manager
	pageSize       int
}

func NewPostHandler(postService *services.PostService, commentService *services.CommentService, sessions *session.Manager, pageSize int) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
		sessions:       sessions,
		pageSize:       pageSize,
	}
}

// Index lists all posts, newest first
func (h *PostHandler) Index(c *gin.Context, current session.Principal) {
	params := utils.GetPaginationParams(c, h.pageSize)

	posts, total, err := h.postService.ListPosts(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pagination := utils.NewPaginationResponse(params, total)
	c.HTML(http.StatusOK, "index.html", dto.IndexPage{
		Layout:     layout(c, h.sessions, current, "Home"),
		Posts:      dto.ToPostDTOs(posts),
		Pagination: &pagination,
	})
}

// ShowPost renders a post with its comments and accepts new comments.
// Anonymous visitors can read but not comment.
func (h *PostHandler) ShowPost(c *gin.Context, current session.Principal) {
	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}

	post, err := h.postService.GetPost(postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	page := dto.PostPage{
		Post:          dto.ToPostDTO(*post),
		IsOwner:       post.AuthorID == current.UserID(),
		CurrentUserID: current.UserID(),
	}
	status := http.StatusOK

	if c.Request.Method == http.MethodPost {
		if current.IsAnonymous() {
			redirectWithFlash(c, h.sessions, middleware.LoginURL(postURL(postID)), constants.FlashCommentLogin)
			return
		}

		form, _, errs := forms.BindEntry(c, forms.CommentEntry, false)
		if errs == nil {
			_, err := h.commentService.CreateComment(postID, current.UserID(), services.CommentInput{
				Title:   form.Title,
				Content: form.Content,
			})
			if err != nil {
				respondServiceError(c, err)
				return
			}
			c.Redirect(http.StatusFound, postURL(postID))
			return
		}

		page.Form = form
		page.Errors = errs
		status = http.StatusUnprocessableEntity
	}

	comments, err := h.commentService.ListByPost(postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	page.Comments = dto.ToCommentDTOs(comments)

	page.Layout = layout(c, h.sessions, current, post.Title)
	c.HTML(status, "post.html", page)
}

// EditPost updates or deletes a post of the current user
func (h *PostHandler) EditPost(c *gin.Context, current session.Principal) {
	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}

	post, err := h.postService.EditablePost(postID, current.UserID())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	page := dto.EditEntryPage{EntryFormView: dto.EntryFormView{DeleteButton: true}}

	if c.Request.Method != http.MethodPost {
		page.Form = forms.EntryForm{Title: post.Title, Content: post.Content}
		page.Layout = layout(c, h.sessions, current, "Edit Post")
		c.HTML(http.StatusOK, "edit_post_comment.html", page)
		return
	}

	form, action, errs := forms.BindEntry(c, forms.PostEntry, true)
	switch {
	case action == forms.ActionDelete:
		if _, err := h.postService.DeletePost(postID, current.UserID()); err != nil {
			respondServiceError(c, err)
			return
		}
		redirectWithFlash(c, h.sessions, userURL(current.User.Username), constants.FlashPostDeleted)
		return
	case errs == nil:
		if _, err := h.postService.UpdatePost(postID, current.UserID(), services.PostInput{
			Title:   form.Title,
			Content: form.Content,
		}); err != nil {
			respondServiceError(c, err)
			return
		}
		redirectWithFlash(c, h.sessions, postURL(postID), constants.FlashChangesSaved)
		return
	}

	page.Form = form
	page.Errors = errs
	page.Layout = layout(c, h.sessions, current, "Edit Post")
	c.HTML(http.StatusUnprocessableEntity, "edit_post_comment.html", page)
}
