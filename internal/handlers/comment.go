package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/blog/internal/constants"
	"github.com/yukikurage/blog/internal/dto"
	"github.com/yukikurage/blog/internal/forms"
	"github.com/yukikurage/blog/internal/services"
	"github.com/yukikurage/blog/internal/session"
)

type CommentHandler struct {
	commentService *services.CommentService
	sessions       *session.Manager
}

func NewCommentHandler(commentService *services.CommentService, sessions *session.Manager) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		sessions:       sessions,
	}
}

// EditComment updates or deletes a comment of the current user. Both go
// back to the post the comment belongs to.
func (h *CommentHandler) EditComment(c *gin.Context, current session.Principal) {
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}

	comment, err := h.commentService.EditableComment(commentID, current.UserID())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	page := dto.EditEntryPage{EntryFormView: dto.EntryFormView{DeleteButton: true}}

	if c.Request.Method != http.MethodPost {
		page.Form = forms.EntryForm{Title: comment.Title, Content: comment.Content}
		page.Layout = layout(c, h.sessions, current, "Edit comment")
		c.HTML(http.StatusOK, "edit_post_comment.html", page)
		return
	}

	form, action, errs := forms.BindEntry(c, forms.CommentEntry, true)
	switch {
	case action == forms.ActionDelete:
		if _, err := h.commentService.DeleteComment(commentID, current.UserID()); err != nil {
			respondServiceError(c, err)
			return
		}
		redirectWithFlash(c, h.sessions, postURL(comment.PostID), constants.FlashCommentDeleted)
		return
	case errs == nil:
		if _, err := h.commentService.UpdateComment(commentID, current.UserID(), services.CommentInput{
			Title:   form.Title,
			Content: form.Content,
		}); err != nil {
			respondServiceError(c, err)
			return
		}
		redirectWithFlash(c, h.sessions, postURL(comment.PostID), constants.FlashChangesSaved)
		return
	}

	page.Form = form
	page.Errors = errs
	page.Layout = layout(c, h.sessions, current, "Edit comment")
	c.HTML(http.StatusUnprocessableEntity, "edit_post_comment.html", page)
}
