package forms

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/blog/internal/constants"
)

// Action is what a post or comment submission asks for
type Action int

const (
	ActionCreate Action = iota
	ActionUpdate
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// EntryForm carries the title and content of a post or comment
type EntryForm struct {
	Title   string `form:"title"`
	Content string `form:"content"`
	Delete  string `form:"delete"`
}

// BindEntry reads an entry submission. On the edit pages a submission with
// the delete button resolves to ActionDelete and is not validated.
func BindEntry(c *gin.Context, kind EntryKind, editing bool) (EntryForm, Action, Errors) {
	var form EntryForm
	if err := c.ShouldBind(&form); err != nil {
		errs := Errors{}
		errs.Add("form", "The submitted form could not be read.")
		return form, actionFor(editing), errs
	}

	if editing && form.Delete != "" {
		return form, ActionDelete, nil
	}

	return form, actionFor(editing), form.Validate(kind)
}

// Validate checks the field rules for kind. A nil result means the form is valid.
func (f EntryForm) Validate(kind EntryKind) Errors {
	errs := Errors{}

	requireNonBlank(errs, "title", f.Title)
	checkLength(errs, "title", f.Title, constants.MaxTitleLength)
	checkLength(errs, "content", f.Content, kind.MaxContentLength)

	if errs.Has() {
		return errs
	}
	return nil
}

func actionFor(editing bool) Action {
	if editing {
		return ActionUpdate
	}
	return ActionCreate
}
