// Package forms binds submitted HTML forms and turns validation failures
// into per-field messages that can be rendered next to the inputs.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/blog/internal/constants"
)

// Errors maps a form field name to its validation messages
type Errors map[string][]string

// Add records a message for field
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether any error was recorded
func (e Errors) Has() bool {
	return len(e) > 0
}

// Error implements the error interface
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msgs := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// RegistrationForm is submitted on /register
type RegistrationForm struct {
	Username  string `form:"username" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required"`
	Password2 string `form:"password2" binding:"required,eqfield=Password"`
}

// LoginForm is submitted on /login
type LoginForm struct {
	Username   string `form:"username" binding:"required"`
	Password   string `form:"password" binding:"required"`
	RememberMe bool   `form:"remember_me"`
}

// ProfileForm is submitted on /edit_profile
type ProfileForm struct {
	Username string `form:"username" binding:"required"`
}

// fieldChecker is implemented by forms with rules the binding tags cannot express
type fieldChecker interface {
	checkFields(errs Errors)
}

// Bind binds the request body into form and validates it. A nil result
// means the form is valid.
func Bind(c *gin.Context, form interface{}) Errors {
	errs := Errors{}
	if err := c.ShouldBind(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs.Add("form", "The submitted form could not be read.")
			return errs
		}
		translate(form, verrs, errs)
	}

	if fc, ok := form.(fieldChecker); ok {
		fc.checkFields(errs)
	}
	if errs.Has() {
		return errs
	}
	return nil
}

func (f *RegistrationForm) checkFields(errs Errors) {
	checkUsername(errs, f.Username)
	if len(errs["email"]) == 0 {
		checkLength(errs, "email", f.Email, constants.MaxEmailLength)
	}
}

func (f *LoginForm) checkFields(errs Errors) {
	if len(errs["username"]) == 0 {
		requireNonBlank(errs, "username", f.Username)
	}
}

func (f *ProfileForm) checkFields(errs Errors) {
	checkUsername(errs, f.Username)
}

// checkUsername applies the rules for a new username. Usernames appear in
// /user/<username> links, so URL delimiters are rejected.
func checkUsername(errs Errors, username string) {
	if len(errs["username"]) > 0 {
		return
	}

	switch {
	case strings.TrimSpace(username) == "":
		errs.Add("username", "This field is required.")
	case utf8.RuneCountInString(username) > constants.MaxUsernameLength:
		checkLength(errs, "username", username, constants.MaxUsernameLength)
	case strings.ContainsAny(username, constants.UsernameForbiddenChars):
		errs.Add("username", "Username cannot contain any of / ? # % \\ characters.")
	}
}

func requireNonBlank(errs Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, "This field is required.")
	}
}

func translate(form interface{}, verrs validator.ValidationErrors, errs Errors) {
	for _, fe := range verrs {
		errs.Add(fieldName(form, fe.StructField()), message(fe))
	}
}

// fieldName resolves the form tag of a struct field
func fieldName(form interface{}, structField string) string {
	t := reflect.TypeOf(form)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(structField); ok {
		if tag := f.Tag.Get("form"); tag != "" {
			return strings.Split(tag, ",")[0]
		}
	}
	return strings.ToLower(structField)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "eqfield":
		return fmt.Sprintf("Field must be equal to %s.", strings.ToLower(fe.Param()))
	default:
		return "Invalid value."
	}
}

func checkLength(errs Errors, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		errs.Add(field, fmt.Sprintf("Field cannot be longer than %d characters.", max))
	}
}

// EntryKind distinguishes posts from comments, which share one form
type EntryKind struct {
	MaxContentLength int
}

var (
	PostEntry    = EntryKind{MaxContentLength: constants.MaxPostContentLength}
	CommentEntry = EntryKind{MaxContentLength: constants.MaxCommentContentLength}
)
