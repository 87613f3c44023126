package blog

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CommentForm carries reader-submitted comment fields.
type CommentForm struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Body  string `json:"body" form:"body"`
}

func (f CommentForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Body, validation.Required),
	)
}

// ShareForm carries the fields of a forward-by-email request.
type ShareForm struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	To       string `json:"to" form:"to"`
	Comments string `json:"comments" form:"comments"`
}

func (f ShareForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.To, validation.Required, is.Email),
		validation.Field(&f.Comments, validation.Length(0, 2000)),
	)
}

// AsValidationErrors unwraps err into the per-field message map when it is
// a recoverable form validation failure.
func AsValidationErrors(err error) (validation.Errors, bool) {
	var verr validation.Errors
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
