package access

import "github.com/cairncms/cairn/pkg/model"

// Credentials is a local sign-in request. Exactly one of Email, Username
// and Application must be set; which one decides the session method.
type Credentials struct {
	Email       string `json:"email,omitempty"`
	Username    string `json:"username,omitempty"`
	Application string `json:"application,omitempty"`
	Password    string `json:"password"`
}

// Method returns the session method implied by the populated identifier.
// Zero or more than one identifier is a validation error, never a guess.
func (c Credentials) Method() (model.Method, error) {
	var (
		method model.Method
		count  int
	)
	if c.Email != "" {
		method = model.MethodEmail
		count++
	}
	if c.Username != "" {
		method = model.MethodUsername
		count++
	}
	if c.Application != "" {
		method = model.MethodApplication
		count++
	}
	switch count {
	case 0:
		return 0, NewValidationError("one of email, username or application is required")
	case 1:
		return method, nil
	default:
		return 0, NewValidationError("only one of email, username or application may be given")
	}
}
