package auth

import "errors"

// DefaultUsername is shown when the token carries no preferred_username
const DefaultUsername = "User"

// ErrInvalidState is returned when the callback state was never issued or was already used
var ErrInvalidState = errors.New("invalid oauth state")

// Session is the logged in state of a browser
type Session struct {
	Token    string
	Username string
	Flash    string
}
