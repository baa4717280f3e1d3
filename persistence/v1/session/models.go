package session

const (
	sessionKey = "session.%s"
	stateKey   = "oauth.state.%s"
)

// Session is what the web client keeps for a logged in browser
type Session struct {
	Token    string `json:"access_token"`
	Username string `json:"username"`
	Flash    string `json:"flash,omitempty"`
}
