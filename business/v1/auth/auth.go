// Package auth runs the authorization code flow against the identity provider
// and keeps the resulting bearer token in a server side session.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"github.com/ribgsilva/note-app/persistence/v1/session"
	"github.com/ribgsilva/note-app/platform/token"
	"github.com/ribgsilva/note-app/sys"
	"golang.org/x/oauth2"
	"strings"
	"time"
)

func config() *oauth2.Config {
	c := sys.Configs.OAuth
	base := fmt.Sprintf("%s/realms/%s/protocol/openid-connect", strings.TrimRight(c.URL, "/"), c.Realm)
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   base + "/auth",
			TokenURL:  base + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: c.RedirectURL,
		Scopes:      []string{"openid"},
	}
}

// LoginURL issues a new state and returns the identity provider url the browser must visit
func LoginURL(ctx context.Context) (string, error) {
	state, err := newState()
	if err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	if err := session.SaveState(ctx, state); err != nil {
		return "", err
	}
	return config().AuthCodeURL(state), nil
}

// Complete exchanges the authorization code for a token and opens a session for it
func Complete(ctx context.Context, state, code string) (string, Session, error) {
	ok, err := session.PullState(ctx, state)
	if err != nil {
		return "", Session{}, err
	}
	if !ok {
		return "", Session{}, ErrInvalidState
	}

	if sys.R.HTTP != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, sys.R.HTTP)
	}
	tok, err := config().Exchange(ctx, code)
	if err != nil {
		return "", Session{}, fmt.Errorf("failed to exchange code: %w", err)
	}

	claims, err := token.Decode(tok.AccessToken)
	if err != nil {
		return "", Session{}, err
	}
	username := claims.Username
	if username == "" {
		username = DefaultUsername
	}

	s := Session{Token: tok.AccessToken, Username: username}
	id, err := session.Create(ctx, session.Session(s))
	if err != nil {
		return "", Session{}, err
	}
	return id, s, nil
}

// Current returns the session of id while its token is still valid.
// Sessions holding an expired or unreadable token are removed so the user has to log in again.
func Current(ctx context.Context, id string) (Session, bool, error) {
	found, ok, err := session.Find(ctx, id)
	if err != nil || !ok {
		return Session{}, false, err
	}

	claims, err := token.Decode(found.Token)
	if err != nil || claims.Expired(time.Now()) {
		if err != nil {
			sys.R.Log.Warnw("auth", "session", id, "ERROR", err)
		}
		if err := session.Delete(ctx, id); err != nil {
			return Session{}, false, err
		}
		return Session{}, false, nil
	}

	return Session(found), true, nil
}

// SetFlash stores a message shown once on the next page render
func SetFlash(ctx context.Context, id string, s Session, msg string) error {
	s.Flash = msg
	return session.Save(ctx, id, session.Session(s))
}

// PopFlash returns the pending message of the session and clears it
func PopFlash(ctx context.Context, id string, s Session) (string, error) {
	if s.Flash == "" {
		return "", nil
	}
	msg := s.Flash
	s.Flash = ""
	if err := session.Save(ctx, id, session.Session(s)); err != nil {
		return msg, err
	}
	return msg, nil
}

// Logout ends the session
func Logout(ctx context.Context, id string) error {
	return session.Delete(ctx, id)
}

func newState() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
