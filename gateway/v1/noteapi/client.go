// Package noteapi calls the notes api on behalf of a logged in user.
package noteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/ribgsilva/note-app/sys"
	"io"
	"net/http"
	"strings"
)

// List returns the notes of the token owner
func List(ctx context.Context, token string) ([]Note, error) {
	var notes []Note
	if err := call(ctx, http.MethodGet, "/api/notes", token, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Create creates a note owned by the token owner
func Create(ctx context.Context, token string, newN NewNote) (Note, error) {
	var created Note
	if err := call(ctx, http.MethodPost, "/api/notes", token, newN, &created); err != nil {
		return Note{}, err
	}
	return created, nil
}

// Delete deletes a note of the token owner
func Delete(ctx context.Context, token string, id uint64) error {
	return call(ctx, http.MethodDelete, fmt.Sprintf("/api/notes/%d", id), token, nil, nil)
}

// SetCompleted changes the completion flag of a note of the token owner
func SetCompleted(ctx context.Context, token string, id uint64, completed bool) (Note, error) {
	var updated Note
	if err := call(ctx, http.MethodPut, fmt.Sprintf("/api/notes/%d", id), token, completion{Completed: completed}, &updated); err != nil {
		return Note{}, err
	}
	return updated, nil
}

func call(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	callCtx, cancel := context.WithTimeout(ctx, sys.Configs.NotesAPI.Timeout)
	defer cancel()

	url := strings.TrimRight(sys.Configs.NotesAPI.URL, "/") + path
	req, err := http.NewRequestWithContext(callCtx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := sys.R.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &StatusError{Status: resp.StatusCode, Message: e.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
