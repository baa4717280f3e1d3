// Package notebook is what the web client does with the notes of the logged in user.
package notebook

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/gateway/v1/noteapi"
	"github.com/ribgsilva/note-app/sys"
	"strings"
)

// Load returns the user's notes, falling back to the demo notes when the api call fails
func Load(ctx context.Context, token string) []Note {
	list, err := noteapi.List(ctx, token)
	if err != nil {
		sys.R.Log.Errorw("notebook", "action", "load", "ERROR", err)
		return Demo()
	}

	notes := make([]Note, 0, len(list))
	for _, n := range list {
		notes = append(notes, Note(n))
	}
	return notes
}

// Add creates a note. Nothing is sent when title or content is empty.
func Add(ctx context.Context, token, title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return ErrMissingFields
	}

	if _, err := noteapi.Create(ctx, token, noteapi.NewNote{Title: title, Content: content, Completed: false}); err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}
	return nil
}

// Remove deletes a note
func Remove(ctx context.Context, token string, id uint64) error {
	if err := noteapi.Delete(ctx, token, id); err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}
	return nil
}

// Toggle sets the completion flag of a note to completed
func Toggle(ctx context.Context, token string, id uint64, completed bool) error {
	if _, err := noteapi.SetCompleted(ctx, token, id, completed); err != nil {
		return fmt.Errorf("failed to toggle note %d: %w", id, err)
	}
	return nil
}
