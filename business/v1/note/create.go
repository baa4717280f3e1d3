package note

import (
	"context"
	"github.com/ribgsilva/note-app/persistence/v1/note"
)

// Create validates and stores a new note
func Create(ctx context.Context, newN NewNote) (Note, error) {
	if newN.Title == "" || newN.Content == "" {
		return Note{}, ErrInvalid
	}
	created, err := note.Insert(ctx, note.NewNote(newN))
	if err != nil {
		return Note{}, err
	}
	return Note(created), nil
}
