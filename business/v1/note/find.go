package note

import (
	"context"
	"github.com/ribgsilva/note-app/persistence/v1/note"
)

// Find returns the note identified by ref, ErrNotFound when it is missing or owned by someone else
func Find(ctx context.Context, ref Ref) (Note, error) {
	find, err := note.Find(ctx, ref.Id)
	if err != nil {
		return Note{}, err
	}
	if find.Id == 0 || find.UserId != ref.UserId {
		return Note{}, ErrNotFound
	}
	return Note(find), nil
}

// List returns the notes of a user ordered by id
func List(ctx context.Context, userId string) ([]Note, error) {
	found, err := note.List(ctx, userId)
	if err != nil {
		return nil, err
	}
	notes := make([]Note, 0, len(found))
	for _, n := range found {
		notes = append(notes, Note(n))
	}
	return notes, nil
}
