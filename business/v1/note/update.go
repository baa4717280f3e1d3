package note

import (
	"context"
	"github.com/ribgsilva/note-app/persistence/v1/note"
)

// Update applies the non nil fields of upd to the note identified by ref
func Update(ctx context.Context, ref Ref, upd UpdateNote) (Note, error) {
	current, err := Find(ctx, ref)
	if err != nil {
		return Note{}, err
	}

	if upd.Title != nil {
		current.Title = *upd.Title
	}
	if upd.Content != nil {
		current.Content = *upd.Content
	}
	if upd.Completed != nil {
		current.Completed = *upd.Completed
	}

	updated, err := note.Update(ctx, note.Note(current))
	if err != nil {
		return Note{}, err
	}
	return Note(updated), nil
}

// Delete removes the note identified by ref
func Delete(ctx context.Context, ref Ref) error {
	if _, err := Find(ctx, ref); err != nil {
		return err
	}
	return note.Delete(ctx, ref.Id)
}
