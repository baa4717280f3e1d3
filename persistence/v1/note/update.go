package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/sys"
	"time"
)

// Update overwrites the mutable fields of a note and drops its cache entry
func Update(ctx context.Context, n Note) (Note, error) {
	db := sys.R.Database

	n.UpdatedAt = time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "UPDATE notes SET updatedAt = ?, title = ?, content = ?, completed = ? WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare update stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, n.UpdatedAt, n.Title, n.Content, bit(n.Completed), n.Id); err != nil {
		return Note{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}

	evict(ctx, n.Id)
	return n, nil
}

// Delete removes a note and its cache entry
func Delete(ctx context.Context, id uint64) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM notes WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(dbCtx, id); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}

	evict(ctx, id)
	return nil
}

func evict(ctx context.Context, id uint64) {
	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := sys.R.Cache.Del(tcCtx, fmt.Sprintf(noteKey, id)).Err(); err != nil {
		sys.R.Log.Error("failure to evict notes ", id, " from cache: ", err.Error())
	}
}
