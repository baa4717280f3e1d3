package note

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-app/sys"
)

// Find returns the note with the given id, reading through the cache. A zero Note means it does not exist.
func Find(ctx context.Context, id uint64) (Note, error) {
	logger := sys.R.Log
	cache := sys.R.Cache
	db := sys.R.Database

	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get notes ", id, " from cache: ", err.Error())
	}
	if get != "" {
		var note Note
		if err := json.Unmarshal([]byte(get), &note); err != nil {
			logger.Errorf("error parsing cached response for key %s: %s", key, err)
		} else {
			return note, nil
		}
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT "+columns+" FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	var note Note
	err = stmt.QueryRowContext(dbCtx, id).
		Scan(&note.Id, &note.Title, &note.Content, &note.Completed, &note.UserId, &note.UpdatedAt, &note.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}

	if data, err := json.Marshal(note); err != nil {
		logger.Errorf("error parsing data to cache for key %s: %s", key, err)
	} else {
		tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
		defer tcCancel()

		if err := cache.Set(tcCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
			logger.Error("failure to set notes ", id, " into cache: ", err.Error())
		}
	}

	return note, nil
}

// List returns every note owned by userId ordered by id
func List(ctx context.Context, userId string) ([]Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	rows, err := db.QueryContext(dbCtx, "SELECT "+columns+" FROM notes WHERE userId = ? ORDER BY id", userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		var note Note
		if err := rows.Scan(&note.Id, &note.Title, &note.Content, &note.Completed, &note.UserId, &note.UpdatedAt, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate list rows: %w", err)
	}

	return notes, nil
}
