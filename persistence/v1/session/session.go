package session

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/ribgsilva/note-app/sys"
)

// Create stores a new session and returns its id
func Create(ctx context.Context, s Session) (string, error) {
	id := uuid.NewString()
	if err := Save(ctx, id, s); err != nil {
		return "", err
	}
	return id, nil
}

// Save overwrites the session, restarting its ttl
func Save(ctx context.Context, id string, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := sys.R.Cache.Set(tcCtx, fmt.Sprintf(sessionKey, id), data, sys.Configs.Session.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Find returns the session with the given id, false when there is none
func Find(ctx context.Context, id string) (Session, bool, error) {
	if id == "" {
		return Session{}, false, nil
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := sys.R.Cache.Get(tcCtx, fmt.Sprintf(sessionKey, id)).Result()
	switch {
	case err == redis.Nil:
		return Session{}, false, nil
	case err != nil:
		return Session{}, false, fmt.Errorf("failed to get session: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(get), &s); err != nil {
		return Session{}, false, fmt.Errorf("failed to decode session: %w", err)
	}
	return s, true, nil
}

// Delete removes a session, deleting a missing session is not an error
func Delete(ctx context.Context, id string) error {
	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := sys.R.Cache.Del(tcCtx, fmt.Sprintf(sessionKey, id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
