package session

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/sys"
)

// SaveState remembers an oauth state until it is pulled or sys.Configs.OAuth.StateTTL passes
func SaveState(ctx context.Context, state string) error {
	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := sys.R.Cache.Set(tcCtx, fmt.Sprintf(stateKey, state), "1", sys.Configs.OAuth.StateTTL).Err(); err != nil {
		return fmt.Errorf("failed to store state: %w", err)
	}
	return nil
}

// PullState reports whether the state was issued and removes it, so a state is only accepted once
func PullState(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	deleted, err := sys.R.Cache.Del(tcCtx, fmt.Sprintf(stateKey, state)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to pull state: %w", err)
	}
	return deleted == 1, nil
}
