package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/sys"
	"gocloud.dev/pubsub"
)

// Consume receives note events until ctx is cancelled, handling at most maxWorkers of them at once.
// Every message is acked, events that can not be applied are only logged.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			if err := Handle(ctx, m.Body); err != nil {
				logger.Errorw("consume", "body", string(m.Body), "ERROR", err)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Handle applies a single note event
func Handle(ctx context.Context, body []byte) error {
	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch e.Type {
	case note.EventCreate:
		var c note.NewNote
		if err := json.Unmarshal(e.Data, &c); err != nil {
			return fmt.Errorf("failed to parse create event: %w", err)
		}
		if _, err := note.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}
	case note.EventUpdate:
		var c note.Change
		if err := json.Unmarshal(e.Data, &c); err != nil {
			return fmt.Errorf("failed to parse update event: %w", err)
		}
		if _, err := note.Update(ctx, c.Ref, c.UpdateNote); err != nil {
			return fmt.Errorf("failed to update note %d: %w", c.Id, err)
		}
	case note.EventDelete:
		var r note.Ref
		if err := json.Unmarshal(e.Data, &r); err != nil {
			return fmt.Errorf("failed to parse delete event: %w", err)
		}
		if err := note.Delete(ctx, r); err != nil {
			return fmt.Errorf("failed to delete note %d: %w", r.Id, err)
		}
	default:
		return fmt.Errorf("unknown event type: %q", e.Type)
	}
	return nil
}
