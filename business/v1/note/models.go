package note

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when the note does not exist or belongs to another user
	ErrNotFound = errors.New("note not found")
	// ErrInvalid is returned when a note is missing its title or content
	ErrInvalid = errors.New("title and content are required")
)

type Note struct {
	Id        uint64    `json:"id" example:"1"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content" example:"my note content"`
	Completed bool      `json:"completed" example:"false"`
	UserId    string    `json:"user_id" example:"f8a3c2de-1c55-4c1a-9f6e-3b1c2e0d9a10"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type NewNote struct {
	Title     string `json:"title" example:"my note"`
	Content   string `json:"content" example:"my note content"`
	Completed bool   `json:"completed" example:"false"`
	UserId    string `json:"user_id,omitempty" swaggerignore:"true"`
}

// UpdateNote holds the fields to change, nil fields are left untouched
type UpdateNote struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Ref identifies a note of a given user
type Ref struct {
	Id     uint64 `json:"id"`
	UserId string `json:"user_id"`
}

// Change is the payload of an update event
type Change struct {
	Ref
	UpdateNote
}

const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)

// Event is a note change received from the messaging queue. Data holds a NewNote, a Change or a Ref depending on Type.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}
