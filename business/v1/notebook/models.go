package notebook

import "errors"

const (
	// MsgMissingFields is shown when a note is submitted without title or content
	MsgMissingFields = "Please enter both title and content"
	// MsgAddFailed is shown when the notes api refused or could not take the new note
	MsgAddFailed = "Failed to add note. Using demo mode."
)

// ErrMissingFields is returned by Add before any call is made when title or content is empty
var ErrMissingFields = errors.New("title and content are required")

type Note struct {
	Id        uint64
	Title     string
	Content   string
	Completed bool
}

// Demo is shown instead of the user's notes when they can not be loaded
func Demo() []Note {
	return []Note{
		{Id: 1, Title: "Welcome", Content: "This is a demo note", Completed: false},
	}
}
