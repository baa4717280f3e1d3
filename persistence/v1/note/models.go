package note

import "time"

const noteKey = "notes.%d"

const columns = "id, title, content, completed, userId, updatedAt, createdAt"

// bit binds a flag as the 0/1 the BOOLEAN column stores
func bit(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

type Note struct {
	Id        uint64
	Title     string
	Content   string
	Completed bool
	UserId    string
	UpdatedAt time.Time
	CreatedAt time.Time
}

type NewNote struct {
	Title     string
	Content   string
	Completed bool
	UserId    string
}
