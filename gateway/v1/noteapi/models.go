package noteapi

import "fmt"

type Note struct {
	Id        uint64 `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

type NewNote struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

type completion struct {
	Completed bool `json:"completed"`
}

// StatusError is returned when the notes api answers with a non 2xx status
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("notes api responded %d", e.Status)
	}
	return fmt.Sprintf("notes api responded %d: %s", e.Status, e.Message)
}
