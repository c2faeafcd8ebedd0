package domain

import "time"

// TodoItem is one entry on a user's to-do list.
// CreatedAt is set once when the item is created and never updated.
type TodoItem struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}
