package tasks

import "github.com/memohai/crm/internal/crm"

// Defaults applied on create.
const (
	DefaultStatus   = "pending"
	DefaultPriority = "medium"

	StatusCompleted = "completed"
)

// Task is a to-do item. DueDate is nil when the task has no due date.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     *crm.Date    `json:"due_date"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	CreatedAt   crm.DateTime `json:"created_at"`
}

// CreateRequest is the input for creating a task. Title is required; an
// unreadable DueDate leaves the task without one.
type CreateRequest struct {
	Title       crm.Optional[string]       `json:"title"`
	Description crm.Optional[string]       `json:"description"`
	DueDate     crm.Optional[crm.DateText] `json:"due_date"`
	Status      crm.Optional[string]       `json:"status"`
	Priority    crm.Optional[string]       `json:"priority"`
}

// UpdateRequest changes only the fields that were sent. DueDate sent as null
// or "" clears it; an unreadable value keeps the stored one.
type UpdateRequest struct {
	Title       crm.Optional[string]       `json:"title"`
	Description crm.Optional[string]       `json:"description"`
	DueDate     crm.Optional[crm.DateText] `json:"due_date"`
	Status      crm.Optional[string]       `json:"status"`
	Priority    crm.Optional[string]       `json:"priority"`
}
