package activities

import "github.com/memohai/crm/internal/crm"

// Activity is a logged interaction with a client (call, meeting, email...).
type Activity struct {
	ID          int64        `json:"id"`
	ClientID    int64        `json:"client_id"`
	Type        string       `json:"type"`
	Subject     string       `json:"subject"`
	Description string       `json:"description"`
	Date        crm.DateTime `json:"date"`
	CreatedAt   crm.DateTime `json:"created_at"`
}

// CreateRequest is the input for logging an activity. ClientID, Type and
// Subject are required; a missing or unreadable Date means now.
type CreateRequest struct {
	ClientID    crm.Optional[int64]        `json:"client_id"`
	Type        crm.Optional[string]       `json:"type"`
	Subject     crm.Optional[string]       `json:"subject"`
	Description crm.Optional[string]       `json:"description"`
	Date        crm.Optional[crm.DateText] `json:"date"`
}

// UpdateRequest changes only the fields that were sent. A Date that is
// empty or unreadable leaves the stored date alone.
type UpdateRequest struct {
	ClientID    crm.Optional[int64]        `json:"client_id"`
	Type        crm.Optional[string]       `json:"type"`
	Subject     crm.Optional[string]       `json:"subject"`
	Description crm.Optional[string]       `json:"description"`
	Date        crm.Optional[crm.DateText] `json:"date"`
}
