package clients

import "github.com/memohai/crm/internal/crm"

// DefaultStatus is applied when a client is created without one.
const DefaultStatus = "active"

// Client is a customer organization or person.
type Client struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Company   string       `json:"company"`
	Address   string       `json:"address"`
	Status    string       `json:"status"`
	CreatedAt crm.DateTime `json:"created_at"`
}

// CreateRequest is the input for creating a client. Name and email are required.
type CreateRequest struct {
	Name    crm.Optional[string] `json:"name"`
	Email   crm.Optional[string] `json:"email"`
	Phone   crm.Optional[string] `json:"phone"`
	Company crm.Optional[string] `json:"company"`
	Address crm.Optional[string] `json:"address"`
	Status  crm.Optional[string] `json:"status"`
}

// UpdateRequest changes only the fields that were sent.
type UpdateRequest struct {
	Name    crm.Optional[string] `json:"name"`
	Email   crm.Optional[string] `json:"email"`
	Phone   crm.Optional[string] `json:"phone"`
	Company crm.Optional[string] `json:"company"`
	Address crm.Optional[string] `json:"address"`
	Status  crm.Optional[string] `json:"status"`
}

// ListFilter narrows List. Empty fields do not filter.
type ListFilter struct {
	// Search matches name, email or company, case-insensitively.
	Search string
	// Status must match exactly.
	Status string
}
