package contacts

import "github.com/memohai/crm/internal/crm"

// Contact is a person working at a client.
type Contact struct {
	ID        int64        `json:"id"`
	ClientID  int64        `json:"client_id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Position  string       `json:"position"`
	Notes     string       `json:"notes"`
	CreatedAt crm.DateTime `json:"created_at"`
}

// CreateRequest is the input for creating a contact. ClientID and Name are required.
type CreateRequest struct {
	ClientID crm.Optional[int64]  `json:"client_id"`
	Name     crm.Optional[string] `json:"name"`
	Email    crm.Optional[string] `json:"email"`
	Phone    crm.Optional[string] `json:"phone"`
	Position crm.Optional[string] `json:"position"`
	Notes    crm.Optional[string] `json:"notes"`
}

// UpdateRequest changes only the fields that were sent.
type UpdateRequest struct {
	ClientID crm.Optional[int64]  `json:"client_id"`
	Name     crm.Optional[string] `json:"name"`
	Email    crm.Optional[string] `json:"email"`
	Phone    crm.Optional[string] `json:"phone"`
	Position crm.Optional[string] `json:"position"`
	Notes    crm.Optional[string] `json:"notes"`
}
