package handlers

import "github.com/memohai/crm/internal/server"

// ErrorResponse is the standard API error body (message only).
type ErrorResponse = server.ErrorBody
