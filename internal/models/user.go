package models

// User represents a registered user.
// ID is an opaque identifier generated by the store.
type User struct {
	ID       string `json:"_id" db:"id"`             // Opaque store identifier
	Username string `json:"username" db:"username"` // Unique username
}

// NewUserRequest represents the form body of the new-user endpoint
// swagger:model NewUserRequest
type NewUserRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username"`
}

// ErrorResponse is the body returned for every failed request.
// The HTTP status stays 200; callers branch on the error field.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Server Error
	Error string `json:"error"`
}
