// FILE: internal/dto/auth_dto.go
package dto

// --- Auth DTOs ---

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// SessionResponse answers the rehydration lookup. AutoLoggedOut is only ever
// true on the anonymous branch, while the expiry notice is still pending.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	AutoLoggedOut bool   `json:"auto_logged_out,omitempty"`
}
