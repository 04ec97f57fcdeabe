package dto

// LoginRequest payload for POST /portal/login. Portal names which
// sign-in surface the credentials were entered on: "user" or "tech".
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Portal   string `json:"portal"`
}

// IdentityView is the decoded session identity.
type IdentityView struct {
	UserID   int    `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	ClientID int    `json:"client_id"`
}

// LoginResponse returns the established identity and where the client
// should navigate next.
type LoginResponse struct {
	Identity   IdentityView `json:"identity"`
	RedirectTo string       `json:"redirect_to"`
}

// SessionResponse describes the current authentication state.
type SessionResponse struct {
	State    string        `json:"state"`
	Identity *IdentityView `json:"identity,omitempty"`
}
