package domain

// Identity is a credential-store record that enables login. The role claim
// carried here is the authoritative role at login time.
type Identity struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	DisplayName  string `json:"display_name,omitempty"`
}

// Session is the transient authenticated-caller state. It lives only inside
// the signed token for the session's duration and is never persisted.
type Session struct {
	IdentityID string `json:"identity_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
}
