package chat

import "strings"

// Credential owns the password check for exactly one registered user.
// It is created together with the user during registration and never
// changes afterwards.
type Credential struct {
	password string
}

// NewCredential wraps password into an immutable Credential.
// An empty or whitespace-only password is rejected.
func NewCredential(password string) (*Credential, error) {
	if strings.TrimSpace(password) == "" {
		return nil, ErrEmptyPassword
	}

	return &Credential{password: password}, nil
}

// Matches compares candidate against the stored password. Plain string
// equality is the contract: comparison is case-sensitive and unhashed.
func (c *Credential) Matches(candidate string) bool {
	return c.password == candidate
}
