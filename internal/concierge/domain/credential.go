package domain

import "time"

// CredentialKind discriminates the two invite credential shapes.
type CredentialKind string

const (
	// KindCode is a short code an admin hands over verbally or on paper.
	KindCode CredentialKind = "code"
	// KindEmailToken is a long URL-safe token bound to an email address.
	KindEmailToken CredentialKind = "email_token"
)

// Valid reports whether k is one of the known credential kinds.
func (k CredentialKind) Valid() bool {
	return k == KindCode || k == KindEmailToken
}

// Credential is a single-use, time-bounded invite credential.
//
// Lifecycle: created at issuance, consumed at most once by redemption
// (Used/UsedAt/RedeemerID are set together and never change again), and
// removed only by the cleanup sweep once expired without ever being used.
// Redeemed credentials are retained for audit.
type Credential struct {
	ID         string
	Kind       CredentialKind
	Secret     string
	BoundEmail string // email_token kind only; stored lower-cased
	IssuerID   string
	Notes      string
	ExpiresAt  time.Time
	Used       bool
	UsedAt     *time.Time
	RedeemerID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Active reports whether the credential can still be redeemed at now.
func (c Credential) Active(now time.Time) bool {
	return !c.Used && now.Before(c.ExpiresAt)
}
