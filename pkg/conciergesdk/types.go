package conciergesdk

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the standard error envelope returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_request", "invalid_grant")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Invite Types
// ============================================================================

// IssueInviteRequest asks the service to issue a single invite credential.
type IssueInviteRequest struct {
	// Kind selects the credential flavour: "code" or "email_token"
	Kind string `json:"kind"`

	// Email is the address an email_token is bound to. Forbidden for codes.
	Email string `json:"email,omitempty"`

	// Notes is free-form operator text stored alongside the credential
	Notes string `json:"notes,omitempty"`

	// TTLHours overrides the configured default lifetime when positive
	TTLHours int `json:"ttl_hours,omitempty"`
}

// InviteResponse describes one invite credential.
type InviteResponse struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Secret string `json:"secret"`

	// Link is the shareable registration URL built from the secret
	Link string `json:"link,omitempty"`

	// Email is the bound address (email_token kind only)
	Email string `json:"email,omitempty"`

	Notes string `json:"notes,omitempty"`

	// ExpiresAt is epoch time in seconds
	ExpiresAt int64 `json:"expires_at"`
}

// ListInvitesResponse contains the caller's currently active invites, newest first.
type ListInvitesResponse struct {
	Invites []InviteResponse `json:"invites"`
}

// EmailInvitesRequest asks the service to issue email-bound invites in bulk
// and dispatch a registration link to each address.
type EmailInvitesRequest struct {
	Emails []string `json:"emails"`
	Notes  string   `json:"notes,omitempty"`

	// TTLHours overrides the configured default lifetime when positive
	TTLHours int `json:"ttl_hours,omitempty"`
}

// EmailInvitesResponse reports the issued invites and how many notifications
// actually went out. Sent may be lower than len(Invites); issuance succeeds
// independently of delivery.
type EmailInvitesResponse struct {
	Invites []InviteResponse `json:"invites"`
	Sent    int              `json:"sent"`
}

// ValidateInviteRequest is the read-only pre-flight check payload.
type ValidateInviteRequest struct {
	Secret string `json:"secret"`
	Kind   string `json:"kind"`
}

// ValidateInviteResponse reports whether the credential was active at the
// time of the check. The result is advisory: the credential may be consumed
// or expire between validation and redemption.
type ValidateInviteResponse struct {
	Valid bool   `json:"valid"`
	Kind  string `json:"kind,omitempty"`
	Email string `json:"email,omitempty"`

	// ExpiresAt is epoch time in seconds
	ExpiresAt int64 `json:"expires_at,omitempty"`
}

// RedeemInviteRequest consumes an invite credential for a redeemer.
type RedeemInviteRequest struct {
	Secret string `json:"secret"`
	Kind   string `json:"kind"`

	// RedeemerID identifies the account being created from this invite
	RedeemerID string `json:"redeemer_id"`
}

// RedeemInviteResponse confirms a successful redemption.
type RedeemInviteResponse struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Email string `json:"email,omitempty"`

	// RedeemedAt is epoch time in seconds
	RedeemedAt int64 `json:"redeemed_at"`
}

// CleanupResponse reports how many expired, never-redeemed credentials were purged.
type CleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by the /livez and /readyz endpoints (readyz
// includes the Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
