package service

import (
	"context"
	"time"

	"github.com/harbourview/concierge/internal/concierge/domain"
	"github.com/harbourview/concierge/pkg/slogx"
)

// Audit actions emitted by the invite service.
const (
	AuditIssued       = "invite.issued"
	AuditIssueDenied  = "invite.issue_denied"
	AuditValidated    = "invite.validated"
	AuditValidateMiss = "invite.validate_miss"
	AuditRedeemed     = "invite.redeemed"
	AuditRedeemDenied = "invite.redeem_denied"
	AuditCleanup      = "invite.cleanup"
)

// Internal denial reasons. These are recorded for the audit trail only and
// never surface in a caller-visible result.
const (
	ReasonQuotaExceeded = "quota_exceeded"
	ReasonNotFound      = "not_found"
	ReasonAlreadyUsed   = "already_used"
	ReasonExpired       = "expired"
	ReasonUnknown       = "unknown"
)

// AuditEvent describes one issuance, validation, redemption or cleanup
// attempt, including the internal reason when the attempt was denied.
type AuditEvent struct {
	Action       string
	Kind         domain.CredentialKind
	CredentialID string
	IssuerID     string
	RedeemerID   string
	Reason       string
	Deleted      int64
	At           time.Time
}

// Auditor receives one-way notifications about invite activity. It is
// injected into the service rather than reached through a global, so tests
// can assert on emitted events.
type Auditor interface {
	Record(ctx context.Context, ev AuditEvent)
}

// LogAuditor writes audit events to the contextual logger.
type LogAuditor struct{}

func (LogAuditor) Record(ctx context.Context, ev AuditEvent) {
	slogx.FromContext(ctx).Info("audit",
		"action", ev.Action,
		"kind", string(ev.Kind),
		"credential_id", ev.CredentialID,
		"issuer_id", ev.IssuerID,
		"redeemer_id", ev.RedeemerID,
		"reason", ev.Reason,
		"deleted", ev.Deleted,
		"at", ev.At,
	)
}
