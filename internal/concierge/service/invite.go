package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/harbourview/concierge/internal/concierge/domain"
	"github.com/harbourview/concierge/internal/concierge/store"
	"github.com/harbourview/concierge/pkg/cryptox"
	"github.com/harbourview/concierge/pkg/idx"
	"github.com/harbourview/concierge/pkg/slogx"
)

var (
	ErrInvalidRequest = errors.New("invalid invite request")
	// ErrQuotaExceeded means the issuer already holds the configured number
	// of active credentials of that kind. User-correctable, no retry.
	ErrQuotaExceeded = errors.New("active invite quota reached")
	// ErrInvalidOrExpired deliberately covers never-existed, already-used
	// and expired credentials alike, so redemption responses don't let a
	// caller enumerate which secrets exist.
	ErrInvalidOrExpired = errors.New("invite credential is invalid or expired")
	// ErrStorageFailure marks a transient storage-layer failure; callers
	// may retry.
	ErrStorageFailure = errors.New("invite storage failure")
)

// secretAttempts bounds regeneration when a freshly generated secret
// collides with an active one. Collisions are astronomically unlikely, so
// exhausting this is treated as a storage fault, not bad luck.
const secretAttempts = 3

// InviteConfig carries the issuance policy, read once at construction.
type InviteConfig struct {
	CodeTTL            time.Duration
	EmailTokenTTL      time.Duration
	MaxActivePerIssuer int
}

// InviteService owns the business rules around invite credentials:
// issuance with quota enforcement, validation, at-most-once redemption and
// the expiry cleanup sweep.
type InviteService struct {
	Store  store.Store
	Audit  Auditor
	Config InviteConfig

	// Now overrides the clock in tests. Nil means time.Now.
	Now func() time.Time
}

func (s *InviteService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *InviteService) record(ctx context.Context, ev AuditEvent) {
	if s.Audit == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = s.now()
	}
	s.Audit.Record(ctx, ev)
}

// Issue creates a new invite credential for issuerID.
//
// The TTL is ttlOverride when positive, otherwise the configured default
// for the kind. The quota check and the insert run in one store
// transaction; on a secret collision the secret is regenerated a bounded
// number of times. Nothing is persisted when the quota is already met.
func (s *InviteService) Issue(
	ctx context.Context,
	issuerID string,
	kind domain.CredentialKind,
	boundEmail string,
	notes string,
	ttlOverride time.Duration,
) (domain.Credential, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the request shape.
	if issuerID == "" || !kind.Valid() {
		return domain.Credential{}, ErrInvalidRequest
	}
	boundEmail = strings.ToLower(strings.TrimSpace(boundEmail))
	switch kind {
	case domain.KindEmailToken:
		if boundEmail == "" || !strings.Contains(boundEmail, "@") {
			log.Warn("invite issuance with missing or malformed email", slog.String("issuer_id", issuerID))
			return domain.Credential{}, ErrInvalidRequest
		}
	case domain.KindCode:
		if boundEmail != "" {
			return domain.Credential{}, ErrInvalidRequest
		}
	}

	// 2. Resolve the effective TTL.
	ttl := ttlOverride
	if ttl <= 0 {
		switch kind {
		case domain.KindCode:
			ttl = s.Config.CodeTTL
		case domain.KindEmailToken:
			ttl = s.Config.EmailTokenTTL
		}
	}
	if ttl <= 0 {
		return domain.Credential{}, ErrInvalidRequest
	}

	now := s.now()
	cred := domain.Credential{
		Kind:       kind,
		BoundEmail: boundEmail,
		IssuerID:   issuerID,
		Notes:      notes,
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// 3. Quota check and insert, in one transaction. The quota is a soft
	// usage cap; the transaction keeps check and insert together on the
	// sqlite driver, but the port contract does not promise strictness.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		count, err := tx.Credentials().CountActive(ctx, issuerID, kind, now)
		if err != nil {
			return fmt.Errorf("%w: count active: %v", ErrStorageFailure, err)
		}
		if count >= s.Config.MaxActivePerIssuer {
			return ErrQuotaExceeded
		}

		// 4. Generate the secret and insert, regenerating on collision.
		for attempt := 0; attempt < secretAttempts; attempt++ {
			secret, err := s.generateSecret(kind)
			if err != nil {
				return err
			}
			cred.ID = idx.New().String()
			cred.Secret = secret

			err = tx.Credentials().Insert(ctx, cred)
			if err == nil {
				return nil
			}
			if errors.Is(err, store.ErrDuplicateSecret) {
				log.Warn("invite secret collision, regenerating",
					slog.String("kind", string(kind)),
					slog.Int("attempt", attempt+1),
				)
				continue
			}
			return fmt.Errorf("%w: insert credential: %v", ErrStorageFailure, err)
		}
		return fmt.Errorf("%w: exhausted %d secret generation attempts", ErrStorageFailure, secretAttempts)
	})
	if err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			log.Warn("invite issuance denied by quota",
				slog.String("issuer_id", issuerID),
				slog.String("kind", string(kind)),
				slog.Int("max_active", s.Config.MaxActivePerIssuer),
			)
			s.record(ctx, AuditEvent{
				Action:   AuditIssueDenied,
				Kind:     kind,
				IssuerID: issuerID,
				Reason:   ReasonQuotaExceeded,
			})
		}
		return domain.Credential{}, err
	}

	log.Debug("invite credential issued",
		slog.String("credential_id", cred.ID),
		slog.String("issuer_id", issuerID),
		slog.String("kind", string(kind)),
		slog.Time("expires_at", cred.ExpiresAt),
	)
	s.record(ctx, AuditEvent{
		Action:       AuditIssued,
		Kind:         kind,
		CredentialID: cred.ID,
		IssuerID:     issuerID,
	})

	return cred, nil
}

func (s *InviteService) generateSecret(kind domain.CredentialKind) (string, error) {
	if kind == domain.KindCode {
		return cryptox.GenerateCode()
	}
	return cryptox.GenerateToken(cryptox.TokenSize384)
}

// Validate is the read-only pre-flight check: it reports whether the
// credential is currently active without consuming it. It must not back a
// security decision; only Redeem is authoritative, since anything observed
// here can change before the redemption lands.
func (s *InviteService) Validate(
	ctx context.Context,
	secret string,
	kind domain.CredentialKind,
) (domain.Credential, error) {
	if secret == "" || !kind.Valid() {
		return domain.Credential{}, ErrInvalidRequest
	}

	cred, err := s.Store.Credentials().FindActive(ctx, secret, kind, s.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.record(ctx, AuditEvent{Action: AuditValidateMiss, Kind: kind})
			return domain.Credential{}, ErrInvalidOrExpired
		}
		return domain.Credential{}, fmt.Errorf("%w: find active: %v", ErrStorageFailure, err)
	}

	s.record(ctx, AuditEvent{
		Action:       AuditValidated,
		Kind:         kind,
		CredentialID: cred.ID,
		IssuerID:     cred.IssuerID,
	})
	return cred, nil
}

// Redeem consumes the credential for redeemerID. The consume is a single
// atomic conditional update at the store; of any number of concurrent
// redeemers of one secret, exactly one succeeds. Callers only ever see
// ErrInvalidOrExpired on failure; the narrower reason goes to the audit
// sink alone.
func (s *InviteService) Redeem(
	ctx context.Context,
	secret string,
	kind domain.CredentialKind,
	redeemerID string,
) (domain.Credential, error) {
	log := slogx.FromContext(ctx)

	if secret == "" || redeemerID == "" || !kind.Valid() {
		return domain.Credential{}, ErrInvalidRequest
	}

	now := s.now()
	ok, err := s.Store.Credentials().MarkUsedIfActive(ctx, secret, kind, redeemerID, now)
	if err != nil {
		log.Error("failed to consume invite credential", slog.Any("error", err))
		return domain.Credential{}, fmt.Errorf("%w: mark used: %v", ErrStorageFailure, err)
	}

	if !ok {
		reason := s.classifyDenial(ctx, secret, kind, now)
		log.Warn("invite redemption denied",
			slog.String("kind", string(kind)),
			slog.String("reason", reason),
		)
		s.record(ctx, AuditEvent{
			Action:     AuditRedeemDenied,
			Kind:       kind,
			RedeemerID: redeemerID,
			Reason:     reason,
		})
		return domain.Credential{}, ErrInvalidOrExpired
	}

	cred, err := s.Store.Credentials().FindBySecret(ctx, secret, kind)
	if err != nil {
		// The redemption itself committed; only the read-back failed.
		log.Error("failed to load redeemed credential", slog.Any("error", err))
		return domain.Credential{}, fmt.Errorf("%w: load redeemed credential: %v", ErrStorageFailure, err)
	}

	log.Info("invite credential redeemed",
		slog.String("credential_id", cred.ID),
		slog.String("issuer_id", cred.IssuerID),
		slog.String("redeemer_id", redeemerID),
		slog.String("kind", string(kind)),
	)
	s.record(ctx, AuditEvent{
		Action:       AuditRedeemed,
		Kind:         kind,
		CredentialID: cred.ID,
		IssuerID:     cred.IssuerID,
		RedeemerID:   redeemerID,
	})

	return cred, nil
}

// classifyDenial names why a redemption failed, for the audit trail only.
// It re-reads the row after the failed consume, so the answer is
// best-effort; a concurrent writer may have changed the row in between.
func (s *InviteService) classifyDenial(
	ctx context.Context,
	secret string,
	kind domain.CredentialKind,
	now time.Time,
) string {
	cred, err := s.Store.Credentials().FindBySecret(ctx, secret, kind)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ReasonNotFound
	case err != nil:
		return ReasonUnknown
	case cred.Used:
		return ReasonAlreadyUsed
	case !now.Before(cred.ExpiresAt):
		return ReasonExpired
	default:
		return ReasonUnknown
	}
}

// ListActive returns the issuer's currently active credentials, newest
// first, for the admin overview.
func (s *InviteService) ListActive(
	ctx context.Context,
	issuerID string,
	kind domain.CredentialKind,
) ([]domain.Credential, error) {
	if issuerID == "" || !kind.Valid() {
		return nil, ErrInvalidRequest
	}

	creds, err := s.Store.Credentials().ListActive(ctx, issuerID, kind, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: list active: %v", ErrStorageFailure, err)
	}
	return creds, nil
}

// Cleanup removes credentials that expired without ever being redeemed and
// reports how many were purged. Safe to run while issuance and redemption
// are in flight: the store re-checks both conditions inside the delete.
func (s *InviteService) Cleanup(ctx context.Context) (int64, error) {
	log := slogx.FromContext(ctx)

	deleted, err := s.Store.Credentials().DeleteExpiredUnused(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("%w: delete expired: %v", ErrStorageFailure, err)
	}

	log.Debug("invite cleanup sweep finished", slog.Int64("deleted", deleted))
	s.record(ctx, AuditEvent{Action: AuditCleanup, Deleted: deleted})

	return deleted, nil
}
