package store

import (
	"context"
	"errors"
	"time"

	"github.com/harbourview/concierge/internal/concierge/domain"
)

var (
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateSecret reports that an active credential with the same
	// secret already exists. The service retries with a fresh secret.
	ErrDuplicateSecret = errors.New("store: duplicate active secret")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Credentials() Credentials

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. This is the recommended way to handle
	// transactions as it automatically handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Credentials is the invite credential persistence port. Every mutation of
// the credential table funnels through Insert, MarkUsedIfActive and
// DeleteExpiredUnused; each of those is independently atomic, so no caller
// ever needs cross-operation locking.
type Credentials interface {
	// Insert writes a new credential. It fails with ErrDuplicateSecret when
	// another credential of the same kind with the same secret is still
	// active at the instant of the insert; the existence check and the
	// insert happen in a single statement.
	Insert(ctx context.Context, c domain.Credential) error

	// FindActive returns the credential for secret only while it is active
	// (unused and unexpired) at now. Expired, consumed and unknown secrets
	// are indistinguishable: all return ErrNotFound.
	FindActive(ctx context.Context, secret string, kind domain.CredentialKind, now time.Time) (domain.Credential, error)

	// FindBySecret returns the newest credential for secret regardless of
	// state. Only used internally to classify failed redemptions for the
	// audit trail; never for validity decisions.
	FindBySecret(ctx context.Context, secret string, kind domain.CredentialKind) (domain.Credential, error)

	// MarkUsedIfActive atomically consumes the credential: it sets
	// used/used_at/redeemer_id in a single conditional update that only
	// fires while the credential is unused and unexpired at now. Exactly
	// one of any number of concurrent callers racing on the same secret
	// observes true.
	MarkUsedIfActive(ctx context.Context, secret string, kind domain.CredentialKind, redeemerID string, now time.Time) (bool, error)

	// CountActive returns how many active credentials of kind the issuer
	// currently holds, for quota accounting.
	CountActive(ctx context.Context, issuerID string, kind domain.CredentialKind, now time.Time) (int, error)

	// ListActive returns the issuer's active credentials of kind, newest first.
	ListActive(ctx context.Context, issuerID string, kind domain.CredentialKind, now time.Time) ([]domain.Credential, error)

	// DeleteExpiredUnused removes credentials that are unused and expired
	// at now, re-checking both conditions at deletion time, and reports how
	// many rows were removed. Redeemed credentials are never deleted.
	DeleteExpiredUnused(ctx context.Context, now time.Time) (int64, error)
}
