package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/harbourview/concierge/internal/concierge/domain"
	"github.com/harbourview/concierge/internal/concierge/store"
	"github.com/harbourview/concierge/internal/concierge/store/drivers/sqlite"
	"github.com/harbourview/concierge/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "concierge.db") +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newCredential(kind domain.CredentialKind, secret, issuerID string, expiresAt time.Time) domain.Credential {
	now := time.Now().UTC()
	return domain.Credential{
		ID:        idx.New().String(),
		Kind:      kind,
		Secret:    secret,
		IssuerID:  issuerID,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestInsertAndFindActive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	cred := newCredential(domain.KindCode, "fresh8xy", "admin-1", now.Add(time.Hour))
	require.NoError(t, st.Credentials().Insert(ctx, cred))

	found, err := st.Credentials().FindActive(ctx, "fresh8xy", domain.KindCode, now)
	require.NoError(t, err)
	require.Equal(t, cred.ID, found.ID)
	require.Equal(t, "admin-1", found.IssuerID)
	require.False(t, found.Used)
	require.WithinDuration(t, cred.ExpiresAt, found.ExpiresAt, time.Second)

	t.Run("kind mismatch is not found", func(t *testing.T) {
		_, err := st.Credentials().FindActive(ctx, "fresh8xy", domain.KindEmailToken, now)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown secret is not found", func(t *testing.T) {
		_, err := st.Credentials().FindActive(ctx, "no-such-secret", domain.KindCode, now)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("expired credential is not found", func(t *testing.T) {
		_, err := st.Credentials().FindActive(ctx, "fresh8xy", domain.KindCode, now.Add(2*time.Hour))
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestInsertRejectsActiveDuplicateSecret(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	first := newCredential(domain.KindCode, "samecode", "admin-1", now.Add(time.Hour))
	require.NoError(t, st.Credentials().Insert(ctx, first))

	dup := newCredential(domain.KindCode, "samecode", "admin-2", now.Add(time.Hour))
	require.ErrorIs(t, st.Credentials().Insert(ctx, dup), store.ErrDuplicateSecret)

	t.Run("other kind may reuse the value", func(t *testing.T) {
		other := newCredential(domain.KindEmailToken, "samecode", "admin-1", now.Add(time.Hour))
		other.BoundEmail = "guest@example.com"
		require.NoError(t, st.Credentials().Insert(ctx, other))
	})

	t.Run("consumed credential frees the value", func(t *testing.T) {
		ok, err := st.Credentials().MarkUsedIfActive(ctx, "samecode", domain.KindCode, "user-9", now)
		require.NoError(t, err)
		require.True(t, ok)

		again := newCredential(domain.KindCode, "samecode", "admin-1", now.Add(time.Hour))
		require.NoError(t, st.Credentials().Insert(ctx, again))
	})
}

func TestMarkUsedIfActive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	cred := newCredential(domain.KindCode, "burncode", "admin-1", now.Add(time.Hour))
	require.NoError(t, st.Credentials().Insert(ctx, cred))

	redeemedAt := now.Add(30 * time.Minute)
	ok, err := st.Credentials().MarkUsedIfActive(ctx, "burncode", domain.KindCode, "user-42", redeemedAt)
	require.NoError(t, err)
	require.True(t, ok)

	stored, err := st.Credentials().FindBySecret(ctx, "burncode", domain.KindCode)
	require.NoError(t, err)
	require.True(t, stored.Used)
	require.Equal(t, "user-42", stored.RedeemerID)
	require.NotNil(t, stored.UsedAt)
	require.WithinDuration(t, redeemedAt, *stored.UsedAt, time.Second)

	t.Run("second redemption fails", func(t *testing.T) {
		ok, err := st.Credentials().MarkUsedIfActive(ctx, "burncode", domain.KindCode, "user-43", redeemedAt.Add(time.Minute))
		require.NoError(t, err)
		require.False(t, ok)

		// The original redemption record is untouched.
		after, err := st.Credentials().FindBySecret(ctx, "burncode", domain.KindCode)
		require.NoError(t, err)
		require.Equal(t, "user-42", after.RedeemerID)
	})

	t.Run("expired credential cannot be consumed", func(t *testing.T) {
		expired := newCredential(domain.KindCode, "oldcode9", "admin-1", now.Add(time.Minute))
		require.NoError(t, st.Credentials().Insert(ctx, expired))

		ok, err := st.Credentials().MarkUsedIfActive(ctx, "oldcode9", domain.KindCode, "user-44", now.Add(time.Hour))
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("unknown secret cannot be consumed", func(t *testing.T) {
		ok, err := st.Credentials().MarkUsedIfActive(ctx, "ghost", domain.KindCode, "user-45", now)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

// Exactly one of any number of racing redeemers may win.
func TestMarkUsedIfActiveConcurrent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	cred := newCredential(domain.KindEmailToken, "race-token", "admin-1", now.Add(time.Hour))
	cred.BoundEmail = "guest@example.com"
	require.NoError(t, st.Credentials().Insert(ctx, cred))

	const redeemers = 8
	results := make([]bool, redeemers)
	errs := make([]error, redeemers)

	var wg sync.WaitGroup
	for i := range redeemers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = st.Credentials().MarkUsedIfActive(
				ctx, "race-token", domain.KindEmailToken, "user", now)
		}()
	}
	wg.Wait()

	var wins int
	for i := range redeemers {
		require.NoError(t, errs[i])
		if results[i] {
			wins++
		}
	}
	require.Equal(t, 1, wins, "exactly one concurrent redeemer must succeed")
}

func TestCountAndListActive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	secrets := []string{"codeone2", "codetwo3", "codethree"}
	for _, secret := range secrets {
		require.NoError(t, st.Credentials().Insert(ctx,
			newCredential(domain.KindCode, secret, "admin-1", now.Add(time.Hour))))
	}

	// Noise: a consumed credential, an expired one, and another issuer's.
	consumed := newCredential(domain.KindCode, "consumed", "admin-1", now.Add(time.Hour))
	require.NoError(t, st.Credentials().Insert(ctx, consumed))
	ok, err := st.Credentials().MarkUsedIfActive(ctx, "consumed", domain.KindCode, "user-1", now)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, st.Credentials().Insert(ctx,
		newCredential(domain.KindCode, "expired9", "admin-1", now.Add(-time.Hour))))
	require.NoError(t, st.Credentials().Insert(ctx,
		newCredential(domain.KindCode, "theirs99", "admin-2", now.Add(time.Hour))))

	count, err := st.Credentials().CountActive(ctx, "admin-1", domain.KindCode, now)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	listed, err := st.Credentials().ListActive(ctx, "admin-1", domain.KindCode, now)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	// Newest first: ULIDs sort chronologically, insertion order reversed.
	require.Equal(t, "codethree", listed[0].Secret)
	require.Equal(t, "codetwo3", listed[1].Secret)
	require.Equal(t, "codeone2", listed[2].Secret)
}

func TestDeleteExpiredUnused(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	issuedAt := time.Now().UTC()

	// TTL 1h, never redeemed.
	stale := newCredential(domain.KindCode, "stale123", "admin-1", issuedAt.Add(time.Hour))
	require.NoError(t, st.Credentials().Insert(ctx, stale))

	// Redeemed before expiry; must survive every sweep.
	redeemed := newCredential(domain.KindCode, "redeemed", "admin-1", issuedAt.Add(time.Hour))
	require.NoError(t, st.Credentials().Insert(ctx, redeemed))
	ok, err := st.Credentials().MarkUsedIfActive(ctx, "redeemed", domain.KindCode, "user-1", issuedAt)
	require.NoError(t, err)
	require.True(t, ok)

	// Still active at sweep time; must survive.
	active := newCredential(domain.KindCode, "longlife", "admin-1", issuedAt.Add(24*time.Hour))
	require.NoError(t, st.Credentials().Insert(ctx, active))

	t.Run("sweep before expiry removes nothing", func(t *testing.T) {
		deleted, err := st.Credentials().DeleteExpiredUnused(ctx, issuedAt.Add(30*time.Minute))
		require.NoError(t, err)
		require.Zero(t, deleted)

		_, err = st.Credentials().FindActive(ctx, "stale123", domain.KindCode, issuedAt.Add(30*time.Minute))
		require.NoError(t, err)
	})

	t.Run("sweep after expiry removes only the stale row", func(t *testing.T) {
		deleted, err := st.Credentials().DeleteExpiredUnused(ctx, issuedAt.Add(2*time.Hour))
		require.NoError(t, err)
		require.EqualValues(t, 1, deleted)

		_, err = st.Credentials().FindBySecret(ctx, "stale123", domain.KindCode)
		require.ErrorIs(t, err, store.ErrNotFound)

		// Redeemed row retained for audit even though its expiry has passed.
		kept, err := st.Credentials().FindBySecret(ctx, "redeemed", domain.KindCode)
		require.NoError(t, err)
		require.True(t, kept.Used)

		_, err = st.Credentials().FindActive(ctx, "longlife", domain.KindCode, issuedAt.Add(2*time.Hour))
		require.NoError(t, err)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	sentinel := context.Canceled
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Credentials().Insert(ctx,
			newCredential(domain.KindCode, "rollback", "admin-1", now.Add(time.Hour))); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = st.Credentials().FindBySecret(ctx, "rollback", domain.KindCode)
	require.ErrorIs(t, err, store.ErrNotFound)
}
