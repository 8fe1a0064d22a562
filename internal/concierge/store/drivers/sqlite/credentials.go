package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/harbourview/concierge/internal/concierge/domain"
	"github.com/harbourview/concierge/internal/concierge/store"
)

type credentialsRepo struct {
	db dbtx
}

const credentialColumns = `id, kind, secret, bound_email, issuer_id, notes,
	expires_at, used, used_at, redeemer_id, created_at, updated_at`

// Insert writes a new credential unless an active one with the same secret
// exists. The duplicate check rides inside the INSERT statement itself, so
// there is no window between check and write.
func (r *credentialsRepo) Insert(ctx context.Context, c domain.Credential) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (id, kind, secret, bound_email, issuer_id, notes,
			expires_at, used, used_at, redeemer_id, created_at, updated_at)
		SELECT ?, ?, ?, ?, ?, ?, ?, 0, NULL, '', ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM credentials
			WHERE kind = ? AND secret = ? AND used = 0 AND expires_at > ?
		)`,
		c.ID, string(c.Kind), c.Secret, c.BoundEmail, c.IssuerID, c.Notes,
		c.ExpiresAt.UTC(), c.CreatedAt.UTC(), c.CreatedAt.UTC(),
		string(c.Kind), c.Secret, c.CreatedAt.UTC(),
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrDuplicateSecret
	}
	return nil
}

func (r *credentialsRepo) FindActive(
	ctx context.Context,
	secret string,
	kind domain.CredentialKind,
	now time.Time,
) (domain.Credential, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+credentialColumns+`
		FROM credentials
		WHERE kind = ? AND secret = ? AND used = 0 AND expires_at > ?
		ORDER BY id DESC
		LIMIT 1`,
		string(kind), secret, now.UTC(),
	)
	return scanCredential(row)
}

func (r *credentialsRepo) FindBySecret(
	ctx context.Context,
	secret string,
	kind domain.CredentialKind,
) (domain.Credential, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+credentialColumns+`
		FROM credentials
		WHERE kind = ? AND secret = ?
		ORDER BY id DESC
		LIMIT 1`,
		string(kind), secret,
	)
	return scanCredential(row)
}

// MarkUsedIfActive consumes the credential in one conditional UPDATE; the
// validity conditions live in the WHERE clause, so two racing redeemers can
// never both see one row affected.
func (r *credentialsRepo) MarkUsedIfActive(
	ctx context.Context,
	secret string,
	kind domain.CredentialKind,
	redeemerID string,
	now time.Time,
) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE credentials
		SET used = 1, used_at = ?, redeemer_id = ?, updated_at = ?
		WHERE kind = ? AND secret = ? AND used = 0 AND expires_at > ?`,
		now.UTC(), redeemerID, now.UTC(),
		string(kind), secret, now.UTC(),
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *credentialsRepo) CountActive(
	ctx context.Context,
	issuerID string,
	kind domain.CredentialKind,
	now time.Time,
) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM credentials
		WHERE issuer_id = ? AND kind = ? AND used = 0 AND expires_at > ?`,
		issuerID, string(kind), now.UTC(),
	).Scan(&count)
	return count, err
}

func (r *credentialsRepo) ListActive(
	ctx context.Context,
	issuerID string,
	kind domain.CredentialKind,
	now time.Time,
) ([]domain.Credential, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+credentialColumns+`
		FROM credentials
		WHERE issuer_id = ? AND kind = ? AND used = 0 AND expires_at > ?
		ORDER BY id DESC`,
		issuerID, string(kind), now.UTC(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creds []domain.Credential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		creds = append(creds, c)
	}
	return creds, rows.Err()
}

// DeleteExpiredUnused re-checks both conditions inside the DELETE, so a
// credential redeemed between sweeps is never swept away.
func (r *credentialsRepo) DeleteExpiredUnused(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM credentials
		WHERE used = 0 AND expires_at < ?`,
		now.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCredential(row scanner) (domain.Credential, error) {
	var (
		c      domain.Credential
		kind   string
		usedAt sql.NullTime
	)
	err := row.Scan(
		&c.ID, &kind, &c.Secret, &c.BoundEmail, &c.IssuerID, &c.Notes,
		&c.ExpiresAt, &c.Used, &usedAt, &c.RedeemerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}

	c.Kind = domain.CredentialKind(kind)
	if usedAt.Valid {
		at := usedAt.Time
		c.UsedAt = &at
	}
	return c, nil
}
