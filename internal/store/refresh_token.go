package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RefreshToken rows are keyed by the sha256 hash of the opaque token; the
// subject and role are carried so a rotation can re-mint an access token
// without another account lookup.
type RefreshToken struct {
	ID         string
	Subject    string
	Role       string
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	ReplacedBy *string
	CreatedAt  time.Time
}

func (s *Store) CreateRefreshToken(ctx context.Context, subject, role, tokenHash string, expiresAt time.Time) (string, error) {
	id := uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO refresh_tokens (id, subject, role, token_hash, expires_at) VALUES ($1,$2,$3,$4,$5)`,
		id, subject, role, tokenHash, expiresAt,
	)
	return id, err
}

func (s *Store) RefreshTokenByHash(ctx context.Context, tokenHash string) (*RefreshToken, error) {
	rt := &RefreshToken{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, subject, role, token_hash, expires_at, revoked, replaced_by, created_at
		 FROM refresh_tokens WHERE token_hash = $1`, tokenHash,
	).Scan(&rt.ID, &rt.Subject, &rt.Role, &rt.TokenHash, &rt.ExpiresAt, &rt.Revoked, &rt.ReplacedBy, &rt.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// rotate: revoke old token, create new one, link them
func (s *Store) RotateRefreshToken(ctx context.Context, oldID, newID, subject, role, newHash string, newExpiry time.Time) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = true, replaced_by = $1 WHERE id = $2`,
		newID, oldID,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO refresh_tokens (id, subject, role, token_hash, expires_at) VALUES ($1,$2,$3,$4,$5)`,
		newID, subject, role, newHash, newExpiry,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// revoke everything for a subject (logout or suspected theft)
func (s *Store) RevokeAllRefreshTokens(ctx context.Context, subject string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = true WHERE subject = $1 AND revoked = false`,
		subject,
	)
	return err
}
