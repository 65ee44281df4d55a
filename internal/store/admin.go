package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"clinic-scheduling-api/internal/model"
)

func (s *Store) AdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	a := &model.Admin{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`, username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
