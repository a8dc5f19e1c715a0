package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
)

type ResetTokenRepository struct {
	pool *pgxpool.Pool
}

func NewResetTokenRepository(pool *pgxpool.Pool) *ResetTokenRepository {
	return &ResetTokenRepository{pool: pool}
}

func (r *ResetTokenRepository) Create(ctx context.Context, t *entity.PasswordResetToken) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO password_reset_tokens (id, user_id, token, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, t.ID, t.UserID, t.Token, t.ExpiresAt)

	return mapError(row.Scan(&t.CreatedAt))
}

func (r *ResetTokenRepository) GetByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	t := &entity.PasswordResetToken{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, token, expires_at, used, created_at
		FROM password_reset_tokens
		WHERE token = $1
	`, token)

	if err := mapError(row.Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.Used, &t.CreatedAt)); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *ResetTokenRepository) InvalidateUnused(ctx context.Context, userID string, now time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE password_reset_tokens
		SET expires_at = $1
		WHERE user_id = $2 AND used = FALSE AND expires_at > $1
	`, now, userID)
	return mapError(err)
}

// Consume flips the token's used flag and overwrites the owner's password
// hash inside one transaction.
func (r *ResetTokenRepository) Consume(ctx context.Context, token, userID, passwordHash string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		UPDATE password_reset_tokens
		SET used = TRUE
		WHERE token = $1 AND used = FALSE
	`, token)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	res, err = tx.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, updated_at = now()
		WHERE id = $2 AND is_deleted = FALSE
	`, passwordHash, userID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return mapError(tx.Commit(ctx))
}

func (r *ResetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM password_reset_tokens
		WHERE expires_at < $1
	`, now)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected(), nil
}

var _ repository.ResetTokenRepository = (*ResetTokenRepository)(nil)
