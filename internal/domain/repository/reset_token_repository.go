package repository

import (
	"context"
	"time"

	"github.com/trenchhq/trench-api/internal/domain/entity"
)

// ResetTokenRepository owns PasswordResetToken persistence.
type ResetTokenRepository interface {
	Create(ctx context.Context, t *entity.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)
	// InvalidateUnused force-expires every still-redeemable token of the
	// user. Called at issuance so only the newest link stays live.
	InvalidateUnused(ctx context.Context, userID string, now time.Time) error
	// Consume marks the token used and overwrites the owning user's password
	// hash in one transaction; partial application would leave either a
	// redeemable token after a password change or the reverse.
	Consume(ctx context.Context, token, userID, passwordHash string) error
	// DeleteExpired removes tokens past their expiry. Housekeeping only;
	// consumed tokens within their window are retained for audit.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
