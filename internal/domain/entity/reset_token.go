package entity

import "time"

// PasswordResetToken is an opaque single-use bearer credential for the
// password-reset flow. Used transitions false -> true exactly once, on
// redemption; rows are retained afterwards for audit.
type PasswordResetToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// Redeemable reports whether the token can still be consumed at the given
// instant. Callers must evaluate it against a single clock read.
func (t *PasswordResetToken) Redeemable(now time.Time) bool {
	return !t.Used && t.ExpiresAt.After(now)
}
