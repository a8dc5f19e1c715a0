package repository

import (
	"context"

	"github.com/trenchhq/trench-api/internal/domain/entity"
)

// Page is an offset/limit window over a listing.
type Page struct {
	Limit  int
	Offset int
}

// UserRepository owns User persistence. Lookups exclude soft-deleted rows
// unless the method name says otherwise.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	// Revive reclaims a soft-deleted row for a fresh registration: same
	// identity slot, refreshed name/hash/role, deletion flags cleared.
	Revive(ctx context.Context, id, name, passwordHash string, role entity.Role) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailIncludingDeleted(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SoftDelete(ctx context.Context, id string) error
	// Restore un-deletes a user; ErrNotFound when no deleted row has the id.
	Restore(ctx context.Context, id string) error
	List(ctx context.Context, page Page, includeDeleted bool) ([]entity.PublicUser, int64, error)
}
