package repository

import (
	"context"

	"github.com/trenchhq/trench-api/internal/domain/entity"
)

type AdminRepository interface {
	CreateWithUser(ctx context.Context, u *entity.User, a *entity.Admin) error
	GetByID(ctx context.Context, userID string) (*entity.Admin, error)
	List(ctx context.Context, page Page) ([]entity.Admin, int64, error)
	Update(ctx context.Context, a *entity.Admin) error
	Count(ctx context.Context) (int64, error)
}
