package repository

import (
	"context"

	"github.com/trenchhq/trench-api/internal/domain/entity"
)

type CollegeRepository interface {
	Create(ctx context.Context, c *entity.College) error
	GetByID(ctx context.Context, id string) (*entity.College, error)
	List(ctx context.Context, page Page) ([]entity.College, int64, error)
	Update(ctx context.Context, c *entity.College) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
