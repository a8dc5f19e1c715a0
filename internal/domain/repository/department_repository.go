package repository

import (
	"context"

	"github.com/trenchhq/trench-api/internal/domain/entity"
)

type DepartmentRepository interface {
	Create(ctx context.Context, d *entity.Department) error
	GetByID(ctx context.Context, id string) (*entity.Department, error)
	// List returns departments, optionally scoped to one college when
	// collegeID is non-empty.
	List(ctx context.Context, collegeID string, page Page) ([]entity.Department, int64, error)
	Update(ctx context.Context, d *entity.Department) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
