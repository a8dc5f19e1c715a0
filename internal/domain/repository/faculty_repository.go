package repository

import (
	"context"

	"github.com/trenchhq/trench-api/internal/domain/entity"
)

type FacultyRepository interface {
	CreateWithUser(ctx context.Context, u *entity.User, f *entity.Faculty) error
	GetByID(ctx context.Context, userID string) (*entity.Faculty, error)
	List(ctx context.Context, page Page) ([]entity.Faculty, int64, error)
	Update(ctx context.Context, f *entity.Faculty) error
	EmployeeIDExists(ctx context.Context, employeeID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
