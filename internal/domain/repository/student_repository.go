package repository

import (
	"context"

	"github.com/trenchhq/trench-api/internal/domain/entity"
)

type StudentRepository interface {
	// CreateWithUser inserts the user row and the student profile as one
	// transaction.
	CreateWithUser(ctx context.Context, u *entity.User, s *entity.Student) error
	GetByID(ctx context.Context, userID string) (*entity.Student, error)
	List(ctx context.Context, page Page) ([]entity.Student, int64, error)
	Update(ctx context.Context, s *entity.Student) error
	RollNumberExists(ctx context.Context, rollNumber string) (bool, error)
	PRNExists(ctx context.Context, prn string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
