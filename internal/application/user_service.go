package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
)

// UserService covers profile maintenance and the soft-delete lifecycle.
type UserService struct {
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Logger: logger}
}

type UpdateProfileInput struct {
	Name  string
	Email string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.PublicUser, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if in.Email != "" && in.Email != u.Email {
		if other, err := s.Users.GetByEmail(ctx, in.Email); err == nil && other.ID != u.ID {
			return nil, ErrEmailTaken
		}
		u.Email = in.Email
	}
	if in.Name != "" {
		u.Name = in.Name
	}

	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.Logger.WithField("user_id", u.ID).Info("profile updated")
	pub := u.PublicView()
	return &pub, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.Users.SoftDelete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.Logger.WithField("user_id", userID).Info("user soft deleted")
	return nil
}

// RestoreUser un-deletes a user; it rejects users that are not currently in
// a deleted state.
func (s *UserService) RestoreUser(ctx context.Context, userID string) error {
	if err := s.Users.Restore(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotDeleted
		}
		return err
	}
	s.Logger.WithField("user_id", userID).Info("user restored")
	return nil
}

func (s *UserService) ListUsers(ctx context.Context, page, limit int, includeDeleted bool) ([]entity.PublicUser, int, int, int64, error) {
	p, l, window := NormalizePage(page, limit)
	users, total, err := s.Users.List(ctx, window, includeDeleted)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return users, p, l, total, nil
}
