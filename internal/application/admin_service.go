package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

const (
	statsCacheKey = "admin:dashboard:stats"
	statsCacheTTL = 60 * time.Second
)

type DashboardStats struct {
	Students    int64 `json:"students"`
	Faculty     int64 `json:"faculty"`
	Admins      int64 `json:"admins"`
	Colleges    int64 `json:"colleges"`
	Departments int64 `json:"departments"`
}

type AdminService struct {
	Admins      repository.AdminRepository
	Users       repository.UserRepository
	Students    repository.StudentRepository
	Faculty     repository.FacultyRepository
	Colleges    repository.CollegeRepository
	Departments repository.DepartmentRepository
	Redis       *redis.Client
	Logger      *logrus.Logger
}

func NewAdminService(
	admins repository.AdminRepository,
	users repository.UserRepository,
	students repository.StudentRepository,
	faculty repository.FacultyRepository,
	colleges repository.CollegeRepository,
	departments repository.DepartmentRepository,
	rdb *redis.Client,
	logger *logrus.Logger,
) *AdminService {
	return &AdminService{
		Admins:      admins,
		Users:       users,
		Students:    students,
		Faculty:     faculty,
		Colleges:    colleges,
		Departments: departments,
		Redis:       rdb,
		Logger:      logger,
	}
}

type CreateAdminInput struct {
	Email        string
	Name         string
	Password     string
	DepartmentID string
}

func (s *AdminService) Create(ctx context.Context, in CreateAdminInput) (*entity.Admin, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:       helpers.NewID("user"),
		Email:    in.Email,
		Name:     in.Name,
		Password: hash,
		Role:     entity.RoleAdmin,
	}
	a := &entity.Admin{DepartmentID: in.DepartmentID}
	if err := s.Admins.CreateWithUser(ctx, u, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("admin created")
	return a, nil
}

func (s *AdminService) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	a, err := s.Admins.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAdminNotFound
	}
	return a, nil
}

func (s *AdminService) List(ctx context.Context, page, limit int) ([]entity.Admin, int, int, int64, error) {
	p, l, window := NormalizePage(page, limit)
	admins, total, err := s.Admins.List(ctx, window)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return admins, p, l, total, nil
}

type UpdateAdminInput struct {
	DepartmentID string
}

func (s *AdminService) Update(ctx context.Context, id string, in UpdateAdminInput) (*entity.Admin, error) {
	a, err := s.Admins.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAdminNotFound
	}
	if in.DepartmentID != "" {
		a.DepartmentID = in.DepartmentID
	}
	if err := s.Admins.Update(ctx, a); err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", a.UserID).Info("admin updated")
	return a, nil
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	if _, err := s.Admins.GetByID(ctx, id); err != nil {
		return ErrAdminNotFound
	}
	if err := s.Users.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.Logger.WithField("user_id", id).Info("admin deleted")
	return nil
}

// Stats aggregates headline counts for the admin dashboard. Results are
// cached in Redis for a short window since every count is a full-table
// aggregate.
func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.Redis != nil {
		var cached DashboardStats
		if hit, err := helpers.RedisGetJSON(ctx, s.Redis, statsCacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	stats := &DashboardStats{}
	counts := []struct {
		dest  *int64
		count func(context.Context) (int64, error)
	}{
		{&stats.Students, s.Students.Count},
		{&stats.Faculty, s.Faculty.Count},
		{&stats.Admins, s.Admins.Count},
		{&stats.Colleges, s.Colleges.Count},
		{&stats.Departments, s.Departments.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, statsCacheKey, stats, statsCacheTTL); err != nil {
			s.Logger.WithError(err).Warn("failed to cache dashboard stats")
		}
	}
	return stats, nil
}
