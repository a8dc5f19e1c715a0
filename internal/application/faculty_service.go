package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

type FacultyService struct {
	Faculty repository.FacultyRepository
	Users   repository.UserRepository
	Logger  *logrus.Logger
}

func NewFacultyService(faculty repository.FacultyRepository, users repository.UserRepository, logger *logrus.Logger) *FacultyService {
	return &FacultyService{Faculty: faculty, Users: users, Logger: logger}
}

type CreateFacultyInput struct {
	Email          string
	Name           string
	Password       string
	EmployeeID     string
	DepartmentID   string
	Designation    string
	Specialization string
}

func (s *FacultyService) Create(ctx context.Context, in CreateFacultyInput) (*entity.Faculty, error) {
	if exists, err := s.Faculty.EmployeeIDExists(ctx, in.EmployeeID); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrEmployeeIDTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:       helpers.NewID("user"),
		Email:    in.Email,
		Name:     in.Name,
		Password: hash,
		Role:     entity.RoleFaculty,
	}
	f := &entity.Faculty{
		EmployeeID:     in.EmployeeID,
		DepartmentID:   in.DepartmentID,
		Designation:    in.Designation,
		Specialization: in.Specialization,
	}
	if err := s.Faculty.CreateWithUser(ctx, u, f); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("faculty member created")
	return f, nil
}

func (s *FacultyService) GetByID(ctx context.Context, id string) (*entity.Faculty, error) {
	f, err := s.Faculty.GetByID(ctx, id)
	if err != nil {
		return nil, ErrFacultyNotFound
	}
	return f, nil
}

func (s *FacultyService) List(ctx context.Context, page, limit int) ([]entity.Faculty, int, int, int64, error) {
	p, l, window := NormalizePage(page, limit)
	faculty, total, err := s.Faculty.List(ctx, window)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return faculty, p, l, total, nil
}

type UpdateFacultyInput struct {
	EmployeeID     string
	DepartmentID   string
	Designation    string
	Specialization string
}

func (s *FacultyService) Update(ctx context.Context, id string, in UpdateFacultyInput) (*entity.Faculty, error) {
	f, err := s.Faculty.GetByID(ctx, id)
	if err != nil {
		return nil, ErrFacultyNotFound
	}

	if in.EmployeeID != "" && in.EmployeeID != f.EmployeeID {
		if exists, err := s.Faculty.EmployeeIDExists(ctx, in.EmployeeID); err != nil {
			return nil, err
		} else if exists {
			return nil, ErrEmployeeIDTaken
		}
		f.EmployeeID = in.EmployeeID
	}
	if in.DepartmentID != "" {
		f.DepartmentID = in.DepartmentID
	}
	if in.Designation != "" {
		f.Designation = in.Designation
	}
	if in.Specialization != "" {
		f.Specialization = in.Specialization
	}

	if err := s.Faculty.Update(ctx, f); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.Logger.WithField("user_id", f.UserID).Info("faculty member updated")
	return f, nil
}

func (s *FacultyService) Delete(ctx context.Context, id string) error {
	if _, err := s.Faculty.GetByID(ctx, id); err != nil {
		return ErrFacultyNotFound
	}
	if err := s.Users.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.Logger.WithField("user_id", id).Info("faculty member deleted")
	return nil
}
