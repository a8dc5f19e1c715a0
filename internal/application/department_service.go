package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

type DepartmentService struct {
	Departments repository.DepartmentRepository
	Colleges    repository.CollegeRepository
	Logger      *logrus.Logger
}

func NewDepartmentService(departments repository.DepartmentRepository, colleges repository.CollegeRepository, logger *logrus.Logger) *DepartmentService {
	return &DepartmentService{Departments: departments, Colleges: colleges, Logger: logger}
}

type DepartmentInput struct {
	Name      string
	CollegeID string
}

func (s *DepartmentService) Create(ctx context.Context, in DepartmentInput) (*entity.Department, error) {
	if _, err := s.Colleges.GetByID(ctx, in.CollegeID); err != nil {
		return nil, ErrCollegeNotFound
	}
	d := &entity.Department{
		ID:        helpers.NewID("dept"),
		Name:      in.Name,
		CollegeID: in.CollegeID,
	}
	if err := s.Departments.Create(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"department_id": d.ID, "college_id": d.CollegeID}).Info("department created")
	return d, nil
}

func (s *DepartmentService) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	d, err := s.Departments.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDepartmentNotFound
	}
	return d, nil
}

func (s *DepartmentService) List(ctx context.Context, collegeID string, page, limit int) ([]entity.Department, int, int, int64, error) {
	p, l, window := NormalizePage(page, limit)
	departments, total, err := s.Departments.List(ctx, collegeID, window)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return departments, p, l, total, nil
}

func (s *DepartmentService) Update(ctx context.Context, id string, in DepartmentInput) (*entity.Department, error) {
	d, err := s.Departments.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDepartmentNotFound
	}
	if in.Name != "" {
		d.Name = in.Name
	}
	if in.CollegeID != "" && in.CollegeID != d.CollegeID {
		if _, err := s.Colleges.GetByID(ctx, in.CollegeID); err != nil {
			return nil, ErrCollegeNotFound
		}
		d.CollegeID = in.CollegeID
	}
	if err := s.Departments.Update(ctx, d); err != nil {
		return nil, err
	}
	s.Logger.WithField("department_id", d.ID).Info("department updated")
	return d, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if err := s.Departments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDepartmentNotFound
		}
		return err
	}
	s.Logger.WithField("department_id", id).Info("department deleted")
	return nil
}
