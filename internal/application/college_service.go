package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

type CollegeService struct {
	Colleges repository.CollegeRepository
	Logger   *logrus.Logger
}

func NewCollegeService(colleges repository.CollegeRepository, logger *logrus.Logger) *CollegeService {
	return &CollegeService{Colleges: colleges, Logger: logger}
}

type CollegeInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
}

func (s *CollegeService) Create(ctx context.Context, in CollegeInput) (*entity.College, error) {
	c := &entity.College{
		ID:      helpers.NewID("clg"),
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
		Website: in.Website,
	}
	if err := s.Colleges.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	s.Logger.WithField("college_id", c.ID).Info("college created")
	return c, nil
}

func (s *CollegeService) GetByID(ctx context.Context, id string) (*entity.College, error) {
	c, err := s.Colleges.GetByID(ctx, id)
	if err != nil {
		return nil, ErrCollegeNotFound
	}
	return c, nil
}

func (s *CollegeService) List(ctx context.Context, page, limit int) ([]entity.College, int, int, int64, error) {
	p, l, window := NormalizePage(page, limit)
	colleges, total, err := s.Colleges.List(ctx, window)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return colleges, p, l, total, nil
}

func (s *CollegeService) Update(ctx context.Context, id string, in CollegeInput) (*entity.College, error) {
	c, err := s.Colleges.GetByID(ctx, id)
	if err != nil {
		return nil, ErrCollegeNotFound
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Address != "" {
		c.Address = in.Address
	}
	if in.Phone != "" {
		c.Phone = in.Phone
	}
	if in.Email != "" {
		c.Email = in.Email
	}
	if in.Website != "" {
		c.Website = in.Website
	}
	if err := s.Colleges.Update(ctx, c); err != nil {
		return nil, err
	}
	s.Logger.WithField("college_id", c.ID).Info("college updated")
	return c, nil
}

func (s *CollegeService) Delete(ctx context.Context, id string) error {
	if err := s.Colleges.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCollegeNotFound
		}
		return err
	}
	s.Logger.WithField("college_id", id).Info("college deleted")
	return nil
}
