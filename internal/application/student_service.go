package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

type StudentService struct {
	Students repository.StudentRepository
	Users    repository.UserRepository
	Logger   *logrus.Logger
}

func NewStudentService(students repository.StudentRepository, users repository.UserRepository, logger *logrus.Logger) *StudentService {
	return &StudentService{Students: students, Users: users, Logger: logger}
}

type CreateStudentInput struct {
	Email        string
	Name         string
	Password     string
	RollNumber   string
	PRN          string
	DepartmentID string
	Year         int
	Division     string
	AcademicYear string
}

func (s *StudentService) Create(ctx context.Context, in CreateStudentInput) (*entity.Student, error) {
	if exists, err := s.Students.RollNumberExists(ctx, in.RollNumber); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrRollNumberTaken
	}
	if in.PRN != "" {
		if exists, err := s.Students.PRNExists(ctx, in.PRN); err != nil {
			return nil, err
		} else if exists {
			return nil, ErrPRNTaken
		}
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
		Role:     entity.RoleStudent,
	}
	st := &entity.Student{
		RollNumber:   in.RollNumber,
		PRN:          in.PRN,
		DepartmentID: in.DepartmentID,
		Year:         in.Year,
		Division:     in.Division,
		AcademicYear: in.AcademicYear,
	}
	if err := s.Students.CreateWithUser(ctx, u, st); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("student created")
	return st, nil
}

func (s *StudentService) GetByID(ctx context.Context, id string) (*entity.Student, error) {
	st, err := s.Students.GetByID(ctx, id)
	if err != nil {
		return nil, ErrStudentNotFound
	}
	return st, nil
}

func (s *StudentService) List(ctx context.Context, page, limit int) ([]entity.Student, int, int, int64, error) {
	p, l, window := NormalizePage(page, limit)
	students, total, err := s.Students.List(ctx, window)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return students, p, l, total, nil
}

type UpdateStudentInput struct {
	RollNumber   string
	PRN          string
	DepartmentID string
	Year         int
	Division     string
	AcademicYear string
}

func (s *StudentService) Update(ctx context.Context, id string, in UpdateStudentInput) (*entity.Student, error) {
	st, err := s.Students.GetByID(ctx, id)
	if err != nil {
		return nil, ErrStudentNotFound
	}

	if in.RollNumber != "" && in.RollNumber != st.RollNumber {
		if exists, err := s.Students.RollNumberExists(ctx, in.RollNumber); err != nil {
			return nil, err
		} else if exists {
			return nil, ErrRollNumberTaken
		}
		st.RollNumber = in.RollNumber
	}
	if in.PRN != "" && in.PRN != st.PRN {
		if exists, err := s.Students.PRNExists(ctx, in.PRN); err != nil {
			return nil, err
		} else if exists {
			return nil, ErrPRNTaken
		}
		st.PRN = in.PRN
	}
	if in.DepartmentID != "" {
		st.DepartmentID = in.DepartmentID
	}
	if in.Year != 0 {
		st.Year = in.Year
	}
	if in.Division != "" {
		st.Division = in.Division
	}
	if in.AcademicYear != "" {
		st.AcademicYear = in.AcademicYear
	}

	if err := s.Students.Update(ctx, st); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.Logger.WithField("user_id", st.UserID).Info("student updated")
	return st, nil
}

// Delete soft-deletes the owning user; the profile row stays attached to the
// deleted identity and disappears from live lookups with it.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Students.GetByID(ctx, id); err != nil {
		return ErrStudentNotFound
	}
	if err := s.Users.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.Logger.WithField("user_id", id).Info("student deleted")
	return nil
}
