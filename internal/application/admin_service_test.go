package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
)

type fakeFacultyRepo struct {
	users   *fakeUserRepo
	faculty map[string]*entity.Faculty
}

func newFakeFacultyRepo(users *fakeUserRepo) *fakeFacultyRepo {
	return &fakeFacultyRepo{users: users, faculty: make(map[string]*entity.Faculty)}
}

func (f *fakeFacultyRepo) CreateWithUser(ctx context.Context, u *entity.User, fac *entity.Faculty) error {
	for _, other := range f.faculty {
		if other.EmployeeID == fac.EmployeeID {
			return repository.ErrDuplicate
		}
	}
	if err := f.users.Create(ctx, u); err != nil {
		return err
	}
	fac.UserID = u.ID
	fac.User = u.PublicView()
	cp := *fac
	f.faculty[u.ID] = &cp
	return nil
}

func (f *fakeFacultyRepo) GetByID(_ context.Context, userID string) (*entity.Faculty, error) {
	fac, ok := f.faculty[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *fac
	return &cp, nil
}

func (f *fakeFacultyRepo) List(_ context.Context, _ repository.Page) ([]entity.Faculty, int64, error) {
	out := make([]entity.Faculty, 0, len(f.faculty))
	for _, fac := range f.faculty {
		out = append(out, *fac)
	}
	return out, int64(len(out)), nil
}

func (f *fakeFacultyRepo) Update(_ context.Context, fac *entity.Faculty) error {
	cur, ok := f.faculty[fac.UserID]
	if !ok {
		return repository.ErrNotFound
	}
	*cur = *fac
	return nil
}

func (f *fakeFacultyRepo) EmployeeIDExists(_ context.Context, employeeID string) (bool, error) {
	for _, fac := range f.faculty {
		if fac.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFacultyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.faculty)), nil
}

var _ repository.FacultyRepository = (*fakeFacultyRepo)(nil)

type fakeAdminRepo struct {
	users  *fakeUserRepo
	admins map[string]*entity.Admin
}

func newFakeAdminRepo(users *fakeUserRepo) *fakeAdminRepo {
	return &fakeAdminRepo{users: users, admins: make(map[string]*entity.Admin)}
}

func (f *fakeAdminRepo) CreateWithUser(ctx context.Context, u *entity.User, a *entity.Admin) error {
	if err := f.users.Create(ctx, u); err != nil {
		return err
	}
	a.UserID = u.ID
	a.User = u.PublicView()
	cp := *a
	f.admins[u.ID] = &cp
	return nil
}

func (f *fakeAdminRepo) GetByID(_ context.Context, userID string) (*entity.Admin, error) {
	a, ok := f.admins[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) List(_ context.Context, _ repository.Page) ([]entity.Admin, int64, error) {
	out := make([]entity.Admin, 0, len(f.admins))
	for _, a := range f.admins {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAdminRepo) Update(_ context.Context, a *entity.Admin) error {
	cur, ok := f.admins[a.UserID]
	if !ok {
		return repository.ErrNotFound
	}
	*cur = *a
	return nil
}

func (f *fakeAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.admins)), nil
}

var _ repository.AdminRepository = (*fakeAdminRepo)(nil)

func newTestAdminService() (*AdminService, *fakeUserRepo) {
	users := newFakeUserRepo()
	svc := NewAdminService(
		newFakeAdminRepo(users),
		users,
		newFakeStudentRepo(users),
		newFakeFacultyRepo(users),
		newFakeCollegeRepo(),
		newFakeDepartmentRepo(),
		nil, // stats run uncached without redis
		quietLogger(),
	)
	return svc, users
}

func TestAdminCreate(t *testing.T) {
	svc, users := newTestAdminService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAdminInput{
		Email: "admin@example.com", Name: "Root", Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.UserID)
	assert.Equal(t, entity.RoleAdmin, users.users[a.UserID].Role)
}

func TestAdminDelete_SoftDeletesUser(t *testing.T) {
	svc, users := newTestAdminService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAdminInput{
		Email: "admin@example.com", Name: "Root", Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.UserID))
	assert.True(t, users.users[a.UserID].IsDeleted)
}

func TestAdminStats(t *testing.T) {
	svc, _ := newTestAdminService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateAdminInput{
		Email: "admin@example.com", Name: "Root", Password: "secret123",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Colleges.(*fakeCollegeRepo).Create(ctx, &entity.College{ID: "clg_1", Name: "Main"}))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Students)
	assert.Equal(t, int64(0), stats.Faculty)
	assert.Equal(t, int64(1), stats.Admins)
	assert.Equal(t, int64(1), stats.Colleges)
	assert.Equal(t, int64(0), stats.Departments)
}
