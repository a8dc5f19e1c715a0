package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
)

type fakeCollegeRepo struct {
	colleges map[string]*entity.College
}

func newFakeCollegeRepo() *fakeCollegeRepo {
	return &fakeCollegeRepo{colleges: make(map[string]*entity.College)}
}

func (f *fakeCollegeRepo) Create(_ context.Context, c *entity.College) error {
	cp := *c
	f.colleges[c.ID] = &cp
	return nil
}

func (f *fakeCollegeRepo) GetByID(_ context.Context, id string) (*entity.College, error) {
	c, ok := f.colleges[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCollegeRepo) List(_ context.Context, _ repository.Page) ([]entity.College, int64, error) {
	out := make([]entity.College, 0, len(f.colleges))
	for _, c := range f.colleges {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCollegeRepo) Update(_ context.Context, c *entity.College) error {
	cur, ok := f.colleges[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	*cur = *c
	return nil
}

func (f *fakeCollegeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.colleges[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.colleges, id)
	return nil
}

func (f *fakeCollegeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.colleges)), nil
}

var _ repository.CollegeRepository = (*fakeCollegeRepo)(nil)

type fakeDepartmentRepo struct {
	departments map[string]*entity.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: make(map[string]*entity.Department)}
}

func (f *fakeDepartmentRepo) Create(_ context.Context, d *entity.Department) error {
	cp := *d
	f.departments[d.ID] = &cp
	return nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id string) (*entity.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDepartmentRepo) List(_ context.Context, collegeID string, _ repository.Page) ([]entity.Department, int64, error) {
	out := make([]entity.Department, 0, len(f.departments))
	for _, d := range f.departments {
		if collegeID == "" || d.CollegeID == collegeID {
			out = append(out, *d)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, d *entity.Department) error {
	cur, ok := f.departments[d.ID]
	if !ok {
		return repository.ErrNotFound
	}
	*cur = *d
	return nil
}

func (f *fakeDepartmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.departments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.departments, id)
	return nil
}

func (f *fakeDepartmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.departments)), nil
}

var _ repository.DepartmentRepository = (*fakeDepartmentRepo)(nil)

func newTestDepartmentService() (*DepartmentService, *fakeCollegeRepo, *fakeDepartmentRepo) {
	colleges := newFakeCollegeRepo()
	departments := newFakeDepartmentRepo()
	return NewDepartmentService(departments, colleges, quietLogger()), colleges, departments
}

func TestDepartmentCreate_RequiresCollege(t *testing.T) {
	svc, colleges, _ := newTestDepartmentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, DepartmentInput{Name: "CS", CollegeID: "clg_missing"})
	assert.ErrorIs(t, err, ErrCollegeNotFound)

	require.NoError(t, colleges.Create(ctx, &entity.College{ID: "clg_1", Name: "Main"}))
	d, err := svc.Create(ctx, DepartmentInput{Name: "CS", CollegeID: "clg_1"})
	require.NoError(t, err)
	assert.Equal(t, "clg_1", d.CollegeID)
	assert.NotEmpty(t, d.ID)
}

func TestDepartmentUpdate_CollegeMoveChecked(t *testing.T) {
	svc, colleges, _ := newTestDepartmentService()
	ctx := context.Background()

	require.NoError(t, colleges.Create(ctx, &entity.College{ID: "clg_1", Name: "Main"}))
	d, err := svc.Create(ctx, DepartmentInput{Name: "CS", CollegeID: "clg_1"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, d.ID, DepartmentInput{CollegeID: "clg_missing"})
	assert.ErrorIs(t, err, ErrCollegeNotFound)

	require.NoError(t, colleges.Create(ctx, &entity.College{ID: "clg_2", Name: "North"}))
	got, err := svc.Update(ctx, d.ID, DepartmentInput{Name: "CSE", CollegeID: "clg_2"})
	require.NoError(t, err)
	assert.Equal(t, "CSE", got.Name)
	assert.Equal(t, "clg_2", got.CollegeID)
}

func TestDepartmentList_FilterByCollege(t *testing.T) {
	svc, colleges, _ := newTestDepartmentService()
	ctx := context.Background()

	require.NoError(t, colleges.Create(ctx, &entity.College{ID: "clg_1", Name: "Main"}))
	require.NoError(t, colleges.Create(ctx, &entity.College{ID: "clg_2", Name: "North"}))
	_, err := svc.Create(ctx, DepartmentInput{Name: "CS", CollegeID: "clg_1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, DepartmentInput{Name: "EE", CollegeID: "clg_2"})
	require.NoError(t, err)

	all, _, _, total, err := svc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	scoped, _, _, total, err := svc.List(ctx, "clg_1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, scoped, 1)
	assert.Equal(t, "CS", scoped[0].Name)
}

func TestDepartmentDelete(t *testing.T) {
	svc, colleges, _ := newTestDepartmentService()
	ctx := context.Background()

	require.NoError(t, colleges.Create(ctx, &entity.College{ID: "clg_1", Name: "Main"}))
	d, err := svc.Create(ctx, DepartmentInput{Name: "CS", CollegeID: "clg_1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, d.ID))
	assert.ErrorIs(t, svc.Delete(ctx, d.ID), ErrDepartmentNotFound)
}
