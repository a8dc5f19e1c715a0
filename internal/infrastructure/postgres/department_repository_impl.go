package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
)

type DepartmentRepository struct {
	pool *pgxpool.Pool
}

func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

func (r *DepartmentRepository) Create(ctx context.Context, d *entity.Department) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO departments (id, name, college_id)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`, d.ID, d.Name, d.CollegeID)
	return mapError(row.Scan(&d.CreatedAt, &d.UpdatedAt))
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	d := &entity.Department{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, college_id, created_at, updated_at
		FROM departments
		WHERE id = $1
	`, id)
	if err := mapError(row.Scan(&d.ID, &d.Name, &d.CollegeID, &d.CreatedAt, &d.UpdatedAt)); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DepartmentRepository) List(ctx context.Context, collegeID string, page repository.Page) ([]entity.Department, int64, error) {
	filter := ``
	args := []any{page.Limit, page.Offset}
	countArgs := []any{}
	if collegeID != "" {
		filter = `WHERE college_id = $3`
		args = append(args, collegeID)
		countArgs = append(countArgs, collegeID)
	}

	var total int64
	countQuery := `SELECT count(*) FROM departments`
	if collegeID != "" {
		countQuery += ` WHERE college_id = $1`
	}
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, college_id, created_at, updated_at
		FROM departments `+filter+`
		ORDER BY name
		LIMIT $1 OFFSET $2
	`, args...)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.Department, 0, page.Limit)
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CollegeID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}

func (r *DepartmentRepository) Update(ctx context.Context, d *entity.Department) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE departments
		SET name = $1, college_id = $2, updated_at = now()
		WHERE id = $3
	`, d.Name, d.CollegeID, d.ID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM departments`).Scan(&n)
	return n, mapError(err)
}

var _ repository.DepartmentRepository = (*DepartmentRepository)(nil)
