package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
)

const facultySelect = `
	SELECT f.user_id, f.employee_id, f.department_id,
	       COALESCE(f.designation, ''), COALESCE(f.specialization, ''),
	       u.id, u.email, u.name, u.role, u.is_deleted, u.deleted_at, u.created_at
	FROM faculty f
	JOIN users u ON u.id = f.user_id`

type FacultyRepository struct {
	pool *pgxpool.Pool
}

func NewFacultyRepository(pool *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{pool: pool}
}

func (r *FacultyRepository) CreateWithUser(ctx context.Context, u *entity.User, f *entity.Faculty) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO users (id, email, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, u.ID, u.Email, u.Name, u.Password, u.Role)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapError(err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO faculty (user_id, employee_id, department_id, designation, specialization)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
	`, u.ID, f.EmployeeID, f.DepartmentID, f.Designation, f.Specialization)
	if err != nil {
		return mapError(err)
	}

	f.UserID = u.ID
	f.User = u.PublicView()
	return mapError(tx.Commit(ctx))
}

func (r *FacultyRepository) GetByID(ctx context.Context, userID string) (*entity.Faculty, error) {
	f := &entity.Faculty{}
	row := r.pool.QueryRow(ctx, facultySelect+`
		WHERE f.user_id = $1 AND u.is_deleted = FALSE
	`, userID)
	if err := scanFaculty(row, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *FacultyRepository) List(ctx context.Context, page repository.Page) ([]entity.Faculty, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM faculty f
		JOIN users u ON u.id = f.user_id
		WHERE u.is_deleted = FALSE
	`).Scan(&total)
	if err != nil {
		return nil, 0, mapError(err)
	}

	rows, err := r.pool.Query(ctx, facultySelect+`
		WHERE u.is_deleted = FALSE
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.Faculty, 0, page.Limit)
	for rows.Next() {
		var f entity.Faculty
		if err := scanFaculty(rows, &f); err != nil {
			return nil, 0, err
		}
		out = append(out, f)
	}
	return out, total, rows.Err()
}

func (r *FacultyRepository) Update(ctx context.Context, f *entity.Faculty) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE faculty
		SET employee_id = $1, department_id = $2,
		    designation = NULLIF($3, ''), specialization = NULLIF($4, '')
		WHERE user_id = $5
	`, f.EmployeeID, f.DepartmentID, f.Designation, f.Specialization, f.UserID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *FacultyRepository) EmployeeIDExists(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM faculty WHERE employee_id = $1)
	`, employeeID).Scan(&exists)
	return exists, mapError(err)
}

func (r *FacultyRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM faculty f
		JOIN users u ON u.id = f.user_id
		WHERE u.is_deleted = FALSE
	`).Scan(&n)
	return n, mapError(err)
}

func scanFaculty(row rowScanner, f *entity.Faculty) error {
	return mapError(row.Scan(
		&f.UserID, &f.EmployeeID, &f.DepartmentID, &f.Designation, &f.Specialization,
		&f.User.ID, &f.User.Email, &f.User.Name, &f.User.Role,
		&f.User.IsDeleted, &f.User.DeletedAt, &f.User.CreatedAt,
	))
}

var _ repository.FacultyRepository = (*FacultyRepository)(nil)
