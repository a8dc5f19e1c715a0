package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
)

const studentSelect = `
	SELECT s.user_id, s.roll_number, COALESCE(s.prn, ''), s.department_id,
	       s.year, COALESCE(s.division, ''), COALESCE(s.academic_year, ''),
	       u.id, u.email, u.name, u.role, u.is_deleted, u.deleted_at, u.created_at
	FROM students s
	JOIN users u ON u.id = s.user_id`

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func (r *StudentRepository) CreateWithUser(ctx context.Context, u *entity.User, s *entity.Student) error {
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
		INSERT INTO students (user_id, roll_number, prn, department_id, year, division, academic_year)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), NULLIF($7, ''))
	`, u.ID, s.RollNumber, s.PRN, s.DepartmentID, s.Year, s.Division, s.AcademicYear)
	if err != nil {
		return mapError(err)
	}

	s.UserID = u.ID
	s.User = u.PublicView()
	return mapError(tx.Commit(ctx))
}

func (r *StudentRepository) GetByID(ctx context.Context, userID string) (*entity.Student, error) {
	s := &entity.Student{}
	row := r.pool.QueryRow(ctx, studentSelect+`
		WHERE s.user_id = $1 AND u.is_deleted = FALSE
	`, userID)
	if err := scanStudent(row, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *StudentRepository) List(ctx context.Context, page repository.Page) ([]entity.Student, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM students s
		JOIN users u ON u.id = s.user_id
		WHERE u.is_deleted = FALSE
	`).Scan(&total)
	if err != nil {
		return nil, 0, mapError(err)
	}

	rows, err := r.pool.Query(ctx, studentSelect+`
		WHERE u.is_deleted = FALSE
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.Student, 0, page.Limit)
	for rows.Next() {
		var s entity.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func (r *StudentRepository) Update(ctx context.Context, s *entity.Student) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE students
		SET roll_number = $1, prn = NULLIF($2, ''), department_id = $3,
		    year = $4, division = NULLIF($5, ''), academic_year = NULLIF($6, '')
		WHERE user_id = $7
	`, s.RollNumber, s.PRN, s.DepartmentID, s.Year, s.Division, s.AcademicYear, s.UserID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *StudentRepository) RollNumberExists(ctx context.Context, rollNumber string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM students WHERE roll_number = $1)
	`, rollNumber).Scan(&exists)
	return exists, mapError(err)
}

func (r *StudentRepository) PRNExists(ctx context.Context, prn string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM students WHERE prn = $1)
	`, prn).Scan(&exists)
	return exists, mapError(err)
}

func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM students s
		JOIN users u ON u.id = s.user_id
		WHERE u.is_deleted = FALSE
	`).Scan(&n)
	return n, mapError(err)
}

func scanStudent(row rowScanner, s *entity.Student) error {
	return mapError(row.Scan(
		&s.UserID, &s.RollNumber, &s.PRN, &s.DepartmentID,
		&s.Year, &s.Division, &s.AcademicYear,
		&s.User.ID, &s.User.Email, &s.User.Name, &s.User.Role,
		&s.User.IsDeleted, &s.User.DeletedAt, &s.User.CreatedAt,
	))
}

var _ repository.StudentRepository = (*StudentRepository)(nil)
