package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
)

const adminSelect = `
	SELECT a.user_id, COALESCE(a.department_id, ''),
	       u.id, u.email, u.name, u.role, u.is_deleted, u.deleted_at, u.created_at
	FROM admins a
	JOIN users u ON u.id = a.user_id`

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) CreateWithUser(ctx context.Context, u *entity.User, a *entity.Admin) error {
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
		INSERT INTO admins (user_id, department_id)
		VALUES ($1, NULLIF($2, ''))
	`, u.ID, a.DepartmentID)
	if err != nil {
		return mapError(err)
	}

	a.UserID = u.ID
	a.User = u.PublicView()
	return mapError(tx.Commit(ctx))
}

func (r *AdminRepository) GetByID(ctx context.Context, userID string) (*entity.Admin, error) {
	a := &entity.Admin{}
	row := r.pool.QueryRow(ctx, adminSelect+`
		WHERE a.user_id = $1 AND u.is_deleted = FALSE
	`, userID)
	if err := scanAdmin(row, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AdminRepository) List(ctx context.Context, page repository.Page) ([]entity.Admin, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM admins a
		JOIN users u ON u.id = a.user_id
		WHERE u.is_deleted = FALSE
	`).Scan(&total)
	if err != nil {
		return nil, 0, mapError(err)
	}

	rows, err := r.pool.Query(ctx, adminSelect+`
		WHERE u.is_deleted = FALSE
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.Admin, 0, page.Limit)
	for rows.Next() {
		var a entity.Admin
		if err := scanAdmin(rows, &a); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r *AdminRepository) Update(ctx context.Context, a *entity.Admin) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE admins
		SET department_id = NULLIF($1, '')
		WHERE user_id = $2
	`, a.DepartmentID, a.UserID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM admins a
		JOIN users u ON u.id = a.user_id
		WHERE u.is_deleted = FALSE
	`).Scan(&n)
	return n, mapError(err)
}

func scanAdmin(row rowScanner, a *entity.Admin) error {
	return mapError(row.Scan(
		&a.UserID, &a.DepartmentID,
		&a.User.ID, &a.User.Email, &a.User.Name, &a.User.Role,
		&a.User.IsDeleted, &a.User.DeletedAt, &a.User.CreatedAt,
	))
}

var _ repository.AdminRepository = (*AdminRepository)(nil)
