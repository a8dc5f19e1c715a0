package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
)

const userColumns = `id, email, name, password_hash, role, is_deleted, deleted_at, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, u.ID, u.Email, u.Name, u.Password, u.Role)

	return mapError(row.Scan(&u.CreatedAt, &u.UpdatedAt))
}

func (r *UserRepository) Revive(ctx context.Context, id, name, passwordHash string, role entity.Role) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $1, password_hash = $2, role = $3,
		    is_deleted = FALSE, deleted_at = NULL, updated_at = now()
		WHERE id = $4 AND is_deleted = TRUE
		RETURNING `+userColumns+`
	`, name, passwordHash, role, id)

	if err := scanUser(row, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1 AND is_deleted = FALSE
	`, id)

	if err := scanUser(row, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1 AND is_deleted = FALSE
	`, email)

	if err := scanUser(row, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByEmailIncludingDeleted(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)

	if err := scanUser(row, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $1, name = $2, updated_at = now()
		WHERE id = $3 AND is_deleted = FALSE
	`, u.Email, u.Name, u.ID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, updated_at = now()
		WHERE id = $2 AND is_deleted = FALSE
	`, passwordHash, id)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET is_deleted = TRUE, deleted_at = now(), updated_at = now()
		WHERE id = $1 AND is_deleted = FALSE
	`, id)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Restore(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET is_deleted = FALSE, deleted_at = NULL, updated_at = now()
		WHERE id = $1 AND is_deleted = TRUE
	`, id)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, page repository.Page, includeDeleted bool) ([]entity.PublicUser, int64, error) {
	filter := `WHERE is_deleted = FALSE`
	if includeDeleted {
		filter = ``
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users `+filter).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, email, name, role, is_deleted, deleted_at, created_at
		FROM users `+filter+`
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	users := make([]entity.PublicUser, 0, page.Limit)
	for rows.Next() {
		var u entity.PublicUser
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.IsDeleted, &u.DeletedAt, &u.CreatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, u *entity.User) error {
	return mapError(row.Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role,
		&u.IsDeleted, &u.DeletedAt, &u.CreatedAt, &u.UpdatedAt))
}

var _ repository.UserRepository = (*UserRepository)(nil)
