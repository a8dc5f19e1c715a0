package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/internal/domain/repository"
)

const collegeColumns = `id, name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(email, ''), COALESCE(website, ''), created_at, updated_at`

type CollegeRepository struct {
	pool *pgxpool.Pool
}

func NewCollegeRepository(pool *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{pool: pool}
}

func (r *CollegeRepository) Create(ctx context.Context, c *entity.College) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO colleges (id, name, address, phone, email, website)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		RETURNING created_at, updated_at
	`, c.ID, c.Name, c.Address, c.Phone, c.Email, c.Website)
	return mapError(row.Scan(&c.CreatedAt, &c.UpdatedAt))
}

func (r *CollegeRepository) GetByID(ctx context.Context, id string) (*entity.College, error) {
	c := &entity.College{}
	row := r.pool.QueryRow(ctx, `SELECT `+collegeColumns+` FROM colleges WHERE id = $1`, id)
	err := mapError(row.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Website, &c.CreatedAt, &c.UpdatedAt))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CollegeRepository) List(ctx context.Context, page repository.Page) ([]entity.College, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM colleges`).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+collegeColumns+`
		FROM colleges
		ORDER BY name
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	out := make([]entity.College, 0, page.Limit)
	for rows.Next() {
		var c entity.College
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Website, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *CollegeRepository) Update(ctx context.Context, c *entity.College) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE colleges
		SET name = $1, address = NULLIF($2, ''), phone = NULLIF($3, ''),
		    email = NULLIF($4, ''), website = NULLIF($5, ''), updated_at = now()
		WHERE id = $6
	`, c.Name, c.Address, c.Phone, c.Email, c.Website, c.ID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CollegeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM colleges WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CollegeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM colleges`).Scan(&n)
	return n, mapError(err)
}

var _ repository.CollegeRepository = (*CollegeRepository)(nil)
