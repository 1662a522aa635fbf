package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
)

type TechnologyRepository struct {
	pool *pgxpool.Pool
}

func NewTechnologyRepository(pool *pgxpool.Pool) *TechnologyRepository {
	return &TechnologyRepository{pool: pool}
}

const technologyColumns = `id, profile_id, name, category, icon_url, created_at, updated_at, created_by, updated_by, is_active`

func scanTechnology(row pgx.Row) (*entity.Technology, error) {
	t := &entity.Technology{}
	err := row.Scan(&t.ID, &t.ProfileID, &t.Name, &t.Category, &t.IconURL,
		&t.CreatedAt, &t.UpdatedAt, &t.CreatedBy, &t.UpdatedBy, &t.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TechnologyRepository) GetByID(id int64) (*entity.Technology, error) {
	ctx := context.Background()
	return scanTechnology(r.pool.QueryRow(ctx, `
		SELECT `+technologyColumns+`
		FROM technologies
		WHERE id = $1 AND is_active = TRUE
	`, id))
}

func (r *TechnologyRepository) GetAllByProfileID(profileID int64) ([]*entity.Technology, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+technologyColumns+`
		FROM technologies
		WHERE profile_id = $1 AND is_active = TRUE
		ORDER BY category, name
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Technology
	for rows.Next() {
		t, err := scanTechnology(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TechnologyRepository) Save(t *entity.Technology) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO technologies (profile_id, name, category, icon_url, created_by, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, t.ProfileID, t.Name, t.Category, t.IconURL, t.CreatedBy, t.IsActive)

	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TechnologyRepository) Update(t *entity.Technology) error {
	ctx := context.Background()
	t.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE technologies
		SET name = $1, category = $2, icon_url = $3, updated_at = $4, updated_by = $5
		WHERE id = $6
	`, t.Name, t.Category, t.IconURL, t.UpdatedAt, t.UpdatedBy, t.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errors.New("technology not found")
	}
	return nil
}

func (r *TechnologyRepository) Delete(id, deletedBy int64) (bool, error) {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE technologies
		SET is_active = FALSE, updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_active = TRUE
	`, id, deletedBy)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ repository.TechnologyRepository = (*TechnologyRepository)(nil)
