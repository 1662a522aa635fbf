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

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

const clientColumns = `id, profile_id, name, company, feedback, client_photo_url, project_link, created_at, updated_at, created_by, updated_by, is_active`

func scanClient(row pgx.Row) (*entity.Client, error) {
	c := &entity.Client{}
	err := row.Scan(&c.ID, &c.ProfileID, &c.Name, &c.Company, &c.Feedback,
		&c.ClientPhotoURL, &c.ProjectLink,
		&c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy, &c.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ClientRepository) GetByID(id int64) (*entity.Client, error) {
	ctx := context.Background()
	return scanClient(r.pool.QueryRow(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE id = $1 AND is_active = TRUE
	`, id))
}

func (r *ClientRepository) GetAllByProfileID(profileID int64) ([]*entity.Client, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE profile_id = $1 AND is_active = TRUE
		ORDER BY id DESC
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientRepository) Save(c *entity.Client) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO clients (profile_id, name, company, feedback, client_photo_url, project_link, created_by, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, c.ProfileID, c.Name, c.Company, c.Feedback, c.ClientPhotoURL, c.ProjectLink, c.CreatedBy, c.IsActive)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ClientRepository) Update(c *entity.Client) error {
	ctx := context.Background()
	c.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE clients
		SET name = $1, company = $2, feedback = $3, client_photo_url = $4, project_link = $5,
		    updated_at = $6, updated_by = $7
		WHERE id = $8
	`, c.Name, c.Company, c.Feedback, c.ClientPhotoURL, c.ProjectLink, c.UpdatedAt, c.UpdatedBy, c.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errors.New("client not found")
	}
	return nil
}

func (r *ClientRepository) Delete(id, deletedBy int64) (bool, error) {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE clients
		SET is_active = FALSE, updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_active = TRUE
	`, id, deletedBy)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ repository.ClientRepository = (*ClientRepository)(nil)
