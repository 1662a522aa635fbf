package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
)

type ProjectPreviewRepository struct {
	pool *pgxpool.Pool
}

func NewProjectPreviewRepository(pool *pgxpool.Pool) *ProjectPreviewRepository {
	return &ProjectPreviewRepository{pool: pool}
}

func (r *ProjectPreviewRepository) GetByProjectID(projectID int64) ([]*entity.ProjectPreview, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, project_id, image_url, caption, sort_order, created_at, updated_at, created_by, updated_by, is_active
		FROM project_previews
		WHERE project_id = $1 AND is_active = TRUE
		ORDER BY sort_order, id
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.ProjectPreview
	for rows.Next() {
		pv := &entity.ProjectPreview{}
		err := rows.Scan(&pv.ID, &pv.ProjectID, &pv.ImageURL, &pv.Caption, &pv.SortOrder,
			&pv.CreatedAt, &pv.UpdatedAt, &pv.CreatedBy, &pv.UpdatedBy, &pv.IsActive)
		if err != nil {
			return nil, err
		}
		out = append(out, pv)
	}
	return out, rows.Err()
}

func (r *ProjectPreviewRepository) Save(pv *entity.ProjectPreview) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO project_previews (project_id, image_url, caption, sort_order, created_by, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, pv.ProjectID, pv.ImageURL, pv.Caption, pv.SortOrder, pv.CreatedBy, pv.IsActive)

	return row.Scan(&pv.ID, &pv.CreatedAt, &pv.UpdatedAt)
}

func (r *ProjectPreviewRepository) Delete(id, deletedBy int64) (bool, error) {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE project_previews
		SET is_active = FALSE, updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_active = TRUE
	`, id, deletedBy)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ repository.ProjectPreviewRepository = (*ProjectPreviewRepository)(nil)
