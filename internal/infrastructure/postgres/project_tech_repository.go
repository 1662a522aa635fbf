package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
	"github.com/mvargas/portfolio-cms-api/internal/domain/repository"
)

type ProjectTechRepository struct {
	pool *pgxpool.Pool
}

func NewProjectTechRepository(pool *pgxpool.Pool) *ProjectTechRepository {
	return &ProjectTechRepository{pool: pool}
}

func (r *ProjectTechRepository) GetByProjectID(projectID int64) ([]*entity.ProjectTech, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, project_id, tech_id, created_at, updated_at, created_by, updated_by, is_active
		FROM project_techs
		WHERE project_id = $1 AND is_active = TRUE
		ORDER BY id
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.ProjectTech
	for rows.Next() {
		pt := &entity.ProjectTech{}
		err := rows.Scan(&pt.ID, &pt.ProjectID, &pt.TechID,
			&pt.CreatedAt, &pt.UpdatedAt, &pt.CreatedBy, &pt.UpdatedBy, &pt.IsActive)
		if err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, rows.Err()
}

func (r *ProjectTechRepository) Save(pt *entity.ProjectTech) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO project_techs (project_id, tech_id, created_by, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, pt.ProjectID, pt.TechID, pt.CreatedBy, pt.IsActive)

	return row.Scan(&pt.ID, &pt.CreatedAt, &pt.UpdatedAt)
}

// DeleteByProjectID soft-deletes every association of the project. Used by the
// replace-all update path.
func (r *ProjectTechRepository) DeleteByProjectID(projectID, deletedBy int64) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		UPDATE project_techs
		SET is_active = FALSE, updated_at = $2, updated_by = $3
		WHERE project_id = $1 AND is_active = TRUE
	`, projectID, time.Now(), deletedBy)
	return err
}

var _ repository.ProjectTechRepository = (*ProjectTechRepository)(nil)
