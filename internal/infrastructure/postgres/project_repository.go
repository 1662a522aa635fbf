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

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `id, profile_id, title, category, description, thumbnail_url, live_url, repo_url, featured, work_experience_id, created_at, updated_at, created_by, updated_by, is_active`

func scanProject(row pgx.Row) (*entity.Project, error) {
	p := &entity.Project{}
	err := row.Scan(&p.ID, &p.ProfileID, &p.Title, &p.Category, &p.Description,
		&p.ThumbnailURL, &p.LiveURL, &p.RepoURL, &p.Featured, &p.WorkExperienceID,
		&p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy, &p.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) queryProjects(ctx context.Context, sql string, args ...any) ([]*entity.Project, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) GetByID(id int64) (*entity.Project, error) {
	ctx := context.Background()
	return scanProject(r.pool.QueryRow(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE id = $1 AND is_active = TRUE
	`, id))
}

// GetAllByProfileID lists a profile's projects with featured entries first.
func (r *ProjectRepository) GetAllByProfileID(profileID int64) ([]*entity.Project, error) {
	ctx := context.Background()
	return r.queryProjects(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE profile_id = $1 AND is_active = TRUE
		ORDER BY featured DESC, id DESC
	`, profileID)
}

func (r *ProjectRepository) GetFeaturedByProfileID(profileID int64) ([]*entity.Project, error) {
	ctx := context.Background()
	return r.queryProjects(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE profile_id = $1 AND featured = TRUE AND is_active = TRUE
		ORDER BY id DESC
	`, profileID)
}

func (r *ProjectRepository) Save(p *entity.Project) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (profile_id, title, category, description, thumbnail_url, live_url, repo_url, featured, work_experience_id, created_by, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, p.ProfileID, p.Title, p.Category, p.Description, p.ThumbnailURL, p.LiveURL, p.RepoURL, p.Featured, p.WorkExperienceID, p.CreatedBy, p.IsActive)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProjectRepository) Update(p *entity.Project) error {
	ctx := context.Background()
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE projects
		SET title = $1, category = $2, description = $3, thumbnail_url = $4, live_url = $5,
		    repo_url = $6, featured = $7, work_experience_id = $8, updated_at = $9, updated_by = $10
		WHERE id = $11
	`, p.Title, p.Category, p.Description, p.ThumbnailURL, p.LiveURL, p.RepoURL, p.Featured, p.WorkExperienceID, p.UpdatedAt, p.UpdatedBy, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errors.New("project not found")
	}
	return nil
}

func (r *ProjectRepository) Delete(id, deletedBy int64) (bool, error) {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE projects
		SET is_active = FALSE, updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_active = TRUE
	`, id, deletedBy)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
