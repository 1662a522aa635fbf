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

type WorkExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewWorkExperienceRepository(pool *pgxpool.Pool) *WorkExperienceRepository {
	return &WorkExperienceRepository{pool: pool}
}

const workExperienceColumns = `id, profile_id, job_title, company, location, start_date, end_date, description, created_at, updated_at, created_by, updated_by, is_active`

func scanWorkExperience(row pgx.Row) (*entity.WorkExperience, error) {
	w := &entity.WorkExperience{}
	err := row.Scan(&w.ID, &w.ProfileID, &w.JobTitle, &w.Company, &w.Location,
		&w.StartDate, &w.EndDate, &w.Description,
		&w.CreatedAt, &w.UpdatedAt, &w.CreatedBy, &w.UpdatedBy, &w.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *WorkExperienceRepository) GetByID(id int64) (*entity.WorkExperience, error) {
	ctx := context.Background()
	return scanWorkExperience(r.pool.QueryRow(ctx, `
		SELECT `+workExperienceColumns+`
		FROM work_experiences
		WHERE id = $1 AND is_active = TRUE
	`, id))
}

func (r *WorkExperienceRepository) GetAllByProfileID(profileID int64) ([]*entity.WorkExperience, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+workExperienceColumns+`
		FROM work_experiences
		WHERE profile_id = $1 AND is_active = TRUE
		ORDER BY start_date DESC, id DESC
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.WorkExperience
	for rows.Next() {
		w, err := scanWorkExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WorkExperienceRepository) Save(w *entity.WorkExperience) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO work_experiences (profile_id, job_title, company, location, start_date, end_date, description, created_by, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, w.ProfileID, w.JobTitle, w.Company, w.Location, w.StartDate, w.EndDate, w.Description, w.CreatedBy, w.IsActive)

	return row.Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
}

func (r *WorkExperienceRepository) Update(w *entity.WorkExperience) error {
	ctx := context.Background()
	w.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE work_experiences
		SET job_title = $1, company = $2, location = $3, start_date = $4, end_date = $5,
		    description = $6, updated_at = $7, updated_by = $8
		WHERE id = $9
	`, w.JobTitle, w.Company, w.Location, w.StartDate, w.EndDate, w.Description, w.UpdatedAt, w.UpdatedBy, w.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errors.New("work experience not found")
	}
	return nil
}

func (r *WorkExperienceRepository) Delete(id, deletedBy int64) (bool, error) {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE work_experiences
		SET is_active = FALSE, updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_active = TRUE
	`, id, deletedBy)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ repository.WorkExperienceRepository = (*WorkExperienceRepository)(nil)
