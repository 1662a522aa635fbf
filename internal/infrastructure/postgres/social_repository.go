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

type SocialRepository struct {
	pool *pgxpool.Pool
}

func NewSocialRepository(pool *pgxpool.Pool) *SocialRepository {
	return &SocialRepository{pool: pool}
}

const socialColumns = `id, profile_id, platform, url, icon_name, sort_order, created_at, updated_at, created_by, updated_by, is_active`

func scanSocial(row pgx.Row) (*entity.Social, error) {
	s := &entity.Social{}
	err := row.Scan(&s.ID, &s.ProfileID, &s.Platform, &s.URL, &s.IconName, &s.SortOrder,
		&s.CreatedAt, &s.UpdatedAt, &s.CreatedBy, &s.UpdatedBy, &s.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SocialRepository) GetByID(id int64) (*entity.Social, error) {
	ctx := context.Background()
	return scanSocial(r.pool.QueryRow(ctx, `
		SELECT `+socialColumns+`
		FROM socials
		WHERE id = $1 AND is_active = TRUE
	`, id))
}

func (r *SocialRepository) GetAllByProfileID(profileID int64) ([]*entity.Social, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+socialColumns+`
		FROM socials
		WHERE profile_id = $1 AND is_active = TRUE
		ORDER BY sort_order, id
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Social
	for rows.Next() {
		s, err := scanSocial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SocialRepository) Save(s *entity.Social) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO socials (profile_id, platform, url, icon_name, sort_order, created_by, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, s.ProfileID, s.Platform, s.URL, s.IconName, s.SortOrder, s.CreatedBy, s.IsActive)

	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SocialRepository) Update(s *entity.Social) error {
	ctx := context.Background()
	s.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE socials
		SET platform = $1, url = $2, icon_name = $3, sort_order = $4, updated_at = $5, updated_by = $6
		WHERE id = $7
	`, s.Platform, s.URL, s.IconName, s.SortOrder, s.UpdatedAt, s.UpdatedBy, s.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errors.New("social link not found")
	}
	return nil
}

func (r *SocialRepository) Delete(id, deletedBy int64) (bool, error) {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE socials
		SET is_active = FALSE, updated_at = now(), updated_by = $2
		WHERE id = $1 AND is_active = TRUE
	`, id, deletedBy)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ repository.SocialRepository = (*SocialRepository)(nil)
