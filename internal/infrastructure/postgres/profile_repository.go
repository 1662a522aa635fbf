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

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `id, user_id, name, last_name, email, current_title, bio_summary, phone, location, photo_url, created_at, updated_at, created_by, updated_by, is_active`

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	p := &entity.Profile{}
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.LastName, &p.Email, &p.CurrentTitle,
		&p.BioSummary, &p.Phone, &p.Location, &p.PhotoURL,
		&p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy, &p.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) GetByUserID(userID int64) (*entity.Profile, error) {
	ctx := context.Background()
	return scanProfile(r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE user_id = $1 AND is_active = TRUE
	`, userID))
}

func (r *ProfileRepository) Save(p *entity.Profile) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, name, last_name, email, current_title, bio_summary, phone, location, photo_url, created_by, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Name, p.LastName, p.Email, p.CurrentTitle, p.BioSummary, p.Phone, p.Location, p.PhotoURL, p.CreatedBy, p.IsActive)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProfileRepository) Update(p *entity.Profile) error {
	ctx := context.Background()
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET name = $1, last_name = $2, email = $3, current_title = $4, bio_summary = $5,
		    phone = $6, location = $7, photo_url = $8, updated_at = $9, updated_by = $10
		WHERE id = $11
	`, p.Name, p.LastName, p.Email, p.CurrentTitle, p.BioSummary, p.Phone, p.Location, p.PhotoURL, p.UpdatedAt, p.UpdatedBy, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errors.New("profile not found")
	}
	return nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
