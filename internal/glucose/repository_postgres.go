package glucose

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("no glucose profile stored for user")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(
	ctx context.Context,
	userID string,
	profile StoredProfile,
) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO glucose_profiles (user_id, summary, report_key, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id)
		DO UPDATE SET summary = $2, report_key = $3, updated_at = now()
	`, userID, profile.Summary, profile.ReportKey)

	return err
}

func (r *PostgresRepository) Find(
	ctx context.Context,
	userID string,
) (*StoredProfile, error) {

	var profile StoredProfile
	err := r.db.QueryRow(ctx, `
		SELECT summary, COALESCE(report_key, ''), updated_at
		FROM glucose_profiles
		WHERE user_id = $1
	`, userID).Scan(&profile.Summary, &profile.ReportKey, &profile.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
