package carbon

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]CarbonCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, co2_per_euro, description
		FROM carbon_categories
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []CarbonCategory{}
	for rows.Next() {
		var c CarbonCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CO2PerEuro, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *PostgresRepository) ListAchievements(
	ctx context.Context,
	userID *uuid.UUID,
) ([]Achievement, error) {

	query := `
		SELECT id, user_id, name, description, earned_at
		FROM achievements
	`
	args := []any{}
	if userID != nil {
		query += " WHERE user_id = $1"
		args = append(args, *userID)
	}
	query += " ORDER BY earned_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := []Achievement{}
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Description, &a.EarnedAt); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}

func (r *PostgresRepository) GrantAchievement(
	ctx context.Context,
	insert AchievementInsert,
) (uuid.UUID, error) {

	id := uuid.New()

	_, err := r.db.Exec(ctx, `
		INSERT INTO achievements (id, user_id, name, description)
		VALUES ($1, $2, COALESCE($3, ''), COALESCE($4, ''))
	`, id, insert.UserID, insert.Name, insert.Description)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}
