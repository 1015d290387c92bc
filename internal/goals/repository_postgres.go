package goals

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrGoalNotFound = errors.New("no goals set for user")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(
	ctx context.Context,
	upsert UserGoalUpsert,
) (*UserGoal, error) {

	var goal UserGoal

	err := r.db.QueryRow(ctx, `
		INSERT INTO user_goals (id, user_id, weekly_goal, monthly_goal, yearly_goal)
		VALUES ($1, $2, COALESCE($3, 0), COALESCE($4, 0), COALESCE($5, 0))
		ON CONFLICT (user_id) DO UPDATE SET
			weekly_goal  = COALESCE($3, user_goals.weekly_goal),
			monthly_goal = COALESCE($4, user_goals.monthly_goal),
			yearly_goal  = COALESCE($5, user_goals.yearly_goal),
			updated_at   = now()
		RETURNING id, user_id, weekly_goal, monthly_goal, yearly_goal, created_at, updated_at
	`,
		uuid.New(),
		upsert.UserID,
		upsert.WeeklyGoal,
		upsert.MonthlyGoal,
		upsert.YearlyGoal,
	).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.WeeklyGoal,
		&goal.MonthlyGoal,
		&goal.YearlyGoal,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

func (r *PostgresRepository) GetByUser(
	ctx context.Context,
	userID uuid.UUID,
) (*UserGoal, error) {

	var goal UserGoal

	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, weekly_goal, monthly_goal, yearly_goal, created_at, updated_at
		FROM user_goals
		WHERE user_id = $1
	`, userID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.WeeklyGoal,
		&goal.MonthlyGoal,
		&goal.YearlyGoal,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	return &goal, nil
}
