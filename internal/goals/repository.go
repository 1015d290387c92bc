package goals

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {

	// One goal row per user; absent fields in the upsert keep the
	// current value (or the zero default on first insert).
	Upsert(ctx context.Context, upsert UserGoalUpsert) (*UserGoal, error)

	GetByUser(ctx context.Context, userID uuid.UUID) (*UserGoal, error)
}
