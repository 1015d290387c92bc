package carbon

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListCategories(ctx context.Context) ([]CarbonCategory, error)

	ListAchievements(ctx context.Context, userID *uuid.UUID) ([]Achievement, error)

	GrantAchievement(ctx context.Context, insert AchievementInsert) (uuid.UUID, error)
}
