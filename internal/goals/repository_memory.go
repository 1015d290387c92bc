package goals

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.Mutex
	goals map[uuid.UUID]*UserGoal // keyed by user id
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		goals: make(map[uuid.UUID]*UserGoal),
	}
}

func (r *InMemoryRepository) Upsert(
	_ context.Context,
	upsert UserGoalUpsert,
) (*UserGoal, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	key := uuid.Nil
	if upsert.UserID != nil {
		key = *upsert.UserID
	}

	goal, ok := r.goals[key]
	if !ok {
		goal = &UserGoal{
			ID:        uuid.New(),
			UserID:    upsert.UserID,
			CreatedAt: time.Now(),
		}
		r.goals[key] = goal
	}

	if upsert.WeeklyGoal != nil {
		goal.WeeklyGoal = *upsert.WeeklyGoal
	}
	if upsert.MonthlyGoal != nil {
		goal.MonthlyGoal = *upsert.MonthlyGoal
	}
	if upsert.YearlyGoal != nil {
		goal.YearlyGoal = *upsert.YearlyGoal
	}
	goal.UpdatedAt = time.Now()

	copied := *goal
	return &copied, nil
}

func (r *InMemoryRepository) GetByUser(
	_ context.Context,
	userID uuid.UUID,
) (*UserGoal, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	goal, ok := r.goals[userID]
	if !ok {
		return nil, ErrGoalNotFound
	}

	copied := *goal
	return &copied, nil
}
