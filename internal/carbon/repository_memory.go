package carbon

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu           sync.Mutex
	categories   []CarbonCategory
	achievements []Achievement
}

func NewInMemoryRepository() *InMemoryRepository {
	cats := make([]CarbonCategory, len(DefaultCategories))
	copy(cats, DefaultCategories)
	for i := range cats {
		cats[i].ID = i + 1
	}
	return &InMemoryRepository{categories: cats}
}

func (r *InMemoryRepository) ListCategories(_ context.Context) ([]CarbonCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]CarbonCategory{}, r.categories...), nil
}

func (r *InMemoryRepository) ListAchievements(
	_ context.Context,
	userID *uuid.UUID,
) ([]Achievement, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	achievements := []Achievement{}
	for _, a := range r.achievements {
		if userID != nil && (a.UserID == nil || *a.UserID != *userID) {
			continue
		}
		achievements = append(achievements, a)
	}
	return achievements, nil
}

func (r *InMemoryRepository) GrantAchievement(
	_ context.Context,
	insert AchievementInsert,
) (uuid.UUID, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	a := Achievement{
		ID:       uuid.New(),
		UserID:   insert.UserID,
		EarnedAt: time.Now(),
	}
	if insert.Name != nil {
		a.Name = *insert.Name
	}
	if insert.Description != nil {
		a.Description = *insert.Description
	}

	r.achievements = append(r.achievements, a)
	return a.ID, nil
}
