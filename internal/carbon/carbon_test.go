package carbon

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestFactors_Estimate(t *testing.T) {
	factors := FactorsFrom(DefaultCategories)

	if got := factors.Estimate("food", 10); got != 6 {
		t.Fatalf("expected 6 kg for 10 on food, got %v", got)
	}

	// Unknown categories fall back to the "other" factor.
	if got := factors.Estimate("bogus", 10); got != 5 {
		t.Fatalf("expected other-factor estimate, got %v", got)
	}
}

func TestInMemoryRepository_Seeded(t *testing.T) {
	repo := NewInMemoryRepository()

	categories, err := repo.ListCategories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 5 {
		t.Fatalf("expected 5 seeded categories, got %d", len(categories))
	}
}

func TestInMemoryRepository_Achievements(t *testing.T) {
	repo := NewInMemoryRepository()
	userID := uuid.New()
	name := "First Scan"

	if _, err := repo.GrantAchievement(context.Background(), AchievementInsert{
		UserID: &userID,
		Name:   &name,
	}); err != nil {
		t.Fatal(err)
	}

	achievements, err := repo.ListAchievements(context.Background(), &userID)
	if err != nil {
		t.Fatal(err)
	}
	if len(achievements) != 1 || achievements[0].Name != "First Scan" {
		t.Fatalf("unexpected achievements: %+v", achievements)
	}

	other := uuid.New()
	achievements, err = repo.ListAchievements(context.Background(), &other)
	if err != nil {
		t.Fatal(err)
	}
	if len(achievements) != 0 {
		t.Fatalf("expected no achievements for other user, got %d", len(achievements))
	}
}
