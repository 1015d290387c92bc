package goals

import (
	"time"

	"github.com/google/uuid"
)

// UserGoal mirrors one row of the user_goals table.
type UserGoal struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id"`
	WeeklyGoal  float64    `json:"weekly_goal"`
	MonthlyGoal float64    `json:"monthly_goal"`
	YearlyGoal  float64    `json:"yearly_goal"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserGoalUpsert carries the optional goal fields for insert and update;
// absent fields keep their current (or default) value.
type UserGoalUpsert struct {
	UserID      *uuid.UUID `json:"user_id"`
	WeeklyGoal  *float64   `json:"weekly_goal"`
	MonthlyGoal *float64   `json:"monthly_goal"`
	YearlyGoal  *float64   `json:"yearly_goal"`
}
