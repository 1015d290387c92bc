package carbon

import (
	"time"

	"github.com/google/uuid"
)

// CarbonCategory mirrors one row of the carbon_categories table.
// CO2PerEuro is the estimation factor: kg CO2e per currency unit spent.
type CarbonCategory struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	CO2PerEuro  float64 `json:"co2_per_euro"`
	Description string  `json:"description"`
}

// Achievement mirrors one row of the achievements table.
type Achievement struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	EarnedAt    time.Time  `json:"earned_at"`
}

type AchievementInsert struct {
	UserID      *uuid.UUID `json:"user_id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
}

// DefaultCategories seeds carbon_categories. Factors are rough
// spend-based averages; "other" is the catch-all for unclassified items.
var DefaultCategories = []CarbonCategory{
	{Name: "food", CO2PerEuro: 0.6, Description: "Groceries and prepared food"},
	{Name: "household", CO2PerEuro: 0.4, Description: "Cleaning, supplies, furniture"},
	{Name: "electronics", CO2PerEuro: 0.9, Description: "Devices and appliances"},
	{Name: "clothing", CO2PerEuro: 0.7, Description: "Apparel and footwear"},
	{Name: "other", CO2PerEuro: 0.5, Description: "Everything else"},
}

// Factors maps category name to its CO2-per-euro factor.
type Factors map[string]float64

func (f Factors) Estimate(category string, price float64) float64 {
	factor, ok := f[category]
	if !ok {
		factor = f["other"]
	}
	return price * factor
}

func FactorsFrom(categories []CarbonCategory) Factors {
	f := make(Factors, len(categories))
	for _, c := range categories {
		f[c.Name] = c.CO2PerEuro
	}
	return f
}
