package model

import "time"

// User is the aggregate persisted as one document per account. All nested
// activity/meal/day data belongs exclusively to this user.
type User struct {
	UserID          string    `bson:"user_id" json:"user_id"`
	Name            string    `bson:"name" json:"name" validate:"required"`
	Email           string    `bson:"email" json:"email" validate:"required,email"`
	Password        string    `bson:"password" json:"-" validate:"required,min=6"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	LastLoginAt     time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
	LastLoginDevice string    `bson:"last_login_device,omitempty" json:"last_login_device,omitempty"`

	TwoFactorSecret  string   `bson:"two_factor_secret,omitempty" json:"-"`
	TwoFactorEnabled bool     `bson:"two_factor_enabled" json:"two_factor_enabled"`
	RecoveryCodes    []string `bson:"recovery_codes,omitempty" json:"-"`

	Activities   []Activity    `bson:"activities" json:"activities"`
	CurrentMeals MealSelection `bson:"current_meals" json:"current_meals"`
	CurrentStats DayStats      `bson:"current_stats" json:"current_stats"`
	DayRecords   []DayRecord   `bson:"day_records" json:"day_records"`
}

// Activity is one logged physical activity. Date is an opaque ISO
// yyyy-mm-dd string, compared by equality only.
type Activity struct {
	ActivityID      string `bson:"activity_id" json:"activity_id"`
	Date            string `bson:"date" json:"date"`
	Name            string `bson:"name" json:"name"`
	DurationMinutes int    `bson:"duration_minutes" json:"duration_minutes"`
	CaloriesBurned  int    `bson:"calories_burned" json:"calories_burned"`
}

// Meal is an immutable value; replacing a slot overwrites the whole meal.
type Meal struct {
	Name     string `bson:"name" json:"name" binding:"required"`
	Calories int    `bson:"calories" json:"calories" binding:"required"`
}

// Meal slot identifiers accepted by the meals endpoint.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
)

// MealSelection holds one optional meal per slot. A nil slot means no meal
// recorded.
type MealSelection struct {
	Breakfast *Meal `bson:"breakfast" json:"breakfast"`
	Lunch     *Meal `bson:"lunch" json:"lunch"`
	Dinner    *Meal `bson:"dinner" json:"dinner"`
}

// Get returns the meal in slot, or nil. Unknown slots read as empty.
func (m *MealSelection) Get(slot string) *Meal {
	switch slot {
	case SlotBreakfast:
		return m.Breakfast
	case SlotLunch:
		return m.Lunch
	case SlotDinner:
		return m.Dinner
	}
	return nil
}

// Set stores meal in slot. Returns false for an unknown slot.
func (m *MealSelection) Set(slot string, meal *Meal) bool {
	switch slot {
	case SlotBreakfast:
		m.Breakfast = meal
	case SlotLunch:
		m.Lunch = meal
	case SlotDinner:
		m.Dinner = meal
	default:
		return false
	}
	return true
}

// DayStats is the running aggregate for one date, maintained by delta
// application rather than recomputation.
type DayStats struct {
	CaloriesConsumed int `bson:"calories_consumed" json:"calories_consumed"`
	ActivityMinutes  int `bson:"activity_minutes" json:"activity_minutes"`
	CaloriesBurned   int `bson:"calories_burned" json:"calories_burned"`
}

// DayRecord is the bookkeeping unit for one calendar date. Records are
// created lazily on the first mutation touching a date and never deleted.
type DayRecord struct {
	Date  string        `bson:"date" json:"date"`
	Meals MealSelection `bson:"meals" json:"meals"`
	Stats DayStats      `bson:"stats" json:"stats"`
}
