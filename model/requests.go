package model

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

// LoginRequest is the login payload. TwoFactorCode is only consulted when
// the account has 2FA enabled.
type LoginRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	TwoFactorCode string `json:"two_factor_code"`
}

// ActivityRequest creates one activity. Duration and calories are required
// truthy values: an explicit zero is rejected by the required binding, which
// is the documented behavior for this API.
type ActivityRequest struct {
	Date            string `json:"date" binding:"required,dateformat"`
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	CaloriesBurned  int    `json:"calories_burned" binding:"required,min=1"`
}

// ActivityPatch updates an activity. Only fields present in the request
// body are applied.
type ActivityPatch struct {
	Date            *string `json:"date,omitempty" binding:"omitempty,dateformat"`
	Name            *string `json:"name,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" binding:"omitempty,min=0"`
	CaloriesBurned  *int    `json:"calories_burned,omitempty" binding:"omitempty,min=0"`
}

// MealRequest sets the meal for one slot of one date.
type MealRequest struct {
	Date string `json:"date" binding:"required,dateformat"`
	Slot string `json:"slot" binding:"required,oneof=breakfast lunch dinner"`
	Meal Meal   `json:"meal" binding:"required"`
}

// UserUpdateRequest is the legacy bulk update: each field replaces the
// stored value when present.
type UserUpdateRequest struct {
	Activities   []Activity     `json:"activities,omitempty"`
	CurrentMeals *MealSelection `json:"current_meals,omitempty"`
	CurrentStats *DayStats      `json:"current_stats,omitempty"`
	DayRecords   []DayRecord    `json:"day_records,omitempty"`
}
