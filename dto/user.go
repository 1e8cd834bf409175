package dto

import (
	"time"

	"main/model"
)

// UserResponse is the wire shape for a user. The credential secret and 2FA
// material never leave the server; this is the only user shape handlers
// return.
type UserResponse struct {
	UserID           string              `json:"user_id"`
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	CreatedAt        time.Time           `json:"created_at"`
	TwoFactorEnabled bool                `json:"two_factor_enabled"`
	Activities       []model.Activity    `json:"activities"`
	CurrentMeals     model.MealSelection `json:"current_meals"`
	CurrentStats     model.DayStats      `json:"current_stats"`
	DayRecords       []model.DayRecord   `json:"day_records"`
}

func ToUserResponse(user *model.User) UserResponse {
	activities := user.Activities
	if activities == nil {
		activities = []model.Activity{}
	}
	dayRecords := user.DayRecords
	if dayRecords == nil {
		dayRecords = []model.DayRecord{}
	}
	return UserResponse{
		UserID:           user.UserID,
		Name:             user.Name,
		Email:            user.Email,
		CreatedAt:        user.CreatedAt,
		TwoFactorEnabled: user.TwoFactorEnabled,
		Activities:       activities,
		CurrentMeals:     user.CurrentMeals,
		CurrentStats:     user.CurrentStats,
		DayRecords:       dayRecords,
	}
}
