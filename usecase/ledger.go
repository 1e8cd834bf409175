package usecase

import (
	"errors"

	"main/model"
	"main/utils"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrMissingFields    = errors.New("all activity fields are required")
	ErrInvalidMealSlot  = errors.New("invalid meal slot")
	ErrNegativeValue    = errors.New("duration and calories cannot be negative")
)

// GetOrCreateDay returns the DayRecord for date, creating and appending an
// empty one when the date has never been touched. At most one record exists
// per date; calling this twice for the same date always yields the same
// record. No aggregate side effects.
func GetOrCreateDay(user *model.User, date string) *model.DayRecord {
	for i := range user.DayRecords {
		if user.DayRecords[i].Date == date {
			return &user.DayRecords[i]
		}
	}
	user.DayRecords = append(user.DayRecords, model.DayRecord{Date: date})
	return &user.DayRecords[len(user.DayRecords)-1]
}

// AddActivity appends a new activity and adds its duration and calories to
// that date's stats. Zero duration or calories is rejected, matching the
// required-field policy of the create endpoint. Dates are opaque strings;
// past or future dates are not an error.
func AddActivity(user *model.User, date, name string, durationMinutes, caloriesBurned int) (*model.Activity, error) {
	if date == "" || name == "" || durationMinutes <= 0 || caloriesBurned <= 0 {
		return nil, ErrMissingFields
	}

	activity := model.Activity{
		ActivityID:      utils.GenerateActivityID(),
		Date:            date,
		Name:            name,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  caloriesBurned,
	}
	user.Activities = append(user.Activities, activity)

	day := GetOrCreateDay(user, date)
	day.Stats.ActivityMinutes += durationMinutes
	day.Stats.CaloriesBurned += caloriesBurned

	return &user.Activities[len(user.Activities)-1], nil
}

// EditActivity applies patch to an existing activity. The old contribution
// is subtracted from the activity's current day before the patch is applied,
// and the new contribution added to the (possibly different) day after.
// Running both phases even when the date is unchanged nets out to zero and
// is what moves stats correctly when an edit changes the date.
func EditActivity(user *model.User, activityID string, patch model.ActivityPatch) (*model.Activity, error) {
	idx := findActivity(user, activityID)
	if idx < 0 {
		return nil, ErrActivityNotFound
	}
	if (patch.DurationMinutes != nil && *patch.DurationMinutes < 0) ||
		(patch.CaloriesBurned != nil && *patch.CaloriesBurned < 0) {
		return nil, ErrNegativeValue
	}

	activity := &user.Activities[idx]

	oldDay := GetOrCreateDay(user, activity.Date)
	oldDay.Stats.ActivityMinutes -= activity.DurationMinutes
	oldDay.Stats.CaloriesBurned -= activity.CaloriesBurned

	if patch.Date != nil {
		activity.Date = *patch.Date
	}
	if patch.Name != nil {
		activity.Name = *patch.Name
	}
	if patch.DurationMinutes != nil {
		activity.DurationMinutes = *patch.DurationMinutes
	}
	if patch.CaloriesBurned != nil {
		activity.CaloriesBurned = *patch.CaloriesBurned
	}

	newDay := GetOrCreateDay(user, activity.Date)
	newDay.Stats.ActivityMinutes += activity.DurationMinutes
	newDay.Stats.CaloriesBurned += activity.CaloriesBurned

	return activity, nil
}

// DeleteActivity subtracts the activity's contribution from its day and
// removes it from the user's activity list. The DayRecord itself stays;
// day history is append-only.
func DeleteActivity(user *model.User, activityID string) error {
	idx := findActivity(user, activityID)
	if idx < 0 {
		return ErrActivityNotFound
	}

	activity := user.Activities[idx]
	day := GetOrCreateDay(user, activity.Date)
	day.Stats.ActivityMinutes -= activity.DurationMinutes
	day.Stats.CaloriesBurned -= activity.CaloriesBurned

	user.Activities = append(user.Activities[:idx], user.Activities[idx+1:]...)
	return nil
}

// SetMeal overwrites one meal slot of one date and adjusts that day's
// consumed calories by the delta against whatever was in the slot before.
// The user's current meal selection mirrors the write unconditionally, even
// when date is not today; it is a convenience field, not a guarantee.
func SetMeal(user *model.User, date, slot string, meal model.Meal) error {
	if date == "" || meal.Name == "" {
		return ErrMissingFields
	}
	switch slot {
	case model.SlotBreakfast, model.SlotLunch, model.SlotDinner:
	default:
		return ErrInvalidMealSlot
	}

	day := GetOrCreateDay(user, date)

	delta := meal.Calories
	if existing := day.Meals.Get(slot); existing != nil {
		delta -= existing.Calories
	}

	stored := meal
	day.Meals.Set(slot, &stored)
	day.Stats.CaloriesConsumed += delta

	mirrored := meal
	user.CurrentMeals.Set(slot, &mirrored)
	return nil
}

// DayHistory is the read model for one date.
type DayHistory struct {
	Date       string              `json:"date"`
	Activities []model.Activity    `json:"activities"`
	Meals      model.MealSelection `json:"meals"`
	Stats      model.DayStats      `json:"stats"`
}

// HistoryForDate returns the activities, meals and stats recorded for date.
// A date that was never touched yields an empty history; no DayRecord is
// created or stored.
func HistoryForDate(user *model.User, date string) DayHistory {
	history := DayHistory{
		Date:       date,
		Activities: []model.Activity{},
	}
	for _, activity := range user.Activities {
		if activity.Date == date {
			history.Activities = append(history.Activities, activity)
		}
	}
	for i := range user.DayRecords {
		if user.DayRecords[i].Date == date {
			history.Meals = user.DayRecords[i].Meals
			history.Stats = user.DayRecords[i].Stats
			break
		}
	}
	return history
}

func findActivity(user *model.User, activityID string) int {
	for i := range user.Activities {
		if user.Activities[i].ActivityID == activityID {
			return i
		}
	}
	return -1
}
