package usecase

import (
	"context"

	"main/model"
	"main/utils"
)

// LedgerService wraps the pure ledger functions with the load/mutate/save
// cycle against the user store. Every mutation replaces the full user
// document; ownership has already been enforced by the caller.
type LedgerService struct {
	Users UserStore
}

func (svc *LedgerService) load(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// AddActivity logs a new activity for the user and persists the updated
// document.
func (svc *LedgerService) AddActivity(ctx context.Context, userID string, req model.ActivityRequest) (*model.User, error) {
	user, err := svc.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := AddActivity(user, req.Date, req.Name, req.DurationMinutes, req.CaloriesBurned); err != nil {
		return nil, err
	}

	if err := svc.Users.Replace(ctx, user); err != nil {
		return nil, err
	}
	utils.TrackLedgerOperation("add_activity")
	return user, nil
}

// EditActivity patches an existing activity and persists the updated
// document.
func (svc *LedgerService) EditActivity(ctx context.Context, userID, activityID string, patch model.ActivityPatch) (*model.User, error) {
	user, err := svc.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := EditActivity(user, activityID, patch); err != nil {
		return nil, err
	}

	if err := svc.Users.Replace(ctx, user); err != nil {
		return nil, err
	}
	utils.TrackLedgerOperation("edit_activity")
	return user, nil
}

// DeleteActivity removes an activity and persists the updated document.
func (svc *LedgerService) DeleteActivity(ctx context.Context, userID, activityID string) (*model.User, error) {
	user, err := svc.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := DeleteActivity(user, activityID); err != nil {
		return nil, err
	}

	if err := svc.Users.Replace(ctx, user); err != nil {
		return nil, err
	}
	utils.TrackLedgerOperation("delete_activity")
	return user, nil
}

// SetMeal sets one meal slot for one date and persists the updated
// document.
func (svc *LedgerService) SetMeal(ctx context.Context, userID string, req model.MealRequest) (*model.User, error) {
	user, err := svc.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := SetMeal(user, req.Date, req.Slot, req.Meal); err != nil {
		return nil, err
	}

	if err := svc.Users.Replace(ctx, user); err != nil {
		return nil, err
	}
	utils.TrackLedgerOperation("set_meal")
	return user, nil
}

// History returns the read-only view for one date. Stored state is never
// mutated, so nothing is written back.
func (svc *LedgerService) History(ctx context.Context, userID, date string) (DayHistory, error) {
	user, err := svc.load(ctx, userID)
	if err != nil {
		return DayHistory{}, err
	}
	return HistoryForDate(user, date), nil
}
