package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/services"
	"main/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the persistence contract the services need. Lookups return
// (nil, nil) when no document matches. Replace writes the full user
// document back (read-modify-write, last write wins).
type UserStore interface {
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Replace(ctx context.Context, user *model.User) error
}

type UserService struct {
	Users UserStore
}

// Register creates a new account with an empty ledger. The stored password
// is an argon2id hash; duplicate emails are rejected.
func (svc *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	existing, err := svc.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:     utils.GenerateUserID(),
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashed,
		CreatedAt:  time.Now(),
		Activities: []model.Activity{},
		DayRecords: []model.DayRecord{},
	}

	if err := svc.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	utils.TrackRegistration()
	return user, nil
}

// Authenticate verifies email and password and returns the matching user.
// The same error comes back for an unknown email and a wrong password.
func (svc *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := svc.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Get loads one user by ID.
func (svc *UserService) Get(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ApplyUpdate is the legacy bulk update: each present field replaces the
// stored value wholesale, aggregates included. Callers that want consistent
// stats should use the activity and meal endpoints instead.
func (svc *UserService) ApplyUpdate(ctx context.Context, userID string, req model.UserUpdateRequest) (*model.User, error) {
	user, err := svc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Activities != nil {
		user.Activities = req.Activities
	}
	if req.CurrentMeals != nil {
		user.CurrentMeals = *req.CurrentMeals
	}
	if req.CurrentStats != nil {
		user.CurrentStats = *req.CurrentStats
	}
	if req.DayRecords != nil {
		user.DayRecords = req.DayRecords
	}

	if err := svc.Users.Replace(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
