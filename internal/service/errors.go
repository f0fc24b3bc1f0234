package service

import "errors"

// Business-rule failures. Handlers map these to 404/403; anything else is a
// store failure and surfaces as a generic 500.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrNotEnoughEnergy     = errors.New("not enough energy")
	ErrInsufficientBalance = errors.New("not enough balance")
	ErrBoosterMaxLevel     = errors.New("max level reached")
	ErrDailyTooSoon        = errors.New("daily bonus already claimed")
	ErrTaskAlreadyClaimed  = errors.New("task already claimed")
	ErrTasksAlreadySeeded  = errors.New("tasks already exist")
	ErrInvalidLevel        = errors.New("invalid level")
	ErrUnknownBooster      = errors.New("unknown booster")
)
