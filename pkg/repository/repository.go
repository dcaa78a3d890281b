package repository

import (
	"context"
	"errors"

	"github.com/ciphersql/studio/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// ErrDuplicateEmail is returned by CreateUser when the email is taken.
var ErrDuplicateEmail = errors.New("email already exists")

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type AssignmentRepo interface {
	// ListAssignments returns the full catalog ordered by difficulty
	// ordinal, then title.
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	GetAssignment(ctx context.Context, id string) (*models.Assignment, error)
}

type AttemptRepo interface {
	CreateAttempt(ctx context.Context, a *models.Attempt) (int64, error)
	// ListAttemptsByEmail returns the user's full attempt history,
	// newest first.
	ListAttemptsByEmail(ctx context.Context, email string) ([]models.Attempt, error)
	// CountSolvedAssignments counts distinct assignment ids with at least
	// one successful attempt for the email.
	CountSolvedAssignments(ctx context.Context, email string) (int, error)
	// DailyActivity returns per-day attempt counts, ascending by date.
	DailyActivity(ctx context.Context, email string) ([]models.DayActivity, error)
}
