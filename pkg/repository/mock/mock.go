package mock

import (
	"context"

	"github.com/ciphersql/studio/pkg/models"
	"github.com/ciphersql/studio/pkg/repository"
)

// Test helpers and mocks
type Mocks struct {
	UserRepo       *MockUserRepo
	AssignmentRepo *MockAssignmentRepo
	AttemptRepo    *MockAttemptRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		UserRepo:       &MockUserRepo{},
		AssignmentRepo: &MockAssignmentRepo{},
		AttemptRepo:    &MockAttemptRepo{},
	}
}

type MockUserRepo struct {
	Stored    *models.User
	CreateErr error
}

func (m *MockUserRepo) CreateUser(ctx context.Context, u *models.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.Stored != nil && m.Stored.Email == u.Email {
		return repository.ErrDuplicateEmail
	}
	cp := *u
	m.Stored = &cp
	return nil
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

type MockAssignmentRepo struct {
	Assignments []models.Assignment
	ListErr     error
}

func (m *MockAssignmentRepo) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Assignments, nil
}

func (m *MockAssignmentRepo) GetAssignment(ctx context.Context, id string) (*models.Assignment, error) {
	for i := range m.Assignments {
		if m.Assignments[i].ID == id {
			return &m.Assignments[i], nil
		}
	}
	return nil, nil
}

type MockAttemptRepo struct {
	Attempts  []models.Attempt
	CreateErr error
	Solved    int
	Days      []models.DayActivity
}

func (m *MockAttemptRepo) CreateAttempt(ctx context.Context, a *models.Attempt) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	cp := *a
	cp.ID = int64(len(m.Attempts) + 1)
	m.Attempts = append(m.Attempts, cp)
	return cp.ID, nil
}

func (m *MockAttemptRepo) ListAttemptsByEmail(ctx context.Context, email string) ([]models.Attempt, error) {
	var out []models.Attempt
	for i := len(m.Attempts) - 1; i >= 0; i-- {
		if m.Attempts[i].UserEmail == email {
			out = append(out, m.Attempts[i])
		}
	}
	return out, nil
}

func (m *MockAttemptRepo) CountSolvedAssignments(ctx context.Context, email string) (int, error) {
	return m.Solved, nil
}

func (m *MockAttemptRepo) DailyActivity(ctx context.Context, email string) ([]models.DayActivity, error) {
	return m.Days, nil
}
