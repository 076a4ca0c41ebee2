package service

import (
	"context"

	"github.com/Manoj-Murari/task-analyzer/internal/advisor"
	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore mocks the store.TaskStore interface
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) ReplaceAll(ctx context.Context, tasks []domain.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

func (m *MockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

// mockAdvisor is a function-field implementation of advisor.Advisor
type mockAdvisor struct {
	AdviseFn func(ctx context.Context, tasks []domain.Task) advisor.Outcome
	calls    int
}

func (m *mockAdvisor) Advise(ctx context.Context, tasks []domain.Task) advisor.Outcome {
	m.calls++
	return m.AdviseFn(ctx, tasks)
}
