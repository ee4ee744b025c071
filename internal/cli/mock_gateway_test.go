package cli

import (
	"context"

	"taskdeck/internal/domain"
	"taskdeck/internal/errors"
	"taskdeck/internal/gateway"
)

// mockGateway implements gateway.TaskGateway for command handler tests.
// Each method delegates to an optional stub and records its invocation.
type mockGateway struct {
	fetchAllFn func(opts gateway.ListOptions) ([]domain.Task, error)
	createFn   func(in gateway.CreateTaskInput) (*domain.Task, error)
	updateFn   func(id string, in gateway.UpdateTaskInput) (*domain.Task, error)
	deleteFn   func(id string) error
	searchFn   func(query string, page, pageSize int) ([]domain.Task, error)

	fetchAllCalls []gateway.ListOptions
	createCalls   []gateway.CreateTaskInput
	updateCalls   []mockUpdateCall
	deleteCalls   []string
	searchCalls   []string
}

type mockUpdateCall struct {
	id string
	in gateway.UpdateTaskInput
}

func (m *mockGateway) FetchAll(ctx context.Context, opts gateway.ListOptions) ([]domain.Task, error) {
	m.fetchAllCalls = append(m.fetchAllCalls, opts)
	if m.fetchAllFn != nil {
		return m.fetchAllFn(opts)
	}
	return nil, nil
}

func (m *mockGateway) Create(ctx context.Context, in gateway.CreateTaskInput) (*domain.Task, error) {
	m.createCalls = append(m.createCalls, in)
	if m.createFn != nil {
		return m.createFn(in)
	}
	return nil, errors.NewRemoteError("create task", nil)
}

func (m *mockGateway) Update(ctx context.Context, id string, in gateway.UpdateTaskInput) (*domain.Task, error) {
	m.updateCalls = append(m.updateCalls, mockUpdateCall{id: id, in: in})
	if m.updateFn != nil {
		return m.updateFn(id, in)
	}
	return nil, errors.NewRemoteError("update task", nil)
}

func (m *mockGateway) Delete(ctx context.Context, id string) error {
	m.deleteCalls = append(m.deleteCalls, id)
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockGateway) Search(ctx context.Context, query string, page, pageSize int) ([]domain.Task, error) {
	m.searchCalls = append(m.searchCalls, query)
	if m.searchFn != nil {
		return m.searchFn(query, page, pageSize)
	}
	return nil, nil
}
