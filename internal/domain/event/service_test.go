package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, e Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CutoffTimestamp(ctx context.Context, keep int64) (int64, bool, error) {
	args := m.Called(ctx, keep)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockRepository) DeleteOlderThan(ctx context.Context, cutoff int64) error {
	args := m.Called(ctx, cutoff)
	return args.Error(0)
}

func (m *MockRepository) ListRecent(ctx context.Context, limit int64) ([]Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

func (m *MockRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestService(repo *MockRepository) *Service {
	svc := NewService(repo, slog.Default())
	svc.now = func() int64 { return 1700000000000 }
	return svc
}

func TestService_Record_UnderLimit(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	// Временная метка проставляется сервисом
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(e Event) bool {
		return e.Type == TypeLogin && e.Timestamp == 1700000000000
	})).Return(nil)
	repo.On("Count", mock.Anything).Return(int64(42), nil)

	err := svc.Record(context.Background(), Event{Type: TypeLogin, Owner: "alice"})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "CutoffTimestamp", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteOlderThan", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestService_Record_TrimsOverflow(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	repo.On("Count", mock.Anything).Return(int64(RetentionLimit+50), nil)
	repo.On("CutoffTimestamp", mock.Anything, int64(RetentionLimit)).Return(int64(1699990000000), true, nil)
	repo.On("DeleteOlderThan", mock.Anything, int64(1699990000000)).Return(nil)

	err := svc.Record(context.Background(), Event{Type: TypeCreate, Owner: "alice"})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Record_InsertError(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	insertErr := errors.New("connection refused")
	repo.On("Insert", mock.Anything, mock.Anything).Return(insertErr)

	err := svc.Record(context.Background(), Event{Type: TypeDelete})

	assert.ErrorIs(t, err, insertErr)
	repo.AssertNotCalled(t, "Count", mock.Anything)
}

func TestService_ListRecent_DefaultLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int64
		wantLimit int64
	}{
		{name: "explicit limit", limit: 25, wantLimit: 25},
		{name: "zero limit falls back", limit: 0, wantLimit: DefaultListLimit},
		{name: "negative limit falls back", limit: -5, wantLimit: DefaultListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo)

			repo.On("ListRecent", mock.Anything, tt.wantLimit).Return([]Event{{Type: TypeSeed}}, nil)

			events, err := svc.ListRecent(context.Background(), tt.limit)

			assert.NoError(t, err)
			assert.Len(t, events, 1)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_ClearAll(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("DeleteAll", mock.Anything).Return(nil)

	assert.NoError(t, svc.ClearAll(context.Background()))
	repo.AssertExpectations(t)
}
