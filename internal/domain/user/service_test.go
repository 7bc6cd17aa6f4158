package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"jobtracker/internal/domain/event"
)

const testPepper = "test-pepper"

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) FindByName(ctx context.Context, name string) (User, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByToken(ctx context.Context, token string) (User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) SetLocation(ctx context.Context, name, location string) error {
	args := m.Called(ctx, name, location)
	return args.Error(0)
}

func (m *MockRepository) SetPIN(ctx context.Context, name, pinHash string) error {
	args := m.Called(ctx, name, pinHash)
	return args.Error(0)
}

func (m *MockRepository) IssueToken(ctx context.Context, name, token string, now int64, location string) (User, error) {
	args := m.Called(ctx, name, token, now, location)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) TouchLastSeen(ctx context.Context, name string, now int64) error {
	args := m.Called(ctx, name, now)
	return args.Error(0)
}

func (m *MockRepository) DeleteCascade(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, e event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRecorder) ListRecent(ctx context.Context, limit int64) ([]event.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]event.Event), args.Error(1)
}

func (m *MockRecorder) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) CountGrouped(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func newTestService(repo *MockRepository, counts *MockCounter, events *MockRecorder) *Service {
	svc := NewService(repo, counts, events, testPepper, slog.Default())
	svc.now = func() int64 { return 1700000000000 }
	return svc
}

func hashFor(t *testing.T, pin string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPepper+pin), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Login_Success(t *testing.T) {
	repo := new(MockRepository)
	events := new(MockRecorder)
	svc := newTestService(repo, new(MockCounter), events)

	stored := User{Name: "alice", PINHash: hashFor(t, "1234")}
	issued := User{Name: "alice", Token: "issued-token", Location: "Berlin"}

	repo.On("FindByName", mock.Anything, "alice").Return(stored, nil)
	repo.On("IssueToken", mock.Anything, "alice", mock.MatchedBy(func(token string) bool {
		return len(token) == tokenBytes*2
	}), int64(1700000000000), "Berlin").Return(issued, nil)
	events.On("Record", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		return e.Type == event.TypeLogin && e.Owner == "alice" && e.IP == "10.0.0.1"
	})).Return(nil)

	u, err := svc.Login(context.Background(), "alice", "1234", "Berlin", "10.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "issued-token", u.Token)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestService_Login_Failures(t *testing.T) {
	tests := []struct {
		name    string
		stored  User
		findErr error
		pin     string
		wantErr error
	}{
		{
			name:    "unknown user",
			findErr: ErrNotFound,
			pin:     "1234",
			wantErr: ErrNotFound,
		},
		{
			name:    "no pin configured",
			stored:  User{Name: "alice"},
			pin:     "1234",
			wantErr: ErrNotConfigured,
		},
		{
			name:    "wrong pin",
			stored:  User{Name: "alice", PINHash: "$2a$04$invalidhash"},
			pin:     "0000",
			wantErr: ErrInvalidAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			events := new(MockRecorder)
			svc := newTestService(repo, new(MockCounter), events)

			repo.On("FindByName", mock.Anything, "alice").Return(tt.stored, tt.findErr)

			_, err := svc.Login(context.Background(), "alice", tt.pin, "", "")

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "IssueToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			events.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	t.Run("blank token", func(t *testing.T) {
		svc := newTestService(new(MockRepository), new(MockCounter), new(MockRecorder))

		_, err := svc.Authenticate(context.Background(), "   ")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown token", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockCounter), new(MockRecorder))

		repo.On("FindByToken", mock.Anything, "deadbeef").Return(User{}, ErrNotFound)

		_, err := svc.Authenticate(context.Background(), "deadbeef")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("success touches last seen", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockCounter), new(MockRecorder))

		repo.On("FindByToken", mock.Anything, "token-1").Return(User{Name: "alice"}, nil)
		repo.On("TouchLastSeen", mock.Anything, "alice", int64(1700000000000)).Return(nil)

		u, err := svc.Authenticate(context.Background(), " token-1 ")

		require.NoError(t, err)
		require.NotNil(t, u.LastSeen)
		assert.Equal(t, int64(1700000000000), *u.LastSeen)
		repo.AssertExpectations(t)
	})

	t.Run("touch failure does not fail auth", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockCounter), new(MockRecorder))

		repo.On("FindByToken", mock.Anything, "token-1").Return(User{Name: "alice"}, nil)
		repo.On("TouchLastSeen", mock.Anything, "alice", mock.Anything).Return(errors.New("timeout"))

		u, err := svc.Authenticate(context.Background(), "token-1")

		require.NoError(t, err)
		assert.Equal(t, "alice", u.Name)
		assert.Nil(t, u.LastSeen)
	})
}

func TestService_Set_CreateRequiresPin(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockCounter), new(MockRecorder))

	repo.On("FindByName", mock.Anything, "bob").Return(User{}, ErrNotFound)

	_, err := svc.Set(context.Background(), "bob", "", "", "")

	assert.ErrorIs(t, err, ErrPinRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Set_Create(t *testing.T) {
	repo := new(MockRepository)
	events := new(MockRecorder)
	svc := newTestService(repo, new(MockCounter), events)

	repo.On("FindByName", mock.Anything, "bob").Return(User{}, ErrNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u User) bool {
		return u.Name == "bob" && u.Location == "Prague" &&
			u.CreatedAt == 1700000000000 &&
			bcrypt.CompareHashAndPassword([]byte(u.PINHash), []byte(testPepper+"4321")) == nil
	})).Return(nil)
	events.On("Record", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		return e.Type == event.TypeAdminUserCreate && e.Owner == "bob"
	})).Return(nil)

	u, err := svc.Set(context.Background(), "bob", "Prague", "4321", "")

	require.NoError(t, err)
	assert.Equal(t, "bob", u.Name)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestService_Set_UpdateResetsPin(t *testing.T) {
	repo := new(MockRepository)
	events := new(MockRecorder)
	svc := newTestService(repo, new(MockCounter), events)

	existing := User{Name: "bob", PINHash: "old-hash", Token: "old-token"}
	reloaded := User{Name: "bob", PINHash: "new-hash"}

	repo.On("FindByName", mock.Anything, "bob").Return(existing, nil).Once()
	repo.On("SetPIN", mock.Anything, "bob", mock.AnythingOfType("string")).Return(nil)
	repo.On("FindByName", mock.Anything, "bob").Return(reloaded, nil).Once()
	events.On("Record", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		return e.Type == event.TypeAdminUserUpdate && e.Owner == "bob"
	})).Return(nil)

	u, err := svc.Set(context.Background(), "bob", "", "9999", "")

	require.NoError(t, err)
	assert.Empty(t, u.Token)
	repo.AssertNotCalled(t, "SetLocation", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockCounter), new(MockRecorder))

		repo.On("DeleteCascade", mock.Anything, "ghost").Return(ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), "ghost", ""), ErrNotFound)
	})

	t.Run("success records event", func(t *testing.T) {
		repo := new(MockRepository)
		events := new(MockRecorder)
		svc := newTestService(repo, new(MockCounter), events)

		repo.On("DeleteCascade", mock.Anything, "bob").Return(nil)
		events.On("Record", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
			return e.Type == event.TypeAdminUserDelete && e.Owner == "bob"
		})).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "bob", ""))
		events.AssertExpectations(t)
	})
}

func TestService_Overview(t *testing.T) {
	repo := new(MockRepository)
	counts := new(MockCounter)
	svc := newTestService(repo, counts, new(MockRecorder))

	counts.On("CountGrouped", mock.Anything).Return(map[string]int64{
		"alice": 3,
		"bob":   1,
		"":      2,
	}, nil)
	repo.On("List", mock.Anything).Return([]User{
		{Name: "alice", PINHash: "hash"},
		{Name: "bob"},
	}, nil)

	overview, err := svc.Overview(context.Background())

	require.NoError(t, err)
	require.Len(t, overview.Users, 2)
	assert.Equal(t, int64(3), overview.Users[0].TotalApplications)
	assert.True(t, overview.Users[0].PinSet)
	assert.False(t, overview.Users[1].PinSet)
	assert.Equal(t, int64(2), overview.UnassignedApplications)
	assert.Equal(t, int64(6), overview.TotalApplications)
}
