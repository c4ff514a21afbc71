package auth

import (
	"context"
	"testing"
	"time"

	"tourism/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) TouchLastOnline(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type mockTokenIssuer struct{ mock.Mock }

func (m *mockTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	users := &mockUserRepo{}
	tokens := &mockTokenIssuer{}
	svc := NewService(users, tokens, nil)

	users.On("ExistsByEmail", mock.Anything, "dina@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "dina",
		Email:    "dina@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_CreatesClientAndIssuesToken(t *testing.T) {
	users := &mockUserRepo{}
	tokens := &mockTokenIssuer{}
	svc := NewService(users, tokens, nil)

	users.On("ExistsByEmail", mock.Anything, "dina@example.com").Return(false, nil)
	users.On("ExistsByUsername", mock.Anything, "dina").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			u.ID = 7
		}).
		Return(nil)
	tokens.On("GenerateToken", int64(7), "client").Return("token-7", nil)

	res, err := svc.Register(context.Background(), RegisterRequest{
		Username: "dina",
		Email:    "Dina@Example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-7", res.Token)
	assert.Equal(t, domain.RoleClient, res.User.Role)
	assert.Equal(t, "dina@example.com", res.User.Email)
	assert.NotEqual(t, "secret-password", res.User.PasswordHash)
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	users := &mockUserRepo{}
	tokens := &mockTokenIssuer{}
	svc := NewService(users, tokens, nil)

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByEmail", mock.Anything, "dina@example.com").Return(&domain.User{
		ID:           7,
		Email:        "dina@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}, nil)

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "dina@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailRejected(t *testing.T) {
	users := &mockUserRepo{}
	tokens := &mockTokenIssuer{}
	svc := NewService(users, tokens, nil)

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Succeeds(t *testing.T) {
	users := &mockUserRepo{}
	tokens := &mockTokenIssuer{}
	svc := NewService(users, tokens, nil)

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByEmail", mock.Anything, "dina@example.com").Return(&domain.User{
		ID:           7,
		Email:        "dina@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}, nil)
	users.On("TouchLastOnline", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).Return(nil)
	tokens.On("GenerateToken", int64(7), "client").Return("token-7", nil)

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "dina@example.com",
		Password: "right-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-7", res.Token)
}
