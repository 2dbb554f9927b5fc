package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type repoMock struct {
	createFunc           func(ctx context.Context, user User) error
	getByEmailFunc       func(ctx context.Context, email string) (User, error)
	getActiveByEmailFunc func(ctx context.Context, email string) (User, error)
	getActiveByIDFunc    func(ctx context.Context, id uuid.UUID) (User, error)
}

func (m *repoMock) Create(ctx context.Context, user User) error {
	return m.createFunc(ctx, user)
}

func (m *repoMock) GetByEmail(ctx context.Context, email string) (User, error) {
	if m.getByEmailFunc == nil {
		return User{}, ErrNotFound
	}
	return m.getByEmailFunc(ctx, email)
}

func (m *repoMock) GetActiveByEmail(ctx context.Context, email string) (User, error) {
	return m.getActiveByEmailFunc(ctx, email)
}

func (m *repoMock) GetActiveByID(ctx context.Context, id uuid.UUID) (User, error) {
	return m.getActiveByIDFunc(ctx, id)
}

type tokenMock struct {
	generateFunc func(ctx context.Context, user User) (string, error)
}

func (m *tokenMock) Generate(ctx context.Context, user User) (string, error) {
	if m.generateFunc == nil {
		return "token-" + user.ID.String(), nil
	}
	return m.generateFunc(ctx, user)
}

func validSignUp() SignUpInput {
	return SignUpInput{
		Name:      "Ana",
		Email:     "Ana@Example.com",
		Password:  "pw",
		BirthDate: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		Phone:     "11999990000",
		CPF:       "11122233344",
		Sex:       "F",
	}
}

func TestSignUpMissingFields(t *testing.T) {
	svc := NewAuthService(&repoMock{}, &tokenMock{})

	for _, in := range []SignUpInput{
		{Email: "a@x.com", Password: "pw"},
		{Name: "A", Password: "pw"},
		{Name: "A", Email: "a@x.com"},
		{Name: "   ", Email: "a@x.com", Password: "pw"},
	} {
		_, err := svc.SignUp(context.Background(), in)
		require.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestSignUpSuccess(t *testing.T) {
	var created User
	repo := &repoMock{
		createFunc: func(_ context.Context, user User) error {
			created = user
			return nil
		},
	}
	svc := NewAuthService(repo, &tokenMock{})

	user, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	require.Equal(t, "Ana", user.Name)

	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, "ana@example.com", created.Email)
	require.Equal(t, DefaultTypeID, created.TypeID)
	require.True(t, created.Active)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw")))
	require.Error(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("other")))
}

func TestSignUpDuplicateEmailPreCheck(t *testing.T) {
	repo := &repoMock{
		getByEmailFunc: func(_ context.Context, _ string) (User, error) {
			return User{Email: "ana@example.com"}, nil
		},
		createFunc: func(_ context.Context, _ User) error {
			t.Fatal("create must not be reached when the pre-check finds a user")
			return nil
		},
	}
	svc := NewAuthService(repo, &tokenMock{})

	_, err := svc.SignUp(context.Background(), validSignUp())
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestSignUpDuplicateEmailConstraintRace(t *testing.T) {
	// Pre-check misses, the store's unique constraint still wins the race.
	repo := &repoMock{
		createFunc: func(_ context.Context, _ User) error {
			return ErrUserAlreadyExists
		},
	}
	svc := NewAuthService(repo, &tokenMock{})

	_, err := svc.SignUp(context.Background(), validSignUp())
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestSignInMissingFields(t *testing.T) {
	svc := NewAuthService(&repoMock{}, &tokenMock{})

	_, err := svc.SignIn(context.Background(), "", "pw")
	require.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.SignIn(context.Background(), "a@x.com", "")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestSignInNoActiveUser(t *testing.T) {
	repo := &repoMock{
		getActiveByEmailFunc: func(_ context.Context, _ string) (User, error) {
			return User{}, ErrNotFound
		},
	}
	svc := NewAuthService(repo, &tokenMock{})

	_, err := svc.SignIn(context.Background(), "a@x.com", "pw")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSignInWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &repoMock{
		getActiveByEmailFunc: func(_ context.Context, _ string) (User, error) {
			return User{ID: uuid.New(), PasswordHash: string(hash), Active: true}, nil
		},
	}
	svc := NewAuthService(repo, &tokenMock{})

	_, err = svc.SignIn(context.Background(), "a@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	require.NoError(t, err)
	userID := uuid.New()

	repo := &repoMock{
		getActiveByEmailFunc: func(_ context.Context, email string) (User, error) {
			require.Equal(t, "a@x.com", email)
			return User{ID: userID, Email: email, PasswordHash: string(hash), Active: true}, nil
		},
	}
	svc := NewAuthService(repo, &tokenMock{})

	result, err := svc.SignIn(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, userID, result.User.ID)
	require.Equal(t, "token-"+userID.String(), result.Token)
}

func TestSignInTokenGenerationFailure(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &repoMock{
		getActiveByEmailFunc: func(_ context.Context, _ string) (User, error) {
			return User{ID: uuid.New(), PasswordHash: string(hash), Active: true}, nil
		},
	}
	boom := errors.New("signing failed")
	tokens := &tokenMock{
		generateFunc: func(_ context.Context, _ User) (string, error) {
			return "", boom
		},
	}
	svc := NewAuthService(repo, tokens)

	_, err = svc.SignIn(context.Background(), "a@x.com", "pw")
	require.ErrorIs(t, err, boom)
}

func TestValidate(t *testing.T) {
	userID := uuid.New()
	repo := &repoMock{
		getActiveByIDFunc: func(_ context.Context, id uuid.UUID) (User, error) {
			if id == userID {
				return User{ID: id, Email: "a@x.com", Active: true}, nil
			}
			return User{}, ErrNotFound
		},
	}
	svc := NewAuthService(repo, &tokenMock{})

	user, err := svc.Validate(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", user.Email)

	_, err = svc.Validate(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
