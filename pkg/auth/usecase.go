package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt work factor is fixed; changing it only affects newly stored hashes.
const hashCost = 10

// SignUpInput carries the registration payload into the domain layer.
type SignUpInput struct {
	Name      string
	Email     string
	Password  string
	BirthDate time.Time
	Phone     string
	CPF       string
	Sex       string
}

// AuthResult pairs an authenticated user with their freshly issued token.
type AuthResult struct {
	User  User
	Token string
}

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	SignUp(ctx context.Context, in SignUpInput) (User, error)
	SignIn(ctx context.Context, email, password string) (AuthResult, error)
	Validate(ctx context.Context, userID uuid.UUID) (User, error)
}

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) SignUp(ctx context.Context, in SignUpInput) (User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return User{}, ErrMissingFields
	}

	// Fast-path existence check; the unique constraint in the store is the
	// actual correctness guarantee under concurrent signups.
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return User{}, ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), hashCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(passwordHash),
		BirthDate:    in.BirthDate,
		Phone:        in.Phone,
		CPF:          in.CPF,
		Sex:          in.Sex,
		TypeID:       DefaultTypeID,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (AuthResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return AuthResult{}, ErrMissingFields
	}

	user, err := s.repo.GetActiveByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

// Validate re-reads the account so staleness after token issuance
// (deactivation, deletion) is caught here rather than in the guard.
func (s *authService) Validate(ctx context.Context, userID uuid.UUID) (User, error) {
	return s.repo.GetActiveByID(ctx, userID)
}
