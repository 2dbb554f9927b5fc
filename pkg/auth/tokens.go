package auth

import "context"

// TokenGenerator abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}

// TokenVerifier checks a presented token and resolves its subject,
// the stable user identifier the token was issued for.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (subject string, err error)
}
