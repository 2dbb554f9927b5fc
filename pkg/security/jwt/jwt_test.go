package jwt

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fada-app/fada-auth/pkg/auth"
)

func TestGenerateAndVerify(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "fada-auth", time.Hour)
	user := auth.User{ID: uuid.New()}

	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	subject, err := gen.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, user.ID.String(), subject)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "fada-auth", -time.Second)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = gen.Verify(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTampered(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "fada-auth", time.Hour)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	// Corrupt the signature segment.
	flip := byte('A')
	if token[len(token)-1] == flip {
		flip = 'B'
	}
	tampered := token[:len(token)-1] + string(flip)

	_, err = gen.Verify(context.Background(), tampered)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Corrupt the payload segment; the signature no longer matches.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == flip {
		payload[0] = 'B'
	} else {
		payload[0] = flip
	}
	tampered = parts[0] + "." + string(payload) + "." + parts[2]

	_, err = gen.Verify(context.Background(), tampered)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("secret-one", "fada-auth", time.Hour)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	other := NewGenerator("secret-two", "fada-auth", time.Hour)
	_, err = other.Verify(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyIssuerMismatch(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "other-service", time.Hour)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	verifier := NewGenerator("super-secret", "fada-auth", time.Hour)
	_, err = verifier.Verify(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("super-secret", "fada-auth", time.Hour)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := gen.Verify(context.Background(), tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}
