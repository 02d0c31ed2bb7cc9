package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/remib/phonestore/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := service.NewTokenService("test-secret", 10*time.Hour)

	userID := uuid.New()
	token, err := tokens.Issue(userID, "Alice Martin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "Alice Martin", identity.Name)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := service.NewTokenService("secret-one", 10*time.Hour)
	verifier := service.NewTokenService("secret-two", 10*time.Hour)

	token, err := issuer.Issue(uuid.New(), "Alice Martin")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	tokens := service.NewTokenService("test-secret", -time.Minute)

	token, err := tokens.Issue(uuid.New(), "Alice Martin")
	require.NoError(t, err)

	// Valid signature, elapsed expiry
	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	tokens := service.NewTokenService("test-secret", 10*time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "notavalidjwt"},
		{name: "wrong structure", token: "invalid.token.here"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(tt.token)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
		})
	}
}
