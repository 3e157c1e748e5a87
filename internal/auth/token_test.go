package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResetToken_RoundTrip(t *testing.T) {
	token, err := GenerateResetToken("secret", 42, 10*time.Minute)
	require.NoError(t, err)

	userID, err := VerifyResetToken("secret", token)
	require.NoError(t, err)
	require.EqualValues(t, 42, userID)
}

func TestResetToken_Expired(t *testing.T) {
	token, err := GenerateResetToken("secret", 42, -time.Second)
	require.NoError(t, err)

	_, err = VerifyResetToken("secret", token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetToken_WrongSecret(t *testing.T) {
	token, err := GenerateResetToken("secret", 42, 10*time.Minute)
	require.NoError(t, err)

	_, err = VerifyResetToken("other-secret", token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetToken_Garbage(t *testing.T) {
	_, err := VerifyResetToken("secret", "definitely.not.ajwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
