package security

import (
	"testing"

	"github.com/RoyceAzure/lab/sellnow/internal/infra/session"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")

	require.NoError(t, err)
	require.NotEqual(t, "secret123", hashed)
	require.True(t, CheckPassword("secret123", hashed))
	require.False(t, CheckPassword("wrongpass", hashed))
}

func TestHashPassword_DifferentSaltPerCall(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.True(t, CheckPassword("secret123", h1))
	require.True(t, CheckPassword("secret123", h2))
}

func TestCsrfToken_StablePerSession(t *testing.T) {
	sess := session.New()

	first, err := CsrfToken(sess)
	require.NoError(t, err)
	require.Len(t, first, 64) // 32 bytes hex

	second, err := CsrfToken(sess)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestValidateCsrf(t *testing.T) {
	sess := session.New()
	token, err := CsrfToken(sess)
	require.NoError(t, err)

	require.True(t, ValidateCsrf(sess, token))
	require.False(t, ValidateCsrf(sess, "forged-token"))
	require.False(t, ValidateCsrf(sess, ""))
}

func TestValidateCsrf_NoTokenIssued(t *testing.T) {
	sess := session.New()

	require.False(t, ValidateCsrf(sess, "anything"))
}
