package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", 60)
	verifier := NewJWTService("secret-b", 60)

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_TamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, err := svc.Issue(7)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = svc.Verify(tampered)
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	// Negative lifetime is normalized to the default by the constructor, so
	// build the service directly to get an already-expired token.
	svc := &JWTService{secret: []byte("test-secret"), expMinutes: -5}

	token, err := svc.Issue(3)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestClaims_UserID_InvalidSubject(t *testing.T) {
	for _, subject := range []string{"", "abc", "-1", "0"} {
		claims := &Claims{}
		claims.Subject = subject
		_, err := claims.UserID()
		assert.Error(t, err, "subject %q", subject)
	}
}

func TestNewJWTService_DefaultsExpiry(t *testing.T) {
	svc := NewJWTService("s", 0)
	assert.Equal(t, 60, svc.ExpMinutes())
}
