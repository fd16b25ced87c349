package auth

import (
	"testing"
	"time"

	"github.com/fekuna/estoque-api/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	return &model.User{BaseModel: model.BaseModel{ID: 42}, Nome: "Ana", Email: "ana@example.com"}
}

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager("s3cr3t", time.Hour)

	raw, err := tm.Issue(testUser())
	require.NoError(t, err)

	claims, err := tm.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Nome)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestVerifyRejectsExpired(t *testing.T) {
	tm := NewTokenManager("s3cr3t", time.Hour)
	issuedAt := time.Now().Add(-2 * time.Hour)
	tm.now = func() time.Time { return issuedAt }

	raw, err := tm.Issue(testUser())
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := NewTokenManager("one", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		ID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("s3cr3t"))
	require.NoError(t, err)

	_, err = NewTokenManager("s3cr3t", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRequiresExpiry(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: 1}).SignedString([]byte("s3cr3t"))
	require.NoError(t, err)

	_, err = NewTokenManager("s3cr3t", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
