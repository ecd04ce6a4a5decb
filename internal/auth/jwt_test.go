package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawqimpact/fundraising-api/internal/models"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("secret", "fundraising-api", 60)
	user := &models.User{ID: 42, Role: models.RoleAccountant}

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, models.RoleAccountant, claims.Role)
	assert.Equal(t, "fundraising-api", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret", "fundraising-api", 60)
	token, err := issuer.Issue(&models.User{ID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)

	other := NewTokenIssuer("different-secret", "fundraising-api", 60)
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_ExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("secret", "fundraising-api", -1)
	token, err := issuer.Issue(&models.User{ID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("secret", "fundraising-api", 60)
	_, err := issuer.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssue_EmptySecret(t *testing.T) {
	issuer := NewTokenIssuer("", "fundraising-api", 60)
	_, err := issuer.Issue(&models.User{ID: 1, Role: models.RoleAdmin})
	assert.Error(t, err)
}
