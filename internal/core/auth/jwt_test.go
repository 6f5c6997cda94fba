package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balloondhq/balloond-website/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "u1",
		Email: "editor@balloond.com",
		Name:  "Edie",
		Role:  domain.RoleEditor,
	}
}

func TestIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "balloond", TTL: 24 * time.Hour}

	tok, err := j.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UID)
	assert.Equal(t, "editor@balloond.com", claims.Email)
	assert.Equal(t, "Edie", claims.Name)
	assert.Equal(t, domain.RoleEditor, claims.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseWrongSecret(t *testing.T) {
	good := &JWTer{Secret: []byte("right"), Issuer: "balloond", TTL: time.Hour}
	bad := &JWTer{Secret: []byte("wrong"), Issuer: "balloond", TTL: time.Hour}

	tok, err := good.Issue(testUser())
	require.NoError(t, err)

	_, err = bad.Parse(tok)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	// TTL well past the 60s parse leeway.
	j := &JWTer{Secret: []byte("s"), Issuer: "balloond", TTL: -2 * time.Hour}

	tok, err := j.Issue(testUser())
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParseWrongIssuer(t *testing.T) {
	a := &JWTer{Secret: []byte("s"), Issuer: "someone-else", TTL: time.Hour}
	b := &JWTer{Secret: []byte("s"), Issuer: "balloond", TTL: time.Hour}

	tok, err := a.Issue(testUser())
	require.NoError(t, err)

	_, err = b.Parse(tok)
	assert.Error(t, err)
}
