package auth

import (
	"soilgate/internal/types"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJwt(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		Id:       "session-id",
		Issuer:   "soilgate/gateway",
		Secret:   "secret",
		Username: "iotlab",
	})
	require.NoError(t, err)

	claims, err := ValidateJwt("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "session-id", claims.ID)
	assert.Equal(t, "iotlab", claims.Username)
	assert.Nil(t, claims.ExpiresAt)
}

func TestValidateJwtRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{Id: "id", Secret: "secret", Username: "a"})
	require.NoError(t, err)
	_, err = ValidateJwt("other", token)
	assert.ErrorIs(t, err, types.ErrorJwtTokenSignature)
}

func TestValidateJwtRejectsTamperedPayload(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{Id: "id", Secret: "secret", Username: "a"})
	require.NoError(t, err)
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	otherToken, err := GenerateJwt(GenerateJwtOpts{Id: "id", Secret: "secret", Username: "project"})
	require.NoError(t, err)
	forged := parts[0] + "." + strings.Split(otherToken, ".")[1] + "." + parts[2]
	_, err = ValidateJwt("secret", forged)
	assert.Error(t, err)
}

func TestValidateJwtRejectsExpired(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{Id: "id", Secret: "secret", Username: "a", Ttl: time.Nanosecond})
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	_, err = ValidateJwt("secret", token)
	assert.ErrorIs(t, err, types.ErrorJwtTokenExpired)
}

func TestValidateJwtRejectsGarbage(t *testing.T) {
	_, err := ValidateJwt("secret", "not-a-token")
	assert.ErrorIs(t, err, types.ErrorJwtClaimsInvalid)
}

func TestGenerateJwtRequiresSecret(t *testing.T) {
	_, err := GenerateJwt(GenerateJwtOpts{Id: "id", Username: "a"})
	assert.Error(t, err)
}
