package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errorvalues "github.com/limbo/eventtracker/internal/error_values"
	jwtservice "github.com/limbo/eventtracker/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := jwtservice.New("secret", time.Hour)
	token, err := s.GenerateToken("alice")
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	_, err = s.GenerateToken("")
	assert.Error(t, err)
}

func TestInvalidTokens(t *testing.T) {
	s := jwtservice.New("secret", time.Hour)
	good, err := s.GenerateToken("alice")
	require.NoError(t, err)

	expired, err := jwtservice.New("secret", -time.Hour).GenerateToken("alice")
	require.NoError(t, err)

	foreign, err := jwtservice.New("other secret", time.Hour).GenerateToken("alice")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"username": "alice"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		Desc  string
		Token string
	}{
		{Desc: "expired", Token: expired},
		{Desc: "wrong secret", Token: foreign},
		{Desc: "unsigned", Token: none},
		{Desc: "garbage", Token: "not.a.token"},
		{Desc: "tampered", Token: good[:len(good)-2] + "xx"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.ParseToken(tc.Token)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}
