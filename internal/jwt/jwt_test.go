package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()
	userID := uuid.New()

	token, err := j.Generate(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWT_DefaultExpiration(t *testing.T) {
	j := New(WithSecretKey("test-secret"))

	token, err := j.Generate(context.Background(), uuid.New())
	require.NoError(t, err)

	claims, err := j.GetClaims(context.Background(), token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWT_GetClaims_Rejects(t *testing.T) {
	ctx := context.Background()
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	expired, err := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute)).Generate(ctx, uuid.New())
	require.NoError(t, err)

	foreign, err := New(WithSecretKey("other-secret"), WithExpiration(time.Minute)).Generate(ctx, uuid.New())
	require.NoError(t, err)

	anonymous, err := j.Generate(ctx, uuid.Nil)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: uuid.New()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"signed with another secret", foreign},
		{"nil user id", anonymous},
		{"unsigned", unsigned},
		{"garbage", "this.is.invalid"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := j.GetClaims(ctx, tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
			assert.Error(t, j.Validate(ctx, tt.token))
		})
	}
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New(WithSecretKey("test-secret"))

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "extra spaces", header: "Bearer   abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "missing", header: "", wantErr: ErrMissingAuthHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthHeader},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthHeader},
		{name: "too many parts", header: "Bearer a b", wantErr: ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/search", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
