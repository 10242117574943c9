package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ehotel/config"
	"ehotel/infras/jwt"
)

func newJWTService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "ehotel-test"
	cfg.JWT.AccessSecret = "test-secret"
	cfg.JWT.AccessExpireMin = 15

	return jwt.New(cfg)
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := newJWTService()

	token, err := svc.GenerateToken("user-id", "user@example.com", "employee", "hotel-id")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-id", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "employee", claims.Role)
	assert.Equal(t, "hotel-id", claims.HotelID)
	assert.NotEmpty(t, claims.TokenID)
}

func TestJWT_ValidateToken_Invalid(t *testing.T) {
	svc := newJWTService()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage token", token: "not-a-token"},
		{name: "empty token", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)

			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestJWT_ValidateToken_WrongSecret(t *testing.T) {
	svc := newJWTService()

	token, err := svc.GenerateToken("user-id", "user@example.com", "employee", "hotel-id")
	assert.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.JWT.AccessSecret = "another-secret"
	other := jwt.New(otherCfg)

	claims, err := other.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer header", header: "Bearer some-token", want: "some-token"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic some-token", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, token)
			}
		})
	}
}
