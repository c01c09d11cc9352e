package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourism/infras/jwt"
	"tourism/internal/domains/auth/model/dto"
	userModel "tourism/internal/domains/user/model"
)

func TestTokenResponse(t *testing.T) {
	image := "uploads/user/a.png"

	var response dto.TokenResponse
	response.FromTokenPair(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900})
	response.FromUser(userModel.User{Email: "john@example.com", FirstName: "John", LastName: "Doe", Image: &image, FirstTimeLogin: true})

	assert.Equal(t, dto.TokenResponse{
		Token:          "access",
		RefreshToken:   "refresh",
		TokenType:      "Bearer",
		ExpiresIn:      900,
		Email:          "john@example.com",
		FirstName:      "John",
		LastName:       "Doe",
		Image:          image,
		FirstTimeLogin: true,
	}, response)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	var response dto.RefreshTokenResponse
	response.FromTokenPair(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"})

	assert.Equal(t, "new-access", response.Token)
	assert.Equal(t, "new-refresh", response.RefreshToken)
}
