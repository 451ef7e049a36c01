package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/hiqsoft/routecore/modules/core/domain/entities/user"
	"github.com/hiqsoft/routecore/pkg/configuration"
	"github.com/hiqsoft/routecore/pkg/middleware"
)

type AuthService struct {
	verifier user.CredentialVerifier
	users    user.Repository
	auth     configuration.AuthOptions
}

func NewAuthService(verifier user.CredentialVerifier, users user.Repository, auth configuration.AuthOptions) *AuthService {
	return &AuthService{
		verifier: verifier,
		users:    users,
		auth:     auth,
	}
}

// Login resolves credentials to a signed session token and the matching
// user profile.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *user.User, error) {
	id, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	claims := middleware.TokenClaims{
		UserID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.auth.TokenDuration)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.auth.Secret))
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
