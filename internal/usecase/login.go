package usecase

import (
	"context"
	"errors"

	"github.com/plotvista/plotvista/internal/entity"
)

type AuthService struct {
	Users     UserRepository
	Passwords PasswordHasher
	Tokens    TokenIssuer
}

func NewAuthService(users UserRepository, passwords PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		Users:     users,
		Passwords: passwords,
		Tokens:    tokens,
	}
}

// Login exchanges email/password for a bearer token. Missing user and wrong
// password produce the same message so the endpoint doesn't leak which
// emails exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	if verrs := ValidateLoginInput(input); len(verrs) > 0 {
		return nil, validationFailed(verrs)
	}

	user, err := s.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, unauthorized("invalid credentials")
		}
		return nil, storage("failed to look up user", err)
	}

	if !s.Passwords.Verify(user.PasswordHash, input.Password) {
		return nil, unauthorized("invalid credentials")
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return nil, &TechnicalError{Code: "TOKEN_ERROR", Message: "failed to issue token: " + err.Error()}
	}

	return &AuthOutput{
		Token: token,
		User: AuthUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
