package service

import (
	"strings"

	"github.com/balloondhq/balloond-website/internal/domain"
	"github.com/balloondhq/balloond-website/pkg/utils"
)

type AuthService struct {
	users domain.UserRepository
}

func NewAuthService(users domain.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate returns the account matching email and password, or nil.
// Unknown email and wrong password are deliberately indistinguishable
// so the endpoint cannot be used for account enumeration.
func (s *AuthService) Authenticate(email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, nil
	}
	return u, nil
}
