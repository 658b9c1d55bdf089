package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"stockroom/internal/domain"
	"stockroom/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrBadCreds deliberately does not say whether the name or the password was
// wrong.
var ErrBadCreds = errors.New("invalid name or password")

type AuthService struct {
	Users *repos.UserRepo
}

// Register creates a user with a bcrypt-hashed password. Role must be admin
// or staff; an empty role defaults to staff, anything else is rejected.
func (s *AuthService) Register(name, password, role string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, fmt.Errorf("%w: name and password are required", domain.ErrValidation)
	}
	if role == "" {
		role = domain.RoleStaff
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	if _, err := s.Users.ByName(name); err == nil {
		return nil, fmt.Errorf("%w: name already taken", domain.ErrValidation)
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := domain.User{ID: uuid.NewString(), Name: name, Hash: string(hash), Role: role}
	if err := s.Users.Insert(u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AuthService) Login(sid, name, password string) (*domain.User, error) {
	u, err := s.Users.ByName(name)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
