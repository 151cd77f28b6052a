package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/catharsis02/usc.kiit-shopvision/internal/franchise"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// FranchiseReader is the slice of the franchise repository login
// needs.
type FranchiseReader interface {
	FindByEmail(ctx context.Context, email string) (*franchise.Franchise, error)
}

type Service struct {
	franchises    FranchiseReader
	adminUsername string
	adminHash     string
}

// NewService wires the login service. adminHash is the bcrypt hash of
// the admin password; plaintext admin credentials never reach this
// package.
func NewService(franchises FranchiseReader, adminUsername, adminHash string) *Service {
	return &Service{
		franchises:    franchises,
		adminUsername: adminUsername,
		adminHash:     adminHash,
	}
}

// Login resolves a username/email + password pair to an identity. The
// admin account is matched first by username, then franchise accounts
// by email. Every mismatch collapses to ErrInvalidCredentials so the
// response never reveals which part was wrong.
func (s *Service) Login(ctx context.Context, usernameOrEmail, password string) (*Identity, error) {
	if usernameOrEmail == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	if usernameOrEmail == s.adminUsername {
		if err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		return &Identity{
			ID:   "admin-001",
			Name: s.adminUsername,
			Role: RoleAdmin,
		}, nil
	}

	f, err := s.franchises.FindByEmail(ctx, usernameOrEmail)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(f.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		ID:    f.ID,
		Name:  f.Name,
		Email: f.Email,
		Role:  RoleFranchise,
	}, nil
}
