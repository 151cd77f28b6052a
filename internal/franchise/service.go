package franchise

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new franchise. The initial password is hashed
// here; only the hash is ever stored.
func (s *Service) Create(
	ctx context.Context,
	name, shopNumber, email, password string,
) (*Franchise, error) {

	if name == "" || shopNumber == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	f := &Franchise{
		Name:         name,
		ShopNumber:   shopNumber,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.repo.Insert(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// UpdateInput carries the editable fields. Empty strings mean "leave
// unchanged"; a non-empty Password is re-hashed.
type UpdateInput struct {
	Name       string
	ShopNumber string
	Email      string
	Password   string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Franchise, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		f.Name = in.Name
	}
	if in.ShopNumber != "" {
		f.ShopNumber = in.ShopNumber
	}
	if in.Email != "" {
		f.Email = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		f.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (*Franchise, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Franchise, error) {
	return s.repo.ListAll(ctx)
}

// RecordSale rolls a completed bill total into the franchise's
// lifetime sales figure.
func (s *Service) RecordSale(ctx context.Context, id string, amountPaise int64) error {
	if amountPaise <= 0 {
		return errors.New("sale amount must be positive")
	}
	return s.repo.AddSales(ctx, id, amountPaise)
}
