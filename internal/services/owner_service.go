package services

import (
	"context"

	"marketplace/internal/domain"
	"marketplace/internal/validate"
)

type OwnerService struct {
	Owners   OwnerStore
	Holdings ItemStore
}

func NewOwnerService(owners OwnerStore, items ItemStore) *OwnerService {
	return &OwnerService{Owners: owners, Holdings: items}
}

type NewOwnerInput struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Bio      *string `json:"bio"`
}

func (s *OwnerService) List(ctx context.Context) ([]domain.Owner, error) {
	return s.Owners.List(ctx, 1000)
}

func (s *OwnerService) Get(ctx context.Context, id string) (domain.Owner, error) {
	o, err := s.Owners.Get(ctx, id)
	return o, lookup("Owner", err)
}

// Create registers an owner with a fresh wallet address. Username and email
// uniqueness is not enforced.
func (s *OwnerService) Create(ctx context.Context, in NewOwnerInput) (domain.Owner, error) {
	username, ok := validate.Username(in.Username)
	if !ok {
		return domain.Owner{}, invalid("username must be 1-32 letters, digits, '_', '.' or '-'")
	}
	email, ok := validate.Email(in.Email)
	if !ok {
		return domain.Owner{}, invalid("email is not valid")
	}
	var bio *string
	if in.Bio != nil {
		b, ok := validate.OptionalText(*in.Bio, 500)
		if !ok {
			return domain.Owner{}, invalid("bio must be at most 500 printable characters")
		}
		bio = &b
	}

	o := domain.NewOwner(domain.Owner{Username: username, Email: email, Bio: bio})
	if err := s.Owners.Insert(ctx, o); err != nil {
		return domain.Owner{}, err
	}
	return o, nil
}

// Items lists the items currently held by the owner's wallet address.
func (s *OwnerService) Items(ctx context.Context, id string) ([]domain.Item, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Holdings.ByOwner(ctx, o.WalletAddress)
}
