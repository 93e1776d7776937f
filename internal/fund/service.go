package fund

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fund
type Repository interface {
	CreateFund(ctx context.Context, f *Fund) error
	ListEligible(ctx context.Context) ([]*EligibleFund, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*RecipientFund, error)
	UpdateTerms(ctx context.Context, recipientID, fundID uuid.UUID, amountNeeded decimal.Decimal, proof string) error
	Verify(ctx context.Context, fundID uuid.UUID) error
	ListProviders(ctx context.Context) ([]*Provider, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	RecipientID   uuid.UUID
	ServiceID     uuid.UUID
	AmountNeeded  decimal.Decimal
	ProofOfCharge string
}

// Create inserts a new, unverified fund with nothing raised yet.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Fund, error) {
	if !params.AmountNeeded.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidAmount, params.AmountNeeded)
	}

	f := &Fund{
		RecipientID:   params.RecipientID,
		ServiceID:     params.ServiceID,
		AmountNeeded:  params.AmountNeeded,
		AmountRaised:  decimal.Zero,
		ProofOfCharge: params.ProofOfCharge,
	}
	if err := s.repo.CreateFund(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

// ListEligible returns verified, not yet fully funded funds, oldest first.
func (s *Service) ListEligible(ctx context.Context) ([]*EligibleFund, error) {
	return s.repo.ListEligible(ctx)
}

// ListByRecipient returns all funds owned by the recipient, newest first.
func (s *Service) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*RecipientFund, error) {
	return s.repo.ListByRecipient(ctx, recipientID)
}

// UpdateTerms changes the needed amount and proof of charge on a fund the
// recipient owns. Raised amount and verification state are untouched.
func (s *Service) UpdateTerms(ctx context.Context, recipientID, fundID uuid.UUID, amountNeeded decimal.Decimal, proof string) error {
	if !amountNeeded.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amountNeeded)
	}

	return s.repo.UpdateTerms(ctx, recipientID, fundID, amountNeeded, proof)
}

// Verify marks a fund as verified. Administrative operation.
func (s *Service) Verify(ctx context.Context, fundID uuid.UUID) error {
	return s.repo.Verify(ctx, fundID)
}

// ListProviders returns the service users a fund can be created against.
func (s *Service) ListProviders(ctx context.Context) ([]*Provider, error) {
	return s.repo.ListProviders(ctx)
}
