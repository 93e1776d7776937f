// Package query is the read-only facade consumed by presentation layers.
// It composes the fund and donation services and performs no writes.
package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fundraise/internal/donation"
	"github.com/MrJamesThe3rd/fundraise/internal/fund"
)

type Service struct {
	funds     *fund.Service
	donations *donation.Service
}

func NewService(funds *fund.Service, donations *donation.Service) *Service {
	return &Service{funds: funds, donations: donations}
}

// ActiveFunds returns the verified, not yet fully funded funds open for donations.
func (s *Service) ActiveFunds(ctx context.Context) ([]*fund.EligibleFund, error) {
	return s.funds.ListEligible(ctx)
}

// DonorHistory returns the donor's donations, most recent first.
func (s *Service) DonorHistory(ctx context.Context, donorID uuid.UUID) ([]*donation.Donation, error) {
	return s.donations.ListByDonor(ctx, donorID)
}

// RecipientFunds returns the funds owned by the recipient, newest first.
func (s *Service) RecipientFunds(ctx context.Context, recipientID uuid.UUID) ([]*fund.RecipientFund, error) {
	return s.funds.ListByRecipient(ctx, recipientID)
}

// Providers returns the service users a fund can be created against.
func (s *Service) Providers(ctx context.Context) ([]*fund.Provider, error) {
	return s.funds.ListProviders(ctx)
}
