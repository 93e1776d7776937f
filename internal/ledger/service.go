package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/fundraise/internal/donation"
	"github.com/MrJamesThe3rd/fundraise/internal/fund"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx is a single ledger transaction. FundForUpdate and OwnedDonation lock the
// row they return until Commit or Rollback, so eligibility checks and the
// writes that depend on them cannot race with concurrent callers.
type Tx interface {
	FundForUpdate(ctx context.Context, fundID uuid.UUID) (*fund.Fund, error)
	InsertDonation(ctx context.Context, d *donation.Donation) error
	OwnedDonation(ctx context.Context, donorID, donationID uuid.UUID) (*donation.Donation, error)
	UpdateDonationAmount(ctx context.Context, donationID uuid.UUID, amount decimal.Decimal) error
	DeleteDonation(ctx context.Context, donationID uuid.UUID) error
	DeleteDonationsForFund(ctx context.Context, fundID uuid.UUID) error
	ApplyRaisedDelta(ctx context.Context, fundID uuid.UUID, delta decimal.Decimal) error
	DeleteFund(ctx context.Context, fundID uuid.UUID) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Donate records a donation against an eligible fund and applies its amount
// to the fund's raised total in the same transaction. The fund row is locked
// before the eligibility check, so two concurrent donations can never both
// read a stale raised amount.
//
// Over-funding is allowed: a donation may push the raised amount past the
// need, which only flips the fully-funded flag.
func (s *Service) Donate(ctx context.Context, fundID, donorID uuid.UUID, amount decimal.Decimal) (*donation.Donation, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: donation amount must be positive, got %s", ErrValidation, amount)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin donate: %w", err)
	}
	defer tx.Rollback()

	f, err := tx.FundForUpdate(ctx, fundID)
	if err != nil {
		return nil, fmt.Errorf("checking fund: %w", err)
	}

	if !f.IsVerified {
		return nil, fmt.Errorf("%w: fund %s is not verified", ErrConflict, fundID)
	}

	if f.IsFullyFunded {
		return nil, fmt.Errorf("%w: fund %s is already fully funded", ErrConflict, fundID)
	}

	d := &donation.Donation{
		FundID:  fundID,
		DonorID: donorID,
		Amount:  amount,
		Status:  donation.StatusCompleted,
	}
	if err := tx.InsertDonation(ctx, d); err != nil {
		return nil, fmt.Errorf("inserting donation: %w", err)
	}

	if err := tx.ApplyRaisedDelta(ctx, fundID, amount); err != nil {
		return nil, fmt.Errorf("applying raised delta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit donate: %w", err)
	}

	return d, nil
}

// AmendDonation changes the amount of a donation the donor owns and moves the
// fund's raised total by the difference. The delta may be negative.
func (s *Service) AmendDonation(ctx context.Context, donorID, donationID uuid.UUID, newAmount decimal.Decimal) (*donation.Donation, error) {
	if !newAmount.IsPositive() {
		return nil, fmt.Errorf("%w: donation amount must be positive, got %s", ErrValidation, newAmount)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin amend: %w", err)
	}
	defer tx.Rollback()

	d, err := tx.OwnedDonation(ctx, donorID, donationID)
	if err != nil {
		return nil, fmt.Errorf("gating donation: %w", err)
	}

	delta := newAmount.Sub(d.Amount)

	if err := tx.UpdateDonationAmount(ctx, donationID, newAmount); err != nil {
		return nil, fmt.Errorf("updating donation amount: %w", err)
	}

	if err := tx.ApplyRaisedDelta(ctx, d.FundID, delta); err != nil {
		return nil, fmt.Errorf("applying raised delta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit amend: %w", err)
	}

	d.Amount = newAmount

	return d, nil
}

// RetractDonation deletes a donation the donor owns and subtracts its amount
// from the fund's raised total.
func (s *Service) RetractDonation(ctx context.Context, donorID, donationID uuid.UUID) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin retract: %w", err)
	}
	defer tx.Rollback()

	d, err := tx.OwnedDonation(ctx, donorID, donationID)
	if err != nil {
		return fmt.Errorf("gating donation: %w", err)
	}

	if err := tx.DeleteDonation(ctx, donationID); err != nil {
		return fmt.Errorf("deleting donation: %w", err)
	}

	if err := tx.ApplyRaisedDelta(ctx, d.FundID, d.Amount.Neg()); err != nil {
		return fmt.Errorf("applying raised delta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit retract: %w", err)
	}

	return nil
}

// DeleteFund removes a fund the recipient owns together with all of its
// donations. Donations go first so no orphan rows can survive a partial
// failure; both deletes commit or roll back together.
func (s *Service) DeleteFund(ctx context.Context, recipientID, fundID uuid.UUID) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete fund: %w", err)
	}
	defer tx.Rollback()

	f, err := tx.FundForUpdate(ctx, fundID)
	if err != nil {
		return fmt.Errorf("checking fund: %w", err)
	}

	if f.RecipientID != recipientID {
		return fmt.Errorf("%w: fund %s", ErrNotFound, fundID)
	}

	if err := tx.DeleteDonationsForFund(ctx, fundID); err != nil {
		return fmt.Errorf("deleting fund donations: %w", err)
	}

	if err := tx.DeleteFund(ctx, fundID); err != nil {
		return fmt.Errorf("deleting fund: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete fund: %w", err)
	}

	return nil
}
