package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/fundraise/internal/fund"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectFundColumns = `
	f.fund_id, f.recipient_id, f.service_id, f.amount_needed, f.amount_raised,
	f.is_verified, f.is_fully_funded, f.proof_of_charge, f.created_at
`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFund(s scanner, extra ...any) (*fund.Fund, error) {
	var f fund.Fund

	dest := []any{
		&f.ID, &f.RecipientID, &f.ServiceID, &f.AmountNeeded, &f.AmountRaised,
		&f.IsVerified, &f.IsFullyFunded, &f.ProofOfCharge, &f.CreatedAt,
	}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	return &f, nil
}

func (s *Store) CreateFund(ctx context.Context, f *fund.Fund) error {
	query := `
		INSERT INTO funds_needed (recipient_id, service_id, amount_needed, amount_raised, is_verified, is_fully_funded, proof_of_charge, created_at)
		VALUES ($1, $2, $3, 0, FALSE, FALSE, $4, NOW())
		RETURNING fund_id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		f.RecipientID,
		f.ServiceID,
		f.AmountNeeded,
		f.ProofOfCharge,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating fund: %w", err)
	}

	return nil
}

func (s *Store) ListEligible(ctx context.Context) ([]*fund.EligibleFund, error) {
	query := `SELECT ` + selectFundColumns + `,
			r.name AS recipient_name, sv.name AS service_name
		FROM funds_needed f
		JOIN users r ON f.recipient_id = r.user_id
		JOIN users sv ON f.service_id = sv.user_id
		WHERE f.is_verified = TRUE AND f.is_fully_funded = FALSE
		ORDER BY f.fund_id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing eligible funds: %w", err)
	}
	defer rows.Close()

	var funds []*fund.EligibleFund

	for rows.Next() {
		var recipientName, serviceName string

		f, err := scanFund(rows, &recipientName, &serviceName)
		if err != nil {
			return nil, fmt.Errorf("scanning eligible fund: %w", err)
		}

		funds = append(funds, &fund.EligibleFund{
			Fund:          *f,
			RecipientName: recipientName,
			ServiceName:   serviceName,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating eligible funds: %w", err)
	}

	return funds, nil
}

func (s *Store) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*fund.RecipientFund, error) {
	query := `SELECT ` + selectFundColumns + `,
			sv.name AS service_name
		FROM funds_needed f
		JOIN users sv ON f.service_id = sv.user_id
		WHERE f.recipient_id = $1
		ORDER BY f.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("listing recipient funds: %w", err)
	}
	defer rows.Close()

	var funds []*fund.RecipientFund

	for rows.Next() {
		var serviceName string

		f, err := scanFund(rows, &serviceName)
		if err != nil {
			return nil, fmt.Errorf("scanning recipient fund: %w", err)
		}

		funds = append(funds, &fund.RecipientFund{
			Fund:        *f,
			ServiceName: serviceName,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipient funds: %w", err)
	}

	return funds, nil
}

func (s *Store) UpdateTerms(ctx context.Context, recipientID, fundID uuid.UUID, amountNeeded decimal.Decimal, proof string) error {
	query := `
		UPDATE funds_needed
		SET amount_needed = $1, proof_of_charge = $2
		WHERE fund_id = $3 AND recipient_id = $4
	`

	res, err := s.db.ExecContext(ctx, query, amountNeeded, proof, fundID, recipientID)
	if err != nil {
		return fmt.Errorf("updating fund terms: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating fund terms: %w", err)
	}

	if affected == 0 {
		return fund.ErrNotFound
	}

	return nil
}

func (s *Store) Verify(ctx context.Context, fundID uuid.UUID) error {
	query := `
		UPDATE funds_needed
		SET is_verified = TRUE
		WHERE fund_id = $1
	`

	res, err := s.db.ExecContext(ctx, query, fundID)
	if err != nil {
		return fmt.Errorf("verifying fund: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("verifying fund: %w", err)
	}

	if affected == 0 {
		return fund.ErrNotFound
	}

	return nil
}

func (s *Store) ListProviders(ctx context.Context) ([]*fund.Provider, error) {
	query := `
		SELECT user_id, name
		FROM users
		WHERE user_type = 'Service'
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing providers: %w", err)
	}
	defer rows.Close()

	var providers []*fund.Provider

	for rows.Next() {
		var p fund.Provider
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scanning provider: %w", err)
		}

		providers = append(providers, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating providers: %w", err)
	}

	return providers, nil
}
