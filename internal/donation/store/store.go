package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fundraise/internal/donation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*donation.Donation, error) {
	query := `
		SELECT donation_id, fund_id, donor_id, donation_amount, payment_status, donation_date
		FROM donations
		WHERE donor_id = $1
		ORDER BY donation_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, donorID)
	if err != nil {
		return nil, fmt.Errorf("listing donations: %w", err)
	}
	defer rows.Close()

	var donations []*donation.Donation

	for rows.Next() {
		var d donation.Donation

		var statusStr string

		if err := rows.Scan(&d.ID, &d.FundID, &d.DonorID, &d.Amount, &statusStr, &d.Date); err != nil {
			return nil, fmt.Errorf("scanning donation: %w", err)
		}

		d.Status = donation.PaymentStatus(statusStr)
		donations = append(donations, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating donations: %w", err)
	}

	return donations, nil
}
