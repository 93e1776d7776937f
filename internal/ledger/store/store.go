package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/fundraise/internal/donation"
	"github.com/MrJamesThe3rd/fundraise/internal/fund"
	"github.com/MrJamesThe3rd/fundraise/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Begin(ctx context.Context) (ledger.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, classify(err, "beginning ledger tx")
	}

	return &ledgerTx{tx: dbTx}, nil
}

// classify maps store failures onto the ledger error taxonomy. SQLSTATE class
// 23 is an integrity violation, class 08 a connection failure. An unreachable
// store shows up as a pgconn.ConnectError or a net error rather than a
// PgError, and a torn-down caller context makes the driver fail mid-flight;
// all of those are connection failures to the engine.
func classify(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return fmt.Errorf("%s: %w: %s", op, ledger.ErrIntegrity, pgErr.Message)
		case strings.HasPrefix(pgErr.Code, "08"):
			return fmt.Errorf("%s: %w: %s", op, ledger.ErrConnection, pgErr.Message)
		}
	}

	var connectErr *pgconn.ConnectError

	var netErr net.Error

	if errors.As(err, &connectErr) || errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", op, ledger.ErrConnection, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return classify(err, "committing ledger tx")
	}

	return nil
}

func (t *ledgerTx) Rollback() error { return t.tx.Rollback() }

// FundForUpdate reads the fund row under an exclusive row lock held until the
// transaction ends.
func (t *ledgerTx) FundForUpdate(ctx context.Context, fundID uuid.UUID) (*fund.Fund, error) {
	query := `
		SELECT fund_id, recipient_id, service_id, amount_needed, amount_raised,
			is_verified, is_fully_funded, proof_of_charge, created_at
		FROM funds_needed
		WHERE fund_id = $1
		FOR UPDATE
	`

	var f fund.Fund

	err := t.tx.QueryRowContext(ctx, query, fundID).Scan(
		&f.ID, &f.RecipientID, &f.ServiceID, &f.AmountNeeded, &f.AmountRaised,
		&f.IsVerified, &f.IsFullyFunded, &f.ProofOfCharge, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: fund %s", ledger.ErrNotFound, fundID)
		}

		return nil, classify(err, "locking fund")
	}

	return &f, nil
}

func (t *ledgerTx) InsertDonation(ctx context.Context, d *donation.Donation) error {
	query := `
		INSERT INTO donations (fund_id, donor_id, donation_amount, payment_status, donation_date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING donation_id, donation_date
	`

	err := t.tx.QueryRowContext(ctx, query,
		d.FundID,
		d.DonorID,
		d.Amount,
		d.Status,
	).Scan(&d.ID, &d.Date)
	if err != nil {
		return classify(err, "inserting donation")
	}

	return nil
}

// OwnedDonation is the ownership gate: it returns the donation only when
// donor_id matches, locked for the rest of the transaction. A missing row and
// a row owned by someone else are indistinguishable to the caller.
func (t *ledgerTx) OwnedDonation(ctx context.Context, donorID, donationID uuid.UUID) (*donation.Donation, error) {
	query := `
		SELECT donation_id, fund_id, donor_id, donation_amount, payment_status, donation_date
		FROM donations
		WHERE donation_id = $1 AND donor_id = $2
		FOR UPDATE
	`

	var d donation.Donation

	var statusStr string

	err := t.tx.QueryRowContext(ctx, query, donationID, donorID).Scan(
		&d.ID, &d.FundID, &d.DonorID, &d.Amount, &statusStr, &d.Date,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: donation not found or not owned", ledger.ErrNotFound)
		}

		return nil, classify(err, "gating donation")
	}

	d.Status = donation.PaymentStatus(statusStr)

	return &d, nil
}

func (t *ledgerTx) UpdateDonationAmount(ctx context.Context, donationID uuid.UUID, amount decimal.Decimal) error {
	query := `
		UPDATE donations
		SET donation_amount = $1
		WHERE donation_id = $2
	`

	if _, err := t.tx.ExecContext(ctx, query, amount, donationID); err != nil {
		return classify(err, "updating donation amount")
	}

	return nil
}

func (t *ledgerTx) DeleteDonation(ctx context.Context, donationID uuid.UUID) error {
	query := `DELETE FROM donations WHERE donation_id = $1`

	if _, err := t.tx.ExecContext(ctx, query, donationID); err != nil {
		return classify(err, "deleting donation")
	}

	return nil
}

func (t *ledgerTx) DeleteDonationsForFund(ctx context.Context, fundID uuid.UUID) error {
	query := `DELETE FROM donations WHERE fund_id = $1`

	if _, err := t.tx.ExecContext(ctx, query, fundID); err != nil {
		return classify(err, "deleting fund donations")
	}

	return nil
}

// ApplyRaisedDelta moves amount_raised by delta and recomputes the
// fully-funded flag in the same statement, so the flag can never be set
// independently of the raised amount.
func (t *ledgerTx) ApplyRaisedDelta(ctx context.Context, fundID uuid.UUID, delta decimal.Decimal) error {
	query := `
		UPDATE funds_needed
		SET amount_raised = amount_raised + $1,
			is_fully_funded = amount_raised + $1 >= amount_needed
		WHERE fund_id = $2
	`

	res, err := t.tx.ExecContext(ctx, query, delta, fundID)
	if err != nil {
		return classify(err, "applying raised delta")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return classify(err, "applying raised delta")
	}

	if affected == 0 {
		return fmt.Errorf("%w: fund %s", ledger.ErrNotFound, fundID)
	}

	return nil
}

func (t *ledgerTx) DeleteFund(ctx context.Context, fundID uuid.UUID) error {
	query := `DELETE FROM funds_needed WHERE fund_id = $1`

	if _, err := t.tx.ExecContext(ctx, query, fundID); err != nil {
		return classify(err, "deleting fund")
	}

	return nil
}
