package donation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a donation does not exist or is not owned by
// the caller. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("donation not found")

// PaymentStatus represents the payment state of a donation.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "Pending"
	StatusCompleted PaymentStatus = "Completed"
	StatusFailed    PaymentStatus = "Failed"
	StatusRefunded  PaymentStatus = "Refunded"
)

// Donation represents a donor's contribution toward a specific fund.
// DonorID and Date are fixed at creation.
type Donation struct {
	ID      uuid.UUID
	FundID  uuid.UUID
	DonorID uuid.UUID
	Amount  decimal.Decimal
	Status  PaymentStatus
	Date    time.Time
}
