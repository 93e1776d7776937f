package fund

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a fund does not exist or is not owned by the
// caller. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("fund not found")

// ErrInvalidAmount is returned when a fund's needed amount is not positive.
var ErrInvalidAmount = errors.New("amount needed must be positive")

// Fund represents a request for a bounded amount of money on behalf of a recipient.
type Fund struct {
	ID            uuid.UUID
	RecipientID   uuid.UUID
	ServiceID     uuid.UUID
	AmountNeeded  decimal.Decimal
	AmountRaised  decimal.Decimal
	IsVerified    bool
	IsFullyFunded bool
	ProofOfCharge string
	CreatedAt     time.Time
}

// EligibleFund is a fund open for donations, with display names loaded via JOIN.
type EligibleFund struct {
	Fund
	RecipientName string
	ServiceName   string
}

// RecipientFund is a recipient-owned fund with its service name loaded via JOIN.
type RecipientFund struct {
	Fund
	ServiceName string
}

// Provider is a service-type user that a fund pays out to.
type Provider struct {
	ID   uuid.UUID
	Name string
}
