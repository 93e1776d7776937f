package donation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/fundraise/internal/donation"
)

type donationResponse struct {
	ID     uuid.UUID              `json:"id"`
	FundID uuid.UUID              `json:"fund_id"`
	Amount decimal.Decimal        `json:"amount"`
	Status donation.PaymentStatus `json:"status"`
	Date   time.Time              `json:"date"`
}

func toResponse(d *donation.Donation) donationResponse {
	return donationResponse{
		ID:     d.ID,
		FundID: d.FundID,
		Amount: d.Amount,
		Status: d.Status,
		Date:   d.Date,
	}
}

func toResponseList(donations []*donation.Donation) []donationResponse {
	resp := make([]donationResponse, len(donations))
	for i, d := range donations {
		resp[i] = toResponse(d)
	}

	return resp
}
