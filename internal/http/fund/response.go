package fund

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/fundraise/internal/fund"
)

type fundResponse struct {
	ID            uuid.UUID       `json:"id"`
	RecipientID   uuid.UUID       `json:"recipient_id"`
	ServiceID     uuid.UUID       `json:"service_id"`
	AmountNeeded  decimal.Decimal `json:"amount_needed"`
	AmountRaised  decimal.Decimal `json:"amount_raised"`
	IsVerified    bool            `json:"is_verified"`
	IsFullyFunded bool            `json:"is_fully_funded"`
	ProofOfCharge string          `json:"proof_of_charge,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type eligibleFundResponse struct {
	fundResponse
	RecipientName string `json:"recipient_name"`
	ServiceName   string `json:"service_name"`
}

type recipientFundResponse struct {
	fundResponse
	ServiceName string `json:"service_name"`
}

type providerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toResponse(f *fund.Fund) fundResponse {
	return fundResponse{
		ID:            f.ID,
		RecipientID:   f.RecipientID,
		ServiceID:     f.ServiceID,
		AmountNeeded:  f.AmountNeeded,
		AmountRaised:  f.AmountRaised,
		IsVerified:    f.IsVerified,
		IsFullyFunded: f.IsFullyFunded,
		ProofOfCharge: f.ProofOfCharge,
		CreatedAt:     f.CreatedAt,
	}
}

func toEligibleList(funds []*fund.EligibleFund) []eligibleFundResponse {
	resp := make([]eligibleFundResponse, len(funds))
	for i, f := range funds {
		resp[i] = eligibleFundResponse{
			fundResponse:  toResponse(&f.Fund),
			RecipientName: f.RecipientName,
			ServiceName:   f.ServiceName,
		}
	}

	return resp
}

func toRecipientList(funds []*fund.RecipientFund) []recipientFundResponse {
	resp := make([]recipientFundResponse, len(funds))
	for i, f := range funds {
		resp[i] = recipientFundResponse{
			fundResponse: toResponse(&f.Fund),
			ServiceName:  f.ServiceName,
		}
	}

	return resp
}

func toProviderList(providers []*fund.Provider) []providerResponse {
	resp := make([]providerResponse, len(providers))
	for i, p := range providers {
		resp[i] = providerResponse{ID: p.ID, Name: p.Name}
	}

	return resp
}
