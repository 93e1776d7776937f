package donation

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=donation
type Repository interface {
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*Donation, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByDonor returns the donor's donations, most recent first.
func (s *Service) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*Donation, error) {
	return s.repo.ListByDonor(ctx, donorID)
}
