package usecase

import (
	"context"

	"covidhelp/internal/domain"
	"covidhelp/internal/repository"
)

// OfferService records anonymous help offers. Offers are append-only.
type OfferService struct {
	offers repository.ServiceOfferRepository
}

func NewOfferService(offers repository.ServiceOfferRepository) *OfferService {
	return &OfferService{offers: offers}
}

// Submit creates the offer and returns the listing page for its type.
func (s *OfferService) Submit(ctx context.Context, offer *domain.ServiceOffer) (string, error) {
	if err := s.offers.Create(ctx, offer); err != nil {
		return "", err
	}
	return offer.Type.Redirect(), nil
}

func (s *OfferService) List(ctx context.Context) ([]domain.ServiceOffer, error) {
	return s.offers.FindAll(ctx)
}
