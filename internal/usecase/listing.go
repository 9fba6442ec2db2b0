package usecase

import (
	"context"

	"covidhelp/internal/domain"
	"covidhelp/internal/repository"
)

// ListingService serves the read-only user feeds. Every listing is limited
// to users who have submitted a status record at least once.
type ListingService struct {
	users repository.UserRepository
}

func NewListingService(users repository.UserRepository) *ListingService {
	return &ListingService{users: users}
}

func (s *ListingService) UsersWithStatus(ctx context.Context) ([]domain.User, error) {
	return s.users.FindWithStatus(ctx)
}

func (s *ListingService) UsersByRequirement(ctx context.Context, req domain.Requirement) ([]domain.User, error) {
	return s.users.FindByRequirement(ctx, req)
}

// OtherUsers lists submitted users whose requirement matches none of the
// known categories.
func (s *ListingService) OtherUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindOtherRequirements(ctx)
}
