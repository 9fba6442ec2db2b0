package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"covidhelp/internal/domain"
	"covidhelp/internal/repository"
)

// StatusService stores a user's help request. Each user has a single status
// slot; every submit overwrites the previous one in full.
type StatusService struct {
	users repository.UserRepository
}

func NewStatusService(users repository.UserRepository) *StatusService {
	return &StatusService{users: users}
}

// Submit persists the status against an existing identity and returns the
// listing page the caller should be redirected to. A missing identity is
// domain.ErrNotFound: submit never creates users.
func (s *StatusService) Submit(ctx context.Context, userID primitive.ObjectID, status domain.Status) (string, error) {
	if _, err := s.users.UpdateStatus(ctx, userID, status); err != nil {
		return "", err
	}
	return status.Requirement.Redirect(), nil
}
