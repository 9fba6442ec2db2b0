package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"covidhelp/internal/domain"
)

type fakeOfferRepo struct {
	offers    []domain.ServiceOffer
	forcedErr error
}

func (f *fakeOfferRepo) Create(ctx context.Context, offer *domain.ServiceOffer) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	offer.ID = primitive.NewObjectID()
	f.offers = append(f.offers, *offer)
	return nil
}

func (f *fakeOfferRepo) FindAll(ctx context.Context) ([]domain.ServiceOffer, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	out := make([]domain.ServiceOffer, len(f.offers))
	copy(out, f.offers)
	return out, nil
}

func TestOfferSubmitCreatesAndRedirects(t *testing.T) {
	repo := &fakeOfferRepo{}
	svc := NewOfferService(repo)
	ctx := context.Background()

	offer := &domain.ServiceOffer{
		Type:         domain.Vaccination,
		ProviderName: "City Clinic",
		Help:         "free vaccination drive",
		Detail:       "walk-in, 9am-5pm",
		City:         "Pune",
		State:        "MH",
		Phone:        "020-1234567",
	}
	target, err := svc.Submit(ctx, offer)
	require.NoError(t, err)
	assert.Equal(t, "/vc", target)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "City Clinic", listed[0].ProviderName)
	assert.False(t, listed[0].ID.IsZero())
}

func TestOfferSubmitUnknownTypeFallsBack(t *testing.T) {
	svc := NewOfferService(&fakeOfferRepo{})

	target, err := svc.Submit(context.Background(), &domain.ServiceOffer{Type: "unknown-category"})
	require.NoError(t, err)
	assert.Equal(t, "/otherss", target)
}

func TestOfferListPreservesInsertionOrder(t *testing.T) {
	repo := &fakeOfferRepo{}
	svc := NewOfferService(repo)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.Submit(ctx, &domain.ServiceOffer{Type: domain.OfferPlasma, ProviderName: name})
		require.NoError(t, err)
	}

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "first", listed[0].ProviderName)
	assert.Equal(t, "third", listed[2].ProviderName)
}
