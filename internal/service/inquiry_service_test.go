package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/store"
)

func TestSubmitInquiry(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	stores.inquiries.CreateFn = func(ctx context.Context, inquiry *domain.Inquiry) error {
		inquiry.ID = 9
		return nil
	}

	inquiry, err := portal.SubmitInquiry(context.Background(), "Is the garden fenced?", 1, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(9), inquiry.ID)
	assert.Equal(t, domain.InquiryStatusNew, inquiry.Status)
	assert.Equal(t, domain.InquiryTypeGeneral, inquiry.InquiryType)
	assert.Equal(t, domain.InquiryPriorityMedium, inquiry.Priority)
}

func TestSubmitInquiryRejectsEmptyMessage(t *testing.T) {
	t.Parallel()
	portal, _ := newTestPortal(t)

	_, err := portal.SubmitInquiry(context.Background(), "   ", 1, 2, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyInquiryMessage)
}

func TestRespondToInquiryNotFound(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	stores.inquiries.MarkRespondedFn = func(ctx context.Context, id int64) error {
		return store.ErrInquiryNotFound
	}

	err := portal.RespondToInquiry(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPlaceOfferRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()
	portal, _ := newTestPortal(t)

	_, err := portal.PlaceOffer(context.Background(), 1, 2, 3, 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNonPositiveOffer)
}

func TestOfferStatusTransitions(t *testing.T) {
	t.Parallel()
	portal, stores := newTestPortal(t)

	var gotStatuses []domain.OfferStatus
	stores.offers.UpdateStatusFn = func(ctx context.Context, id int64, status domain.OfferStatus) error {
		gotStatuses = append(gotStatuses, status)
		return nil
	}

	require.NoError(t, portal.AcceptOffer(context.Background(), 1))
	require.NoError(t, portal.RejectOffer(context.Background(), 2))
	require.NoError(t, portal.WithdrawOffer(context.Background(), 3))

	assert.Equal(t, []domain.OfferStatus{
		domain.OfferStatusAccepted,
		domain.OfferStatusRejected,
		domain.OfferStatusWithdrawn,
	}, gotStatuses)
}
