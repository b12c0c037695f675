package service

import (
	"context"
	"log/slog"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/platform/logger"
	"github.com/alienx5499/property-portal/internal/store"
)

// SubmitInquiry validates and saves a new buyer inquiry. New inquiries
// start in status new with type general and medium priority.
func (s *PortalService) SubmitInquiry(ctx context.Context, message string, agentID, buyerID, propertyID int64) (*domain.Inquiry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	inquiry, err := domain.NewInquiry(message, agentID, buyerID, propertyID)
	if err != nil {
		log.Warn("inquiry rejected",
			slog.String("error", err.Error()),
			slog.Int64("property_id", propertyID))
		return nil, NewPortalServiceError("submit_inquiry", "invalid inquiry", err)
	}

	if err := s.stores.Inquiries.Create(ctx, inquiry); err != nil {
		log.Error("failed to save inquiry",
			slog.String("error", err.Error()),
			slog.Int64("property_id", propertyID))
		return nil, NewPortalServiceError("submit_inquiry", "failed to save inquiry", err)
	}

	log.Info("inquiry submitted",
		slog.Int64("inquiry_id", inquiry.ID),
		slog.Int64("property_id", propertyID))
	return inquiry, nil
}

// GetInquiryByID retrieves a single inquiry.
func (s *PortalService) GetInquiryByID(ctx context.Context, id int64) (*domain.Inquiry, error) {
	inquiry, err := s.stores.Inquiries.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewPortalServiceError("get_inquiry", "inquiry not found", err)
		}
		return nil, NewPortalServiceError("get_inquiry", "failed to retrieve inquiry", err)
	}
	return inquiry, nil
}

// GetInquiriesByProperty lists the inquiries on a property, newest first.
func (s *PortalService) GetInquiriesByProperty(ctx context.Context, propertyID int64) ([]*domain.Inquiry, error) {
	inquiries, err := s.stores.Inquiries.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, NewPortalServiceError("inquiries_by_property", "failed to list inquiries", err)
	}
	return inquiries, nil
}

// GetInquiriesByAgent lists the inquiries routed to an agent, newest first.
func (s *PortalService) GetInquiriesByAgent(ctx context.Context, agentID int64) ([]*domain.Inquiry, error) {
	inquiries, err := s.stores.Inquiries.FindByAgent(ctx, agentID)
	if err != nil {
		return nil, NewPortalServiceError("inquiries_by_agent", "failed to list inquiries", err)
	}
	return inquiries, nil
}

// RespondToInquiry marks an inquiry responded, stamping the response time
// in minutes measured from its creation.
func (s *PortalService) RespondToInquiry(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.stores.Inquiries.MarkResponded(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return NewPortalServiceError("respond_to_inquiry", "inquiry not found", err)
		}
		return NewPortalServiceError("respond_to_inquiry", "failed to record response", err)
	}

	log.Info("inquiry responded", slog.Int64("inquiry_id", id))
	return nil
}

// CloseInquiry marks an inquiry closed.
func (s *PortalService) CloseInquiry(ctx context.Context, id int64) error {
	if err := s.stores.Inquiries.Close(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return NewPortalServiceError("close_inquiry", "inquiry not found", err)
		}
		return NewPortalServiceError("close_inquiry", "failed to close inquiry", err)
	}
	return nil
}

// PlaceOffer validates and saves a new purchase offer in status pending.
func (s *PortalService) PlaceOffer(ctx context.Context, agentID, buyerID, propertyID, amount int64, notes string) (*domain.Offer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	offer, err := domain.NewOffer(agentID, buyerID, propertyID, amount, notes)
	if err != nil {
		log.Warn("offer rejected",
			slog.String("error", err.Error()),
			slog.Int64("property_id", propertyID),
			slog.Int64("amount", amount))
		return nil, NewPortalServiceError("place_offer", "invalid offer", err)
	}

	if err := s.stores.Offers.Create(ctx, offer); err != nil {
		log.Error("failed to save offer",
			slog.String("error", err.Error()),
			slog.Int64("property_id", propertyID))
		return nil, NewPortalServiceError("place_offer", "failed to save offer", err)
	}

	log.Info("offer placed",
		slog.Int64("offer_id", offer.ID),
		slog.Int64("property_id", propertyID),
		slog.Int64("amount", amount))
	return offer, nil
}

// GetOffersByProperty lists the offers on a property, newest first.
func (s *PortalService) GetOffersByProperty(ctx context.Context, propertyID int64) ([]*domain.Offer, error) {
	offers, err := s.stores.Offers.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, NewPortalServiceError("offers_by_property", "failed to list offers", err)
	}
	return offers, nil
}

// AcceptOffer marks an offer accepted. This mutates only the offer; the
// property's own status transition stays a separate, explicit call.
func (s *PortalService) AcceptOffer(ctx context.Context, id int64) error {
	return s.setOfferStatus(ctx, id, domain.OfferStatusAccepted, "accept_offer")
}

// RejectOffer marks an offer rejected.
func (s *PortalService) RejectOffer(ctx context.Context, id int64) error {
	return s.setOfferStatus(ctx, id, domain.OfferStatusRejected, "reject_offer")
}

// WithdrawOffer marks an offer withdrawn on behalf of the buyer.
func (s *PortalService) WithdrawOffer(ctx context.Context, id int64) error {
	return s.setOfferStatus(ctx, id, domain.OfferStatusWithdrawn, "withdraw_offer")
}

func (s *PortalService) setOfferStatus(ctx context.Context, id int64, status domain.OfferStatus, operation string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.stores.Offers.UpdateStatus(ctx, id, status); err != nil {
		if store.IsNotFoundError(err) {
			return NewPortalServiceError(operation, "offer not found", err)
		}
		return NewPortalServiceError(operation, "failed to update offer", err)
	}

	log.Info("offer status updated",
		slog.Int64("offer_id", id),
		slog.String("status", string(status)))
	return nil
}
