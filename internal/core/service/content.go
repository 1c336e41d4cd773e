package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.ContentViewer = (*ContentService)(nil)
var _ port.EnquiryReceiver = (*ContentService)(nil)

// ContentService serves the bundled informational content and collects
// contact enquiries. Enquiries are logged and held in memory only.
type ContentService struct {
	services     []domain.ServiceOffering
	testimonials []domain.Testimonial
	store        domain.StoreInfo

	mu        sync.Mutex
	enquiries []domain.Enquiry
}

func NewContentService(
	services []domain.ServiceOffering,
	testimonials []domain.Testimonial,
	store domain.StoreInfo,
) *ContentService {
	return &ContentService{
		services:     services,
		testimonials: testimonials,
		store:        store,
	}
}

func (s *ContentService) Services(
	ctx context.Context,
) ([]domain.ServiceOffering, error) {
	const op = "ContentService.Services"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.services, nil
}

func (s *ContentService) Testimonials(
	ctx context.Context,
) ([]domain.Testimonial, error) {
	const op = "ContentService.Testimonials"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.testimonials, nil
}

func (s *ContentService) Store(ctx context.Context) (domain.StoreInfo, error) {
	const op = "ContentService.Store"

	if err := ctx.Err(); err != nil {
		return domain.StoreInfo{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.store, nil
}

func (s *ContentService) SubmitEnquiry(
	ctx context.Context, e domain.Enquiry,
) error {
	const op = "ContentService.SubmitEnquiry"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := e.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.enquiries = append(s.enquiries, e)
	n := len(s.enquiries)
	s.mu.Unlock()

	log.Info("enquiry received", "name", e.Name, "email", e.Email, "pending", n)
	return nil
}

// Enquiries returns the submissions received so far, newest last.
func (s *ContentService) Enquiries() []domain.Enquiry {
	s.mu.Lock()
	defer s.mu.Unlock()
	es := make([]domain.Enquiry, len(s.enquiries))
	copy(es, s.enquiries)
	return es
}
