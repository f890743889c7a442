package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/lifecycle"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	gateway ports.BookingGateway
	catalog ports.CatalogGateway
	policy  lifecycle.CancelPolicy
	logger  logger.Logger

	now    func() time.Time
	newKey func() string

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewBookingService(
	gateway ports.BookingGateway,
	catalog ports.CatalogGateway,
	policy lifecycle.CancelPolicy,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		gateway:  gateway,
		catalog:  catalog,
		policy:   policy,
		logger:   logger,
		now:      time.Now,
		newKey:   uuid.NewString,
		inflight: make(map[string]struct{}),
	}
}

// Create resolves the chosen service and submits the booking with the
// principal's identity and the service projection denormalized on it, the way
// the booking form assembles its payload.
func (s *BookingService) Create(ctx context.Context, principal *domain.Principal, form domain.BookingForm) (*domain.BookingRef, error) {
	svc, err := s.catalog.GetService(ctx, form.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("resolve service: %w", err)
	}

	ref, err := s.gateway.CreateBooking(ctx, domain.CreateBookingInput{
		ServiceID:           svc.ID,
		UserID:              principal.UID,
		UserEmail:           principal.Email,
		UserName:            principal.DisplayName,
		Date:                form.Date,
		Location:            form.Location,
		ContactNumber:       form.ContactNumber,
		SpecialInstructions: form.SpecialInstructions,
		ServiceName:         svc.Name,
		ServiceCategory:     svc.Category,
		ServiceCost:         svc.Cost,
		ServiceUnit:         svc.Unit,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		logger.String("booking_id", ref.BookingID),
		logger.String("booking_code", ref.BookingCode),
		logger.String("service_id", svc.ID),
		logger.String("user_id", principal.UID),
	)

	return ref, nil
}

// Get fetches a booking and verifies ownership. The check is defense in depth;
// the server must enforce authorization regardless.
func (s *BookingService) Get(ctx context.Context, principal *domain.Principal, id string) (*domain.Booking, error) {
	b, err := s.gateway.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != principal.UID {
		return nil, domain.ErrUnauthorized
	}
	return b, nil
}

// ListForUser returns the principal's bookings newest first. The server does
// not guarantee any order, so the sort happens here.
func (s *BookingService) ListForUser(ctx context.Context, principal *domain.Principal) ([]*domain.Booking, error) {
	bookings, err := s.gateway.ListBookingsForUser(ctx, principal.UID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (s *BookingService) Cancel(ctx context.Context, principal *domain.Principal, id string) error {
	b, err := s.Get(ctx, principal, id)
	if err != nil {
		return err
	}

	if !s.policy.CanCancel(b) {
		return fmt.Errorf("%w: status=%s paymentStatus=%s", domain.ErrCancelNotAllowed, b.Status, b.PaymentStatus)
	}

	if err := s.gateway.CancelBooking(ctx, id); err != nil {
		return err
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", id),
		logger.String("user_id", principal.UID),
	)
	return nil
}

var methodTags = map[domain.PaymentMethod]string{
	domain.PaymentMethodBkash: "BKASH",
	domain.PaymentMethodCash:  "CASH",
	domain.PaymentMethodTest:  "TEST",
}

// Pay completes payment for a booking. At most one payment attempt per booking
// runs at a time in this process; the idempotency key covers duplicates the
// single-flight cannot (a second tab, a retried request).
func (s *BookingService) Pay(ctx context.Context, principal *domain.Principal, id string, method domain.PaymentMethod) (*domain.Booking, error) {
	tag, ok := methodTags[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMethod, method)
	}

	if !s.acquire(id) {
		return nil, domain.ErrPaymentInFlight
	}
	defer s.release(id)

	b, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus == domain.PaymentStatusPaid {
		return nil, domain.ErrAlreadyPaid
	}
	if !lifecycle.CanPay(b) {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrPaymentRejected, b.PaymentStatus)
	}

	if method == domain.PaymentMethodTest {
		if err := s.gateway.SimulatePayment(ctx, id); err != nil {
			return nil, err
		}
		updated, err := s.gateway.GetBooking(ctx, id)
		if err != nil {
			return nil, err
		}
		s.logPaid(updated, principal)
		return updated, nil
	}

	transactionID := fmt.Sprintf("%s_%d", tag, s.now().UnixMilli())
	updated, err := s.gateway.CompletePayment(ctx, id, method, transactionID, s.newKey())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// backend acknowledged without a payload; observe the transition via re-fetch
		updated, err = s.gateway.GetBooking(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	s.logPaid(updated, principal)
	return updated, nil
}

func (s *BookingService) logPaid(b *domain.Booking, principal *domain.Principal) {
	s.logger.Info("payment completed",
		logger.String("booking_id", b.ID),
		logger.String("payment_status", string(b.PaymentStatus)),
		logger.String("transaction_id", b.TransactionID),
		logger.String("user_id", principal.UID),
	)
}

func (s *BookingService) acquire(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[id]; busy {
		return false
	}
	s.inflight[id] = struct{}{}
	return true
}

func (s *BookingService) release(id string) {
	s.mu.Lock()
	delete(s.inflight, id)
	s.mu.Unlock()
}
