package ports

import (
	"context"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
)

type BookingGateway interface {
	CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingRef, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookingsForUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	CompletePayment(ctx context.Context, id string, method domain.PaymentMethod, transactionID, idempotencyKey string) (*domain.Booking, error)
	SimulatePayment(ctx context.Context, bookingID string) error
}
