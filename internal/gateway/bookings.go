package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
)

// CreateBooking validates the input locally and posts it to the backend.
// Validation failures never reach the network.
func (c *Client) CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.BookingRef, error) {
	if err := c.validate.CreateBooking(input); err != nil {
		return nil, err
	}

	env, err := c.do(ctx, http.MethodPost, "/api/bookings", input, nil)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", domain.ErrServerRejected, env.Error)
	}

	return &domain.BookingRef{
		BookingID:   env.BookingID,
		BookingCode: env.BookingCode,
	}, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	env, err := c.doRetry(ctx, http.MethodGet, "/api/bookings/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !env.Success {
		return nil, domain.ErrNotFound
	}

	var b domain.Booking
	if err := decodeData(env, &b); err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (c *Client) ListBookingsForUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	env, err := c.doRetry(ctx, http.MethodGet, "/api/bookings/user/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", domain.ErrServerRejected, env.Error)
	}

	bookings := []*domain.Booking{}
	if len(env.Data) > 0 {
		if err := decodeData(env, &bookings); err != nil {
			return nil, fmt.Errorf("list bookings: %w", err)
		}
	}
	return bookings, nil
}

// CancelBooking soft-deletes a booking. Eligibility is checked by the caller
// before invoking this; the server enforces it authoritatively.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	env, err := c.do(ctx, http.MethodDelete, "/api/bookings/"+id, nil, nil)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", domain.ErrServerRejected, env.Error)
	}
	return nil
}

type completePaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
}

// CompletePayment marks the booking paid. Never retried: the user must
// re-initiate on failure. The idempotency key lets the server drop duplicate
// submissions from double-clicks or browser retries.
func (c *Client) CompletePayment(ctx context.Context, id string, method domain.PaymentMethod, transactionID, idempotencyKey string) (*domain.Booking, error) {
	header := http.Header{}
	if idempotencyKey != "" {
		header.Set("Idempotency-Key", idempotencyKey)
	}

	env, err := c.do(ctx, http.MethodPost, "/api/bookings/"+id+"/complete-payment", completePaymentRequest{
		PaymentMethod: string(method),
		TransactionID: transactionID,
	}, header)
	if err != nil {
		return nil, fmt.Errorf("complete payment: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentRejected, env.Error)
	}

	var b domain.Booking
	if len(env.Data) > 0 {
		if err := decodeData(env, &b); err != nil {
			return nil, fmt.Errorf("complete payment: %w", err)
		}
		return &b, nil
	}
	return nil, nil
}

type simulatePaymentRequest struct {
	BookingID string `json:"bookingId"`
}

// SimulatePayment triggers the backend's test-only payment shortcut.
func (c *Client) SimulatePayment(ctx context.Context, bookingID string) error {
	env, err := c.do(ctx, http.MethodPost, "/api/simulate-payment", simulatePaymentRequest{BookingID: bookingID}, nil)
	if err != nil {
		return fmt.Errorf("simulate payment: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", domain.ErrPaymentRejected, env.Error)
	}
	return nil
}
