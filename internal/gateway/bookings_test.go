package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(Config{
		BaseURL:       srv.URL,
		Timeout:       2 * time.Second,
		RetryAttempts: 1,
		RetryDelay:    time.Millisecond,
	})
	c.validate.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return c, srv
}

func bookingInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		ServiceID:     "svc-1",
		UserID:        "u1",
		UserEmail:     "alice@example.com",
		UserName:      "Alice",
		Date:          "2025-06-20",
		Location:      "House 12, Dhanmondi, Dhaka",
		ContactNumber: "01712345678",
		ServiceName:   "Wedding Stage",
		ServiceCost:   5000,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	var got domain.CreateBookingInput
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"bookingId":   "b-42",
			"bookingCode": "SHC-2025-042",
		})
	}))

	ref, err := c.CreateBooking(context.Background(), bookingInput())

	require.NoError(t, err)
	assert.Equal(t, "b-42", ref.BookingID)
	assert.Equal(t, "SHC-2025-042", ref.BookingCode)
	assert.Equal(t, "Wedding Stage", got.ServiceName)
	assert.Equal(t, "u1", got.UserID)
}

func TestCreateBooking_ValidationSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	input := bookingInput()
	input.Date = "2024-01-01" // in the past

	_, err := c.CreateBooking(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, calls.Load(), "validation failures must not reach the network")
}

func TestCreateBooking_EnvelopeFailureOn200(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// transport says OK, envelope says no
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "service unavailable on that date",
		})
	}))

	_, err := c.CreateBooking(context.Background(), bookingInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServerRejected)
	assert.Contains(t, err.Error(), "service unavailable on that date")
}

func TestGetBooking_Success(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/b-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"id":            "b-1",
				"bookingCode":   "SHC-2025-001",
				"userId":        "u1",
				"status":        "pending",
				"paymentStatus": "unpaid",
				"serviceCost":   5000,
			},
		})
	}))

	b, err := c.GetBooking(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, "b-1", b.ID)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
	assert.Equal(t, domain.PaymentStatusUnpaid, b.PaymentStatus)
}

func TestGetBooking_NotFound(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.GetBooking(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListBookingsForUser(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/user/u1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": "b-1", "status": "pending"},
				{"id": "b-2", "status": "completed"},
			},
		})
	}))

	bookings, err := c.ListBookingsForUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b-1", bookings[0].ID)
	assert.Equal(t, domain.BookingStatusCompleted, bookings[1].Status)
}

func TestCancelBooking_ServerRejected(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "booking is not pending"})
	}))

	err := c.CancelBooking(context.Background(), "b-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServerRejected)
}

func TestCompletePayment_SendsIdempotencyKey(t *testing.T) {
	var gotKey string
	var gotBody completePaymentRequest
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/b-1/complete-payment", r.URL.Path)
		gotKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"id":            "b-1",
				"paymentStatus": "paid",
				"paymentMethod": "cash",
				"transactionId": gotBody.TransactionID,
			},
		})
	}))

	b, err := c.CompletePayment(context.Background(), "b-1", domain.PaymentMethodCash, "CASH_1717243200000", "idem-123")

	require.NoError(t, err)
	assert.Equal(t, "idem-123", gotKey)
	assert.Equal(t, "cash", gotBody.PaymentMethod)
	assert.Equal(t, domain.PaymentStatusPaid, b.PaymentStatus)
	assert.Equal(t, "CASH_1717243200000", b.TransactionID)
}

func TestCompletePayment_Rejected(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "gateway declined"})
	}))

	_, err := c.CompletePayment(context.Background(), "b-1", domain.PaymentMethodBkash, "BKASH_1", "k")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentRejected)
}

func TestSimulatePayment(t *testing.T) {
	var got simulatePaymentRequest
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/simulate-payment", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	err := c.SimulatePayment(context.Background(), "b-9")

	require.NoError(t, err)
	assert.Equal(t, "b-9", got.BookingID)
}

func TestListServices_CategoryFilter(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/services", r.URL.Path)
		assert.Equal(t, "wedding", r.URL.Query().Get("category"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": "svc-1", "name": "Wedding Stage", "cost": 5000},
			},
		})
	}))

	services, err := c.ListServices(context.Background(), "wedding")

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Wedding Stage", services[0].Name)
}

func TestUpsertUser(t *testing.T) {
	var got domain.UserMirror
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	err := c.UpsertUser(context.Background(), domain.UserMirror{
		UID:         "u1",
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Role:        "user",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UID)
	assert.Equal(t, "user", got.Role)
}
