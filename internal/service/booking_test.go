package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/lifecycle"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingGateway, *mocks.MockCatalogGateway) {
	t.Helper()
	gateway := mocks.NewMockBookingGateway(t)
	catalog := mocks.NewMockCatalogGateway(t)
	svc := NewBookingService(gateway, catalog, lifecycle.CancelPolicy{}, newTestLogger(t))
	return svc, gateway, catalog
}

var alice = &domain.Principal{
	UID:         "u1",
	Email:       "alice@example.com",
	DisplayName: "Alice",
}

func TestBookingService_Create_FillsPrincipalAndService(t *testing.T) {
	svc, gateway, catalog := newBookingService(t)

	catalog.EXPECT().GetService(mock.Anything, "svc1").Return(&domain.Service{
		ID:       "svc1",
		Name:     "Wedding Stage",
		Category: "wedding",
		Cost:     5000,
		Unit:     "per event",
	}, nil)

	var got domain.CreateBookingInput
	gateway.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, input domain.CreateBookingInput) {
			got = input
		}).
		Return(&domain.BookingRef{BookingID: "b1", BookingCode: "BK-001"}, nil)

	ref, err := svc.Create(context.Background(), alice, domain.BookingForm{
		ServiceID:     "svc1",
		Date:          "2026-10-01",
		Location:      "Dhaka",
		ContactNumber: "01712345678",
	})

	require.NoError(t, err)
	assert.Equal(t, "b1", ref.BookingID)
	assert.Equal(t, "BK-001", ref.BookingCode)

	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "alice@example.com", got.UserEmail)
	assert.Equal(t, "Alice", got.UserName)
	assert.Equal(t, "Wedding Stage", got.ServiceName)
	assert.Equal(t, "wedding", got.ServiceCategory)
	assert.Equal(t, 5000.0, got.ServiceCost)
	assert.Equal(t, "per event", got.ServiceUnit)
	assert.Equal(t, "2026-10-01", got.Date)
}

func TestBookingService_Create_ServiceNotFound(t *testing.T) {
	svc, _, catalog := newBookingService(t)

	catalog.EXPECT().GetService(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), alice, domain.BookingForm{ServiceID: "missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_Get_OwnershipEnforced(t *testing.T) {
	svc, gateway, _ := newBookingService(t)

	gateway.EXPECT().GetBooking(mock.Anything, "b1").Return(&domain.Booking{
		ID:     "b1",
		UserID: "someone-else",
	}, nil)

	_, err := svc.Get(context.Background(), alice, "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_ListForUser_NewestFirst(t *testing.T) {
	svc, gateway, _ := newBookingService(t)

	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	gateway.EXPECT().ListBookingsForUser(mock.Anything, "u1").Return([]*domain.Booking{
		{ID: "b1", CreatedAt: old},
		{ID: "b3", CreatedAt: old.Add(48 * time.Hour)},
		{ID: "b2", CreatedAt: old.Add(24 * time.Hour)},
	}, nil)

	bookings, err := svc.ListForUser(context.Background(), alice)

	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "b3", bookings[0].ID)
	assert.Equal(t, "b2", bookings[1].ID)
	assert.Equal(t, "b1", bookings[2].ID)
}

func TestBookingService_Cancel(t *testing.T) {
	svc, gateway, _ := newBookingService(t)

	gateway.EXPECT().GetBooking(mock.Anything, "b1").Return(&domain.Booking{
		ID:            "b1",
		UserID:        "u1",
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}, nil)
	gateway.EXPECT().CancelBooking(mock.Anything, "b1").Return(nil)

	err := svc.Cancel(context.Background(), alice, "b1")

	require.NoError(t, err)
}

func TestBookingService_Cancel_CompletedNotAllowed(t *testing.T) {
	svc, gateway, _ := newBookingService(t)

	gateway.EXPECT().GetBooking(mock.Anything, "b1").Return(&domain.Booking{
		ID:     "b1",
		UserID: "u1",
		Status: domain.BookingStatusCompleted,
	}, nil)

	err := svc.Cancel(context.Background(), alice, "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancelNotAllowed)
}

func TestBookingService_Cancel_UnpaidBlockedWhenPolicyRequiresPaid(t *testing.T) {
	gateway := mocks.NewMockBookingGateway(t)
	catalog := mocks.NewMockCatalogGateway(t)
	svc := NewBookingService(gateway, catalog, lifecycle.CancelPolicy{RequirePaid: true}, newTestLogger(t))

	gateway.EXPECT().GetBooking(mock.Anything, "b1").Return(&domain.Booking{
		ID:            "b1",
		UserID:        "u1",
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}, nil)

	err := svc.Cancel(context.Background(), alice, "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancelNotAllowed)
}

func TestBookingService_Pay_Cash(t *testing.T) {
	svc, gateway, _ := newBookingService(t)

	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	svc.newKey = func() string { return "key-1" }

	gateway.EXPECT().GetBooking(mock.Anything, "b1").Return(&domain.Booking{
		ID:            "b1",
		UserID:        "u1",
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}, nil)
	gateway.EXPECT().
		CompletePayment(mock.Anything, "b1", domain.PaymentMethodCash, "CASH_1700000000000", "key-1").
		Return(&domain.Booking{
			ID:            "b1",
			UserID:        "u1",
			PaymentStatus: domain.PaymentStatusPaid,
			TransactionID: "CASH_1700000000000",
		}, nil)

	updated, err := svc.Pay(context.Background(), alice, "b1", domain.PaymentMethodCash)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, updated.PaymentStatus)
	assert.Equal(t, "CASH_1700000000000", updated.TransactionID)
}

func TestBookingService_Pay_NilPayloadRefetches(t *testing.T) {
	svc, gateway, _ := newBookingService(t)

	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	svc.newKey = func() string { return "key-1" }

	unpaid := &domain.Booking{
		ID:            "b1",
		UserID:        "u1",
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
	paid := &domain.Booking{
		ID:            "b1",
		UserID:        "u1",
		PaymentStatus: domain.PaymentStatusPaid,
	}

	gateway.EXPECT().GetBooking(mock.Anything, "b1").Return(unpaid, nil).Once()
	gateway.EXPECT().
		CompletePayment(mock.Anything, "b1", domain.PaymentMethodBkash, "BKASH_1700000000000", "key-1").
		Return(nil, nil)
	gateway.EXPECT().GetBooking(mock.Anything, "b1").Return(paid, nil).Once()

	updated, err := svc.Pay(context.Background(), alice, "b1", domain.PaymentMethodBkash)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, updated.PaymentStatus)
}

func TestBookingService_Pay_TestMethodSimulates(t *testing.T) {
	svc, gateway, _ := newBookingService(t)

	unpaid := &domain.Booking{
		ID:            "b1",
		UserID:        "u1",
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
	paid := &domain.Booking{
		ID:            "b1",
		UserID:        "u1",
		PaymentStatus: domain.PaymentStatusPaid,
	}

	gateway.EXPECT().GetBooking(mock.Anything, "b1").Return(unpaid, nil).Once()
	gateway.EXPECT().SimulatePayment(mock.Anything, "b1").Return(nil)
	gateway.EXPECT().GetBooking(mock.Anything, "b1").Return(paid, nil).Once()

	updated, err := svc.Pay(context.Background(), alice, "b1", domain.PaymentMethodTest)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, updated.PaymentStatus)
}

func TestBookingService_Pay_AlreadyPaid(t *testing.T) {
	svc, gateway, _ := newBookingService(t)

	gateway.EXPECT().GetBooking(mock.Anything, "b1").Return(&domain.Booking{
		ID:            "b1",
		UserID:        "u1",
		PaymentStatus: domain.PaymentStatusPaid,
	}, nil)

	_, err := svc.Pay(context.Background(), alice, "b1", domain.PaymentMethodCash)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
}

func TestBookingService_Pay_PendingRejected(t *testing.T) {
	svc, gateway, _ := newBookingService(t)

	gateway.EXPECT().GetBooking(mock.Anything, "b1").Return(&domain.Booking{
		ID:            "b1",
		UserID:        "u1",
		PaymentStatus: domain.PaymentStatusPending,
	}, nil)

	_, err := svc.Pay(context.Background(), alice, "b1", domain.PaymentMethodCash)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentRejected)
}

func TestBookingService_Pay_UnknownMethod(t *testing.T) {
	svc, _, _ := newBookingService(t)

	_, err := svc.Pay(context.Background(), alice, "b1", domain.PaymentMethod("nagad"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownMethod)
}

func TestBookingService_Pay_SingleFlight(t *testing.T) {
	svc, gateway, _ := newBookingService(t)

	svc.newKey = func() string { return "key-1" }

	started := make(chan struct{})
	block := make(chan struct{})

	gateway.EXPECT().GetBooking(mock.Anything, "b1").
		RunAndReturn(func(ctx context.Context, id string) (*domain.Booking, error) {
			close(started)
			<-block
			return &domain.Booking{
				ID:            "b1",
				UserID:        "u1",
				Status:        domain.BookingStatusPending,
				PaymentStatus: domain.PaymentStatusUnpaid,
			}, nil
		}).Once()
	gateway.EXPECT().
		CompletePayment(mock.Anything, "b1", domain.PaymentMethodCash, mock.Anything, "key-1").
		Return(&domain.Booking{ID: "b1", UserID: "u1", PaymentStatus: domain.PaymentStatusPaid}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = svc.Pay(context.Background(), alice, "b1", domain.PaymentMethodCash)
	}()

	<-started
	_, err := svc.Pay(context.Background(), alice, "b1", domain.PaymentMethodCash)
	assert.ErrorIs(t, err, domain.ErrPaymentInFlight)

	close(block)
	wg.Wait()
	require.NoError(t, firstErr)
}
