package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in-progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodBkash PaymentMethod = "bkash"
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodTest  PaymentMethod = "test"
)

type Booking struct {
	ID                  string        `json:"id"`
	BookingCode         string        `json:"bookingCode"`
	UserID              string        `json:"userId"`
	UserEmail           string        `json:"userEmail"`
	UserName            string        `json:"userName"`
	ServiceID           string        `json:"serviceId"`
	ServiceName         string        `json:"serviceName"`
	ServiceCategory     string        `json:"serviceCategory"`
	ServiceCost         float64       `json:"serviceCost"`
	ServiceUnit         string        `json:"serviceUnit"`
	Date                string        `json:"date"`
	Location            string        `json:"location"`
	ContactNumber       string        `json:"contactNumber"`
	SpecialInstructions string        `json:"specialInstructions"`
	Status              BookingStatus `json:"status"`
	PaymentStatus       PaymentStatus `json:"paymentStatus"`
	PaymentMethod       string        `json:"paymentMethod,omitempty"`
	TransactionID       string        `json:"transactionId,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// BookingRef is what the backend returns on creation.
type BookingRef struct {
	BookingID   string `json:"bookingId"`
	BookingCode string `json:"bookingCode"`
}

// CreateBookingInput carries the booking form fields plus the principal and
// service projections the backend stores denormalized on the booking.
type CreateBookingInput struct {
	ServiceID           string  `json:"serviceId" validate:"required"`
	UserID              string  `json:"userId" validate:"required"`
	UserEmail           string  `json:"userEmail"`
	UserName            string  `json:"userName"`
	Date                string  `json:"date" validate:"required,bookingdate"`
	Location            string  `json:"location" validate:"required"`
	ContactNumber       string  `json:"contactNumber" validate:"required,bdphone"`
	SpecialInstructions string  `json:"specialInstructions"`
	ServiceName         string  `json:"serviceName"`
	ServiceCategory     string  `json:"serviceCategory"`
	ServiceCost         float64 `json:"serviceCost"`
	ServiceUnit         string  `json:"serviceUnit"`
}

// BookingForm is what the booking page submits; the rest of
// CreateBookingInput is filled from the principal and the service catalog.
type BookingForm struct {
	ServiceID           string `json:"serviceId"`
	Date                string `json:"date"`
	Location            string `json:"location"`
	ContactNumber       string `json:"contactNumber"`
	SpecialInstructions string `json:"specialInstructions"`
}

// PaymentRecord is a projection of a Booking for the payment history view.
// It is never persisted on the client.
type PaymentRecord struct {
	BookingCode   string        `json:"bookingCode"`
	ServiceName   string        `json:"serviceName"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	Method        string        `json:"method"`
	TransactionID string        `json:"transactionId"`
	Date          time.Time     `json:"date"`
}
