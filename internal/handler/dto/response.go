package dto

import (
	"time"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/lifecycle"
)

type PrincipalResponse struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	PhotoURL      string `json:"photoURL"`
	EmailVerified bool   `json:"emailVerified"`
}

type SessionResponse struct {
	Resolving bool               `json:"resolving"`
	SignedIn  bool               `json:"signedIn"`
	User      *PrincipalResponse `json:"user,omitempty"`
}

type ServiceResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Cost          float64 `json:"cost"`
	Unit          string  `json:"unit"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	TotalBookings int     `json:"totalBookings"`
}

// BookingResponse is the booking plus everything its row needs to render:
// badges, action availability and the payable amount.
type BookingResponse struct {
	ID                  string           `json:"id"`
	BookingCode         string           `json:"bookingCode"`
	ServiceID           string           `json:"serviceId"`
	ServiceName         string           `json:"serviceName"`
	ServiceCategory     string           `json:"serviceCategory"`
	ServiceCost         float64          `json:"serviceCost"`
	ServiceUnit         string           `json:"serviceUnit"`
	Date                string           `json:"date"`
	Location            string           `json:"location"`
	ContactNumber       string           `json:"contactNumber"`
	SpecialInstructions string           `json:"specialInstructions"`
	Status              string           `json:"status"`
	StatusBadge         lifecycle.Badge  `json:"statusBadge"`
	PaymentStatus       string           `json:"paymentStatus"`
	PaymentBadge        lifecycle.Badge  `json:"paymentBadge"`
	PaymentMethod       string           `json:"paymentMethod,omitempty"`
	TransactionID       string           `json:"transactionId,omitempty"`
	CanPay              bool             `json:"canPay"`
	CanCancel           bool             `json:"canCancel"`
	Totals              lifecycle.Totals `json:"totals"`
	CreatedAt           string           `json:"createdAt"`
	UpdatedAt           string           `json:"updatedAt"`
}

type BookingCreatedResponse struct {
	BookingID   string `json:"bookingId"`
	BookingCode string `json:"bookingCode"`
}

type PaymentRecordResponse struct {
	BookingCode   string          `json:"bookingCode"`
	ServiceName   string          `json:"serviceName"`
	Amount        float64         `json:"amount"`
	Status        string          `json:"status"`
	StatusBadge   lifecycle.Badge `json:"statusBadge"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transactionId"`
	Date          string          `json:"date"`
}

type BookingSummaryResponse struct {
	Counts lifecycle.Counts `json:"counts"`
}

type PaymentSummaryResponse struct {
	Counts    lifecycle.PaymentCounts `json:"counts"`
	TotalPaid float64                 `json:"totalPaid"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPrincipalResponse(p *domain.Principal) *PrincipalResponse {
	if p == nil {
		return nil
	}
	return &PrincipalResponse{
		UID:           p.UID,
		Email:         p.Email,
		DisplayName:   p.DisplayName,
		PhotoURL:      p.PhotoURL,
		EmailVerified: p.EmailVerified,
	}
}

func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Category:      s.Category,
		Cost:          s.Cost,
		Unit:          s.Unit,
		Description:   s.Description,
		Image:         s.Image,
		Rating:        s.Rating,
		TotalBookings: s.TotalBookings,
	}
}

func ToBookingResponse(b *domain.Booking, policy lifecycle.CancelPolicy) BookingResponse {
	return BookingResponse{
		ID:                  b.ID,
		BookingCode:         b.BookingCode,
		ServiceID:           b.ServiceID,
		ServiceName:         b.ServiceName,
		ServiceCategory:     b.ServiceCategory,
		ServiceCost:         b.ServiceCost,
		ServiceUnit:         b.ServiceUnit,
		Date:                b.Date,
		Location:            b.Location,
		ContactNumber:       b.ContactNumber,
		SpecialInstructions: b.SpecialInstructions,
		Status:              string(b.Status),
		StatusBadge:         lifecycle.StatusBadge(b.Status),
		PaymentStatus:       string(b.PaymentStatus),
		PaymentBadge:        lifecycle.PaymentBadge(b.PaymentStatus),
		PaymentMethod:       b.PaymentMethod,
		TransactionID:       b.TransactionID,
		CanPay:              lifecycle.CanPay(b),
		CanCancel:           policy.CanCancel(b),
		Totals:              lifecycle.TotalWithTax(b.ServiceCost, lifecycle.DefaultTaxRate),
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToPaymentRecordResponse(r domain.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		BookingCode:   r.BookingCode,
		ServiceName:   r.ServiceName,
		Amount:        r.Amount,
		Status:        string(r.Status),
		StatusBadge:   lifecycle.PaymentBadge(r.Status),
		Method:        r.Method,
		TransactionID: r.TransactionID,
		Date:          r.Date.Format(time.RFC3339),
	}
}
