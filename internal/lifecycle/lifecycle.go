// Package lifecycle derives display state and action availability from fetched
// bookings. Everything here is pure: no network calls, no clocks, no logging.
package lifecycle

import (
	"math"
	"sort"
	"strings"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
)

// Badge is a display label plus the utility classes the pages render it with.
type Badge struct {
	Label      string `json:"label"`
	ColorClass string `json:"colorClass"`
}

const defaultBadgeClass = "bg-gray-100 text-gray-800"

var statusBadges = map[domain.BookingStatus]Badge{
	domain.BookingStatusPending:    {Label: "Pending", ColorClass: "bg-yellow-100 text-yellow-800"},
	domain.BookingStatusConfirmed:  {Label: "Confirmed", ColorClass: "bg-blue-100 text-blue-800"},
	domain.BookingStatusInProgress: {Label: "In-progress", ColorClass: "bg-purple-100 text-purple-800"},
	domain.BookingStatusCompleted:  {Label: "Completed", ColorClass: "bg-green-100 text-green-800"},
	domain.BookingStatusCancelled:  {Label: "Cancelled", ColorClass: "bg-red-100 text-red-800"},
}

var paymentBadges = map[domain.PaymentStatus]Badge{
	domain.PaymentStatusUnpaid:   {Label: "Unpaid", ColorClass: "bg-red-100 text-red-800"},
	domain.PaymentStatusPending:  {Label: "Pending", ColorClass: "bg-yellow-100 text-yellow-800"},
	domain.PaymentStatusPaid:     {Label: "Paid", ColorClass: "bg-green-100 text-green-800"},
	domain.PaymentStatusFailed:   {Label: "Failed", ColorClass: "bg-red-100 text-red-800"},
	domain.PaymentStatusRefunded: {Label: "Refunded", ColorClass: "bg-purple-100 text-purple-800"},
}

// StatusBadge maps a booking status to its badge. Unknown statuses render
// neutrally instead of crashing the page.
func StatusBadge(status domain.BookingStatus) Badge {
	if b, ok := statusBadges[status]; ok {
		return b
	}
	return Badge{Label: string(status), ColorClass: defaultBadgeClass}
}

func PaymentBadge(status domain.PaymentStatus) Badge {
	if b, ok := paymentBadges[status]; ok {
		return b
	}
	return Badge{Label: string(status), ColorClass: defaultBadgeClass}
}

// CanPay reports whether payment actions may be offered for the booking.
// Once a booking is paid it must never be re-offered payment.
func CanPay(b *domain.Booking) bool {
	return b.PaymentStatus == domain.PaymentStatusUnpaid
}

// CancelPolicy decides owner-cancel eligibility. Observed client revisions
// disagree on whether a paid payment status is also required, so the stricter
// check is a knob rather than hard-coded.
type CancelPolicy struct {
	RequirePaid bool
}

func (p CancelPolicy) CanCancel(b *domain.Booking) bool {
	if b.Status != domain.BookingStatusPending {
		return false
	}
	if p.RequirePaid {
		return b.PaymentStatus == domain.PaymentStatusPaid
	}
	return true
}

const DefaultTaxRate = 0.15

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// TotalWithTax computes the payable amount with the tax rounded to exactly two
// decimal places, so repeated renders never drift.
func TotalWithTax(serviceCost, rate float64) Totals {
	subtotal := round2(serviceCost)
	tax := round2(subtotal * rate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PaymentHistoryView projects bookings with a paid or pending payment into
// payment records, newest first. The server does not guarantee any order.
func PaymentHistoryView(bookings []*domain.Booking) []domain.PaymentRecord {
	records := make([]domain.PaymentRecord, 0, len(bookings))
	for _, b := range bookings {
		if b.PaymentStatus != domain.PaymentStatusPaid && b.PaymentStatus != domain.PaymentStatusPending {
			continue
		}
		method := b.PaymentMethod
		if method == "" {
			method = "N/A"
		}
		date := b.UpdatedAt
		if date.IsZero() {
			date = b.CreatedAt
		}
		records = append(records, domain.PaymentRecord{
			BookingCode:   b.BookingCode,
			ServiceName:   b.ServiceName,
			Amount:        b.ServiceCost,
			Status:        b.PaymentStatus,
			Method:        method,
			TransactionID: b.TransactionID,
			Date:          date,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	return records
}

type Counts struct {
	All       int `json:"all"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// AggregateCounts reduces the booking collection to the dashboard tallies in a
// single pass.
func AggregateCounts(bookings []*domain.Booking) Counts {
	c := Counts{All: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingStatusPending:
			c.Pending++
		case domain.BookingStatusConfirmed:
			c.Confirmed++
		case domain.BookingStatusCompleted:
			c.Completed++
		case domain.BookingStatusCancelled:
			c.Cancelled++
		}
	}
	return c
}

type PaymentCounts struct {
	Total   int `json:"total"`
	Paid    int `json:"paid"`
	Pending int `json:"pending"`
	Failed  int `json:"failed"`
}

func AggregatePayments(records []domain.PaymentRecord) PaymentCounts {
	c := PaymentCounts{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case domain.PaymentStatusPaid:
			c.Paid++
		case domain.PaymentStatusPending:
			c.Pending++
		case domain.PaymentStatusFailed:
			c.Failed++
		}
	}
	return c
}

// TotalPaid sums the amounts of paid records.
func TotalPaid(records []domain.PaymentRecord) float64 {
	var sum float64
	for _, r := range records {
		if r.Status == domain.PaymentStatusPaid {
			sum += r.Amount
		}
	}
	return round2(sum)
}

// FilterBookings applies the dashboard's status filter and free-text search.
// An empty status or "all" matches every status; the query is matched
// case-insensitively against service name, booking code and location.
func FilterBookings(bookings []*domain.Booking, status, query string) []*domain.Booking {
	out := make([]*domain.Booking, 0, len(bookings))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, b := range bookings {
		if status != "" && status != "all" && string(b.Status) != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(b.ServiceName), q) &&
			!strings.Contains(strings.ToLower(b.BookingCode), q) &&
			!strings.Contains(strings.ToLower(b.Location), q) {
			continue
		}
		out = append(out, b)
	}
	return out
}
