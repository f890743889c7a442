package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/guard"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/handler/dto"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/identity"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/lifecycle"
	"github.com/wb-go/wbf/ginext"
)

type IdentitySvc interface {
	SignUp(ctx context.Context, email, password, displayName, photoURL string) (*domain.Principal, error)
	SignIn(ctx context.Context, email, password string) (*domain.Principal, error)
	SignInWithGoogle(ctx context.Context, providerToken string) (*domain.Principal, error)
	SignOut(ctx context.Context) error
	UpdateProfile(ctx context.Context, input domain.UpdateProfileInput) (*domain.Principal, error)
	Current() identity.State
}

type CatalogSvc interface {
	List(ctx context.Context, category string) ([]*domain.Service, error)
	Get(ctx context.Context, id string) (*domain.Service, error)
}

type BookingSvc interface {
	Create(ctx context.Context, principal *domain.Principal, form domain.BookingForm) (*domain.BookingRef, error)
	Get(ctx context.Context, principal *domain.Principal, id string) (*domain.Booking, error)
	ListForUser(ctx context.Context, principal *domain.Principal) ([]*domain.Booking, error)
	Cancel(ctx context.Context, principal *domain.Principal, id string) error
	Pay(ctx context.Context, principal *domain.Principal, id string, method domain.PaymentMethod) (*domain.Booking, error)
}

type Handler struct {
	identityService IdentitySvc
	catalogService  CatalogSvc
	bookingService  BookingSvc
	policy          lifecycle.CancelPolicy
}

func NewHandler(identityService IdentitySvc, catalogService CatalogSvc, bookingService BookingSvc, policy lifecycle.CancelPolicy) *Handler {
	return &Handler{
		identityService: identityService,
		catalogService:  catalogService,
		bookingService:  bookingService,
		policy:          policy,
	}
}

// Auth

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	principal, err := h.identityService.SignUp(c.Request.Context(), req.Email, req.Password, req.DisplayName, req.PhotoURL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPrincipalResponse(principal))
}

func (h *Handler) SignIn(c *ginext.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	principal, err := h.identityService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPrincipalResponse(principal))
}

func (h *Handler) SignInWithGoogle(c *ginext.Context) {
	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	principal, err := h.identityService.SignInWithGoogle(c.Request.Context(), req.ProviderToken)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPrincipalResponse(principal))
}

func (h *Handler) SignOut(c *ginext.Context) {
	if err := h.identityService.SignOut(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "signed out"})
}

// Session reports the current identity resolution so pages can render their
// loading state before the guard admits them.
func (h *Handler) Session(c *ginext.Context) {
	state := h.identityService.Current()
	c.JSON(http.StatusOK, dto.SessionResponse{
		Resolving: state.Loading,
		SignedIn:  state.Principal != nil,
		User:      dto.ToPrincipalResponse(state.Principal),
	})
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	principal, err := h.identityService.UpdateProfile(c.Request.Context(), domain.UpdateProfileInput{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPrincipalResponse(principal))
}

// Services

func (h *Handler) ListServices(c *ginext.Context) {
	services, err := h.catalogService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, dto.ToServiceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetService(c *ginext.Context) {
	svc, err := h.catalogService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(svc))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	principal, ok := guard.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNoCurrentUser.Error()})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ref, err := h.bookingService.Create(c.Request.Context(), principal, domain.BookingForm{
		ServiceID:           req.ServiceID,
		Date:                req.Date,
		Location:            req.Location,
		ContactNumber:       req.ContactNumber,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BookingCreatedResponse{
		BookingID:   ref.BookingID,
		BookingCode: ref.BookingCode,
	})
}

// ListBookings returns the principal's bookings, optionally narrowed by the
// dashboard's status filter and free-text search.
func (h *Handler) ListBookings(c *ginext.Context) {
	principal, ok := guard.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNoCurrentUser.Error()})
		return
	}

	bookings, err := h.bookingService.ListForUser(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	bookings = lifecycle.FilterBookings(bookings, c.Query("status"), c.Query("q"))

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b, h.policy))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BookingSummary(c *ginext.Context) {
	principal, ok := guard.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNoCurrentUser.Error()})
		return
	}

	bookings, err := h.bookingService.ListForUser(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingSummaryResponse{
		Counts: lifecycle.AggregateCounts(bookings),
	})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	principal, ok := guard.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNoCurrentUser.Error()})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking, h.policy))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	principal, ok := guard.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNoCurrentUser.Error()})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), principal, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) Pay(c *ginext.Context) {
	principal, ok := guard.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNoCurrentUser.Error()})
		return
	}

	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Pay(c.Request.Context(), principal, c.Param("id"), domain.PaymentMethod(req.Method))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking, h.policy))
}

// Payments

func (h *Handler) ListPayments(c *ginext.Context) {
	principal, ok := guard.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNoCurrentUser.Error()})
		return
	}

	bookings, err := h.bookingService.ListForUser(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	records := lifecycle.PaymentHistoryView(bookings)
	resp := make([]dto.PaymentRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.ToPaymentRecordResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PaymentSummary(c *ginext.Context) {
	principal, ok := guard.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNoCurrentUser.Error()})
		return
	}

	bookings, err := h.bookingService.ListForUser(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	records := lifecycle.PaymentHistoryView(bookings)
	c.JSON(http.StatusOK, dto.PaymentSummaryResponse{
		Counts:    lifecycle.AggregatePayments(records),
		TotalPaid: lifecycle.TotalPaid(records),
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrUnknownMethod),
		errors.Is(err, domain.ErrPopupClosed):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrWrongPassword),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrNoCurrentUser):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailInUse),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrPaymentInFlight),
		errors.Is(err, domain.ErrCancelNotAllowed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTooManyRequests):
		c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrServerRejected),
		errors.Is(err, domain.ErrPaymentRejected):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNetwork):
		c.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
