package gateway

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// Bangladeshi mobile number, optionally prefixed with +88 or the 01 trunk form.
var phoneRe = regexp.MustCompile(`^(?:\+88|01)?\d{11}$`)

// Validator checks booking input before any network call is made.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

func NewValidator() *Validator {
	val := &Validator{
		v:   validator.New(),
		now: time.Now,
	}

	val.v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		d, err := time.Parse(dateLayout, strings.TrimSpace(value))
		if err != nil {
			return false
		}
		// day granularity: today is accepted, anything earlier is not
		today := val.now()
		floor := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		return !d.Before(floor)
	})

	val.v.RegisterValidation("bdphone", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		cleaned := strings.ReplaceAll(value, " ", "")
		cleaned = strings.TrimPrefix(cleaned, "+88")
		return phoneRe.MatchString(cleaned)
	})

	return val
}

func (val *Validator) CreateBooking(input domain.CreateBookingInput) error {
	err := val.v.Struct(input)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "bookingdate":
			fields = append(fields, "date must be today or later")
		case "bdphone":
			fields = append(fields, "contactNumber must be a valid 11-digit mobile number")
		default:
			fields = append(fields, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(fields, "; "))
}
