package gateway

import (
	"testing"
	"time"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedValidator(t *testing.T, now time.Time) *Validator {
	t.Helper()
	v := NewValidator()
	v.now = func() time.Time { return now }
	return v
}

func validInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		ServiceID:     "svc-1",
		UserID:        "u1",
		Date:          "2025-06-15",
		Location:      "House 12, Dhanmondi, Dhaka",
		ContactNumber: "01712345678",
	}
}

func TestValidator_DateBoundary(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	v := fixedValidator(t, now)

	input := validInput()
	input.Date = "2025-06-15" // today, accepted
	assert.NoError(t, v.CreateBooking(input))

	input.Date = "2025-06-16"
	assert.NoError(t, v.CreateBooking(input))

	input.Date = "2025-06-14" // strictly before today, rejected
	err := v.CreateBooking(input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	input.Date = "15/06/2025"
	assert.ErrorIs(t, v.CreateBooking(input), domain.ErrValidation)

	input.Date = ""
	assert.ErrorIs(t, v.CreateBooking(input), domain.ErrValidation)
}

func TestValidator_ContactNumber(t *testing.T) {
	v := fixedValidator(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	valid := []string{
		"01712345678",
		"+8801712345678",
		"+88 017 1234 5678",
		"01812345678",
	}
	for _, num := range valid {
		input := validInput()
		input.ContactNumber = num
		assert.NoError(t, v.CreateBooking(input), "number %q should be accepted", num)
	}

	invalid := []string{
		"0171234567",     // 10 digits
		"017123456789",   // 12 digits
		"8801712345678",  // bare country code without +
		"abcdefghijk",    // letters
		"+88017123456ab", // trailing letters
		"",
	}
	for _, num := range invalid {
		input := validInput()
		input.ContactNumber = num
		assert.ErrorIs(t, v.CreateBooking(input), domain.ErrValidation, "number %q should be rejected", num)
	}
}

func TestValidator_RequiredFields(t *testing.T) {
	v := fixedValidator(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	input := validInput()
	input.Location = ""
	assert.ErrorIs(t, v.CreateBooking(input), domain.ErrValidation)

	input = validInput()
	input.ServiceID = ""
	assert.ErrorIs(t, v.CreateBooking(input), domain.ErrValidation)

	input = validInput()
	input.UserID = ""
	assert.ErrorIs(t, v.CreateBooking(input), domain.ErrValidation)
}
