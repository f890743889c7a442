package dto

type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleSignInRequest struct {
	ProviderToken string `json:"providerToken"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

type CreateBookingRequest struct {
	ServiceID           string `json:"serviceId" binding:"required"`
	Date                string `json:"date" binding:"required"`
	Location            string `json:"location" binding:"required"`
	ContactNumber       string `json:"contactNumber" binding:"required"`
	SpecialInstructions string `json:"specialInstructions"`
}

type PayRequest struct {
	Method string `json:"method" binding:"required"`
}
