package domain

import "time"

// Principal is the authenticated end-user identity held by the portal.
type Principal struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	PhotoURL      string `json:"photoURL"`
	EmailVerified bool   `json:"emailVerified"`
}

// UserMirror is the principal projection upserted into the remote user store
// after every successful sign-in or sign-up.
type UserMirror struct {
	UID           string    `json:"uid"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"displayName"`
	PhotoURL      string    `json:"photoURL"`
	EmailVerified bool      `json:"emailVerified"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
}

type UpdateProfileInput struct {
	DisplayName string
	PhotoURL    string
}
