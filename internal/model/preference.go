package model

import "time"

// UserPreference stores a customer's preferred language keyed by email.
// It feeds the notification dispatcher's language fallback when no
// explicit hint accompanies a request.
type UserPreference struct {
	Email     string    `json:"email" db:"email"`
	Language  string    `json:"language" db:"language"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PreferenceRequest is the payload for setting a language preference.
type PreferenceRequest struct {
	Email    string `json:"email"`
	Language string `json:"language"`
}
