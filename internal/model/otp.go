package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpTTL is how long a one-time password stays valid after issuance.
const OtpTTL = 10 * time.Minute

// Otp is an ephemeral one-time credential proving control of an email
// address. Multiple rows may exist for the same email (e.g. after a
// resend); only an exact (email, code) match with a future expiry is
// accepted at verification time.
type Otp struct {
	ID        uuid.UUID `json:"-" db:"id"`
	Email     string    `json:"email" db:"email"`
	Code      string    `json:"-" db:"code"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Expired reports whether the code is no longer usable at the given
// instant. Expiry is strict: a code is rejected at exactly ExpiresAt.
func (o *Otp) Expired(now time.Time) bool {
	return !o.ExpiresAt.After(now)
}
