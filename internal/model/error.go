package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeInvalidLanguage  = "INVALID_LANGUAGE"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeAdminNotFound    = "ADMIN_NOT_FOUND"
	ErrCodeInvalidOtp       = "INVALID_OTP"
	ErrCodeOtpRateLimited   = "OTP_RATE_LIMITED"
	ErrCodeDuplicateSKU     = "DUPLICATE_SKU"
	ErrCodeDuplicateAdmin   = "DUPLICATE_USERNAME"
	ErrCodeLastAdmin        = "LAST_ADMIN"
	ErrCodeSelfAction       = "SELF_ACTION"
	ErrCodeBadCredentials   = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation carrying a stable code and a
// customer-safe message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrOrderNotFound = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	// ErrInvalidOtp deliberately covers wrong, expired and unknown codes
	// with one message so callers cannot enumerate which case they hit.
	ErrInvalidOtp        = NewDomainError(ErrCodeInvalidOtp, "Invalid or expired OTP")
	ErrOtpRateLimited    = NewDomainError(ErrCodeOtpRateLimited, "Too many OTP requests, please try again later")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidLanguage   = NewDomainError(ErrCodeInvalidLanguage, "Invalid language. Supported: en, my")
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrDuplicateSKU      = NewDomainError(ErrCodeDuplicateSKU, "SKU already exists")
	ErrAdminNotFound     = NewDomainError(ErrCodeAdminNotFound, "Admin not found")
	ErrDuplicateUsername = NewDomainError(ErrCodeDuplicateAdmin, "Username already exists")
	ErrLastAdmin         = NewDomainError(ErrCodeLastAdmin, "Cannot delete the last remaining admin.")
	ErrSelfDelete        = NewDomainError(ErrCodeSelfAction, "You cannot delete your own account.")
	ErrSelfPasswordReset = NewDomainError(ErrCodeSelfAction, "You cannot reset your own password here.")
	ErrBadCredentials    = NewDomainError(ErrCodeBadCredentials, "Invalid credentials")
	ErrWrongOldPassword  = NewDomainError(ErrCodeBadCredentials, "Current password incorrect")
)
