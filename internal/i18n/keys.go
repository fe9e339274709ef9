// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAccessDenied           = "auth.access_denied"

	// Users
	KeyUserNotFound = "user.not_found"

	// NOC applications
	KeyNOCSubmitted = "noc.submitted"
	KeyNOCForwarded = "noc.forwarded"
	KeyNOCApproved  = "noc.approved"
	KeyNOCRejected  = "noc.rejected"
	KeyNOCNotFound  = "noc.not_found"

	// Registrations
	KeyRegistrationSubmitted = "registration.submitted"
	KeyRegistrationReviewed  = "registration.reviewed"
	KeyRegistrationNotFound  = "registration.not_found"

	// Tenders and notices
	KeyTenderCreated  = "tender.created"
	KeyTenderUpdated  = "tender.updated"
	KeyTenderNotFound = "tender.not_found"
	KeyNoticeCreated  = "notice.created"
	KeyNoticeUpdated  = "notice.updated"
	KeyNoticeNotFound = "notice.not_found"

	// Uploads
	KeyUploadSuccess = "upload.success"
	KeyUploadFailed  = "upload.failed"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"
)
