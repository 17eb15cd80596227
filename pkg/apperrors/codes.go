package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorisation
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Validation
	CodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	CodeInvalidBloodGroup ErrorCode = "INVALID_BLOOD_GROUP"
	CodeInvalidUserRole   ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	CodeConflict      ErrorCode = "CONFLICT"

	// Business logic
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeDonorIneligible  ErrorCode = "DONOR_INELIGIBLE"

	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeServiceUnavailable   ErrorCode = "SERVICE_UNAVAILABLE"
)
