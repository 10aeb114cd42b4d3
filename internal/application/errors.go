package application

import (
	"errors"
	"net/http"
)

// User-facing messages. Handlers render these verbatim.
const (
	MsgRegistered         = "User registered successfully"
	MsgUserExists         = "User already exists with this email or username"
	MsgInvalidCredentials = "Invalid credentials"
	MsgNoToken            = "No token, authorization denied"
	MsgTokenInvalid       = "Token is not valid"
	MsgUserNotFound       = "User not found"
	MsgInvalidPayload     = "invalid payload"
	MsgDatabaseError      = "Database error"
	MsgHashFailed         = "Password hashing failed"
	MsgRegisterFailed     = "Failed to register user"
	MsgTokenFailed        = "Error generating JWT token"

	MsgEmployeeFieldsRequired = "First name, last name, and position are required"
	MsgEmployeeNotFound       = "Employee not found"
	MsgEmployeeInvalidID      = "Invalid employee id"
	MsgEmployeeUpdated        = "Employee updated successfully"
	MsgEmployeeDeleted        = "Employee deleted successfully"
	MsgEmployeeInsertFailed   = "Error inserting employee"
	MsgEmployeeFetchFailed    = "Error fetching employees"
	MsgEmployeeUpdateFailed   = "Error updating employee"
	MsgEmployeeDeleteFailed   = "Error deleting employee"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindAuth         Kind = "auth"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindInternal     Kind = "internal"
)

// AppError carries everything the HTTP layer needs to answer a failed request.
// Err is the internal cause and is never sent to clients.
type AppError struct {
	Kind    Kind
	Status  int
	Message string
	Details any
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func Validation(msg string, details any) *AppError {
	return &AppError{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg, Details: details}
}

func Conflict(msg string, err error) *AppError {
	return &AppError{Kind: KindConflict, Status: http.StatusBadRequest, Message: msg, Err: err}
}

// Auth is a credential failure on a public endpoint (400, as the login contract requires).
func Auth(msg string) *AppError {
	return &AppError{Kind: KindAuth, Status: http.StatusBadRequest, Message: msg}
}

// Unauthorized is a missing or rejected token on a protected route.
func Unauthorized(msg string) *AppError {
	return &AppError{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: msg}
}

func NotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Status: http.StatusNotFound, Message: msg}
}

func Internal(msg string, err error) *AppError {
	return &AppError{Kind: KindInternal, Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// AsAppError returns err as an *AppError, treating anything else as internal.
func AsAppError(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("internal error", err)
}

// IsKind reports whether err is an *AppError of kind k.
func IsKind(err error, k Kind) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == k
}
