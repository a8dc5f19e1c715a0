package application

import "errors"

// Business-rule errors raised by the service layer. Handlers translate them
// to HTTP statuses; anything else bubbles up as an internal error.
var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserNotDeleted     = errors.New("user is not deleted")

	ErrRollNumberTaken = errors.New("roll number already exists")
	ErrPRNTaken        = errors.New("prn already exists")
	ErrEmployeeIDTaken = errors.New("employee id already exists")

	ErrStudentNotFound    = errors.New("student not found")
	ErrFacultyNotFound    = errors.New("faculty member not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrCollegeNotFound    = errors.New("college not found")
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrConflict covers a store-level uniqueness violation the pre-checks
	// did not catch, e.g. two concurrent registrations for one email.
	ErrConflict = errors.New("duplicate value for a unique field")
)
