package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrInvestmentNotFound indicates that an investment with the given ID
	// does not exist for the requesting user. An ID owned by a different
	// user is deliberately indistinguishable from a missing one.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrUserNotFound indicates that a user with the given identity does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrUsernameTaken indicates that a registration used a username that
	// already exists.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrInvalidCredentials indicates a failed login attempt. Unknown
	// usernames and wrong passwords are reported identically.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrEmptyImport indicates that a batch import was called with no items.
	ErrEmptyImport = errors.New("no data to import")

	// ErrInvalidID indicates that a provided ID is not a valid numeric identifier.
	ErrInvalidID = errors.New("invalid ID format")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	ErrFailedToRetrieveInvestments = errors.New("failed to retrieve investments")
	ErrFailedToRetrieveInvestment  = errors.New("failed to retrieve investment")
	ErrFailedToRetrieveStats       = errors.New("failed to retrieve statistics")
)
