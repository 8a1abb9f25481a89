package domain

import "errors"

// Error taxonomy for the authentication and payment workflow. Handlers map
// these onto HTTP statuses; the messages shown to users stay generic.
var (
	// ErrInvalidCredentials covers both "project not found" and "wrong
	// password" so that project names cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid project name or password")

	// ErrInvalidAmount rejects contribution amounts below one major unit.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrOrderCreation wraps any failure from the payment provider while
	// creating an order. Single attempt, no retry.
	ErrOrderCreation = errors.New("failed to create order")

	// ErrSignatureMismatch means the payment callback failed its HMAC
	// check. Nothing is persisted when this is returned.
	ErrSignatureMismatch = errors.New("payment verification failed")

	// ErrProjectNotFound means the fixed contribution project is missing
	// at verification time.
	ErrProjectNotFound = errors.New("contribution project not found")

	// ErrPersistence means the database write failed after a successful
	// signature verification. The payment is verified but unrecorded; the
	// gap is surfaced, not reconciled.
	ErrPersistence = errors.New("failed to store contribution record")

	// ErrRecordNotFound is returned when a financial or call-booth record
	// does not exist under the given project.
	ErrRecordNotFound = errors.New("record not found")
)
