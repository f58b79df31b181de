package domain

import "errors"

var (
	ErrPoolNotFound          = errors.New("pool not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrParticipationNotFound = errors.New("participation not found")
	ErrStaleParticipation    = errors.New("participation status changed concurrently")
)

var (
	ErrAlreadyJoined   = errors.New("user already joined this pool")
	ErrNotClaimable    = errors.New("participation is not claimable")
	ErrPoolClosed      = errors.New("pool is not accepting participants")
	ErrJoinMismatch    = errors.New("transaction does not join this pool")
	ErrAddressTaken    = errors.New("address is already registered")
	ErrTxFailed        = errors.New("transaction failed")
	ErrEventNotEmitted = errors.New("expected event not found in transaction logs")
	ErrTxPending       = errors.New("transaction is not yet mined")
)

var (
	ErrReadOnly = errors.New("chain client has no operator key")
)

var (
	ErrValidation = errors.New("validation error")
)
