package services

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors. All of these are recoverable, user-facing conditions:
// the operation performs no partial state mutation and the caller can
// render the reason and retry.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("amount below minimum withdrawal")
	ErrNotPending          = errors.New("transaction already resolved")
	ErrNotFound            = errors.New("record not found")
	ErrInvalidReferralCode = errors.New("invalid referral code")
	ErrWrongCredentials    = errors.New("wrong credentials")
)

// ValidationError reports a bad input shape or range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NothingToClaimError means no investment has completed its 24h window
// yet. NextEligibleAt is the soonest moment a claim will succeed; zero
// when the user has no accruing investments at all.
type NothingToClaimError struct {
	NextEligibleAt time.Time
}

func (e *NothingToClaimError) Error() string {
	return "nothing to claim yet"
}
