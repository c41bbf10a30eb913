package utils

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Ambiguous characters (0/O, 1/I) are left out so codes survive being
// read aloud or retyped.
const referralCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReferralCode generates an 8-character referral code
func GenerateReferralCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // Create a new random number generator
	code := make([]byte, 8)
	for i := range code {
		code[i] = referralCharset[rng.Intn(len(referralCharset))]
	}
	return string(code)
}

// NewOrderID returns a unique order identifier for a ledger transaction
func NewOrderID() string {
	return uuid.NewString()
}
