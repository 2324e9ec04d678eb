package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

// OTPTTL is how long an issued code stays valid.
const OTPTTL = 2 * time.Minute

// GenerateOTPCode creates a random 5-digit code in [10000, 99999].
func GenerateOTPCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back to a
		// time-derived code rather than aborting the login flow.
		return strconv.FormatInt(10000+time.Now().UnixNano()%90000, 10)
	}
	return strconv.FormatInt(10000+n.Int64(), 10)
}
