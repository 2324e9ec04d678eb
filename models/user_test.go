package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserOTPState(t *testing.T) {
	now := time.Now()

	t.Run("no otp issued", func(t *testing.T) {
		u := &User{}
		assert.False(t, u.HasActiveOTP(now))
		assert.True(t, u.OTPExpired(now))
		assert.False(t, u.OTPMatches("12345"))
	})

	t.Run("active otp", func(t *testing.T) {
		u := &User{OTP: &OTP{Code: "12345", ExpiresIn: now.Add(time.Minute)}}
		assert.True(t, u.HasActiveOTP(now))
		assert.False(t, u.OTPExpired(now))
		assert.True(t, u.OTPMatches("12345"))
		assert.False(t, u.OTPMatches("54321"))
	})

	t.Run("expired otp", func(t *testing.T) {
		u := &User{OTP: &OTP{Code: "12345", ExpiresIn: now.Add(-time.Second)}}
		assert.False(t, u.HasActiveOTP(now))
		assert.True(t, u.OTPExpired(now))
		// the code still matches, expiry is checked separately
		assert.True(t, u.OTPMatches("12345"))
	})

	t.Run("otp expiring exactly now counts expired", func(t *testing.T) {
		u := &User{OTP: &OTP{Code: "12345", ExpiresIn: now}}
		assert.False(t, u.HasActiveOTP(now))
		assert.True(t, u.OTPExpired(now))
	})

	t.Run("cleared code counts expired", func(t *testing.T) {
		u := &User{OTP: &OTP{ExpiresIn: now.Add(time.Minute)}}
		assert.False(t, u.HasActiveOTP(now))
		assert.True(t, u.OTPExpired(now))
		assert.False(t, u.OTPMatches(""))
	})
}
