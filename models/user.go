package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCollection is the mongo collection holding users.
const UserCollection = "users"

// OTP is the one-time password state embedded in a user document.
type OTP struct {
	Code      string    `bson:"code,omitempty" json:"code,omitempty"`
	ExpiresIn time.Time `bson:"expiresIn,omitempty" json:"expiresIn,omitempty"`
}

// User represents an account identified by a unique mobile number.
// AccessToken records the last issued JWT for bookkeeping only; it is never
// consulted when authorizing requests.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Mobile         string             `bson:"mobile" json:"mobile"`
	OTP            *OTP               `bson:"otp,omitempty" json:"-"`
	VerifiedMobile bool               `bson:"verifiedMobile" json:"verifiedMobile"`
	AccessToken    string             `bson:"accessToken,omitempty" json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasActiveOTP reports whether a previously issued code has not expired yet.
func (u *User) HasActiveOTP(now time.Time) bool {
	return u.OTP != nil && u.OTP.Code != "" && u.OTP.ExpiresIn.After(now)
}

// OTPExpired reports whether the stored code can no longer be used.
// A user without any stored code counts as expired.
func (u *User) OTPExpired(now time.Time) bool {
	return u.OTP == nil || u.OTP.Code == "" || !u.OTP.ExpiresIn.After(now)
}

// OTPMatches checks a submitted code against the stored one. The comparison is
// an exact string match.
func (u *User) OTPMatches(code string) bool {
	return u.OTP != nil && u.OTP.Code != "" && u.OTP.Code == code
}
