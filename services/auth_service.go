package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saeedNW/go-divar/models"
	"github.com/saeedNW/go-divar/utils"
)

// Auth flow messages.
const (
	MsgOTPNotExpired   = "The previous code has not expired"
	MsgUserNotFound    = "The requested user was notfound"
	MsgOTPCodeExpired  = "otp code expired please try to get a new code"
	MsgOTPIncorrect    = "otp code is incorrect"
	MsgOTPSent         = "OTP code has been sent successfully"
	MsgLoginSuccessful = "your have logged in successfully"
)

// AuthService implements the OTP login flow over the users collection.
type AuthService struct {
	users *mongo.Collection
}

// NewAuthService creates an AuthService bound to the given database.
func NewAuthService(db *mongo.Database) *AuthService {
	return &AuthService{users: db.Collection(models.UserCollection)}
}

// SendOTP issues a fresh one-time code for the mobile number, creating the
// user on first contact. While a previously issued code is still valid the
// request is rejected so codes cannot be burned through.
//
// Two concurrent first-time requests for the same mobile race on the insert;
// the unique mobile index fails the loser and that storage error surfaces as
// an internal error, matching the legacy behavior.
func (s *AuthService) SendOTP(ctx context.Context, mobile string) (*models.User, error) {
	now := time.Now()
	otp := &models.OTP{
		Code:      utils.GenerateOTPCode(),
		ExpiresIn: now.Add(utils.OTPTTL),
	}

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"mobile": mobile}).Decode(&user)
	if err == nil {
		if user.HasActiveOTP(now) {
			return nil, utils.NewBadRequest(MsgOTPNotExpired)
		}
		_, err = s.users.UpdateOne(ctx,
			bson.M{"_id": user.ID},
			bson.M{"$set": bson.M{"otp": otp, "updatedAt": now}},
		)
		if err != nil {
			return nil, utils.NewInternal(err)
		}
		user.OTP = otp
		user.UpdatedAt = now
		return &user, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewInternal(err)
	}

	user = models.User{
		Mobile:         mobile,
		OTP:            otp,
		VerifiedMobile: false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return &user, nil
}

// CheckOTP validates a submitted code and, on success, marks the mobile
// verified, issues a 1-year bearer token and records it on the user. The
// recorded token is bookkeeping only; it is never checked at request time.
func (s *AuthService) CheckOTP(ctx context.Context, mobile, code string) (string, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"mobile": mobile}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", utils.NewNotFound(MsgUserNotFound)
	}
	if err != nil {
		return "", utils.NewInternal(err)
	}

	now := time.Now()
	if user.OTPExpired(now) {
		return "", utils.NewUnauthorized(MsgOTPCodeExpired)
	}
	if !user.OTPMatches(code) {
		return "", utils.NewUnauthorized(MsgOTPIncorrect)
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Mobile, utils.AccessTokenTTL)
	if err != nil {
		return "", utils.NewInternal(err)
	}

	_, err = s.users.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"verifiedMobile": true, "accessToken": token, "updatedAt": now}},
	)
	if err != nil {
		return "", utils.NewInternal(err)
	}
	return token, nil
}
