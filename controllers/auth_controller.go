package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saeedNW/go-divar/config"
	"github.com/saeedNW/go-divar/services"
	"github.com/saeedNW/go-divar/utils"
)

// AuthController handles the OTP login flow.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates an AuthController.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type sendOTPRequest struct {
	Mobile string `json:"mobile" form:"mobile"`
}

type checkOTPRequest struct {
	Mobile string `json:"mobile" form:"mobile"`
	Code   string `json:"code" form:"code"`
}

// SendOTP generates a one time password for the given mobile number. Outside
// production the code is echoed in the response so the flow can be exercised
// without an SMS provider.
func (a *AuthController) SendOTP(ctx *gin.Context) {
	var req sendOTPRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.Error(utils.NewValidation(map[string]string{"mobile": "mobile number is required"}))
		return
	}

	mobile := utils.FixNumbers(req.Mobile)
	if !utils.IsValidMobile(mobile) {
		ctx.Error(utils.NewValidation(map[string]string{"mobile": "invalid mobile number"}))
		return
	}

	user, err := a.auth.SendOTP(ctx.Request.Context(), mobile)
	if err != nil {
		ctx.Error(err)
		return
	}

	var data any
	if !config.Get().IsProduction() {
		data = gin.H{"otp": user.OTP.Code}
	}
	utils.SendSuccess(ctx, http.StatusOK, services.MsgOTPSent, data)
}

// CheckOTP verifies the submitted code and, on success, issues a one year
// token both in a signed http-only cookie and in the response body.
func (a *AuthController) CheckOTP(ctx *gin.Context) {
	var req checkOTPRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.Error(utils.NewValidation(map[string]string{"mobile": "mobile number is required", "code": "code is required"}))
		return
	}

	mobile := utils.FixNumbers(req.Mobile)
	code := utils.FixNumbers(req.Code)
	if !utils.IsValidMobile(mobile) {
		ctx.Error(utils.NewValidation(map[string]string{"mobile": "invalid mobile number"}))
		return
	}
	if code == "" {
		ctx.Error(utils.NewValidation(map[string]string{"code": "code is required"}))
		return
	}

	token, err := a.auth.CheckOTP(ctx.Request.Context(), mobile, code)
	if err != nil {
		ctx.Error(err)
		return
	}

	cfg := config.Get()
	signed := utils.SignCookieValue("Bearer " + token)
	maxAge := int(utils.AccessTokenTTL.Seconds())
	ctx.SetCookie(utils.AccessTokenCookie, signed, maxAge, "/", "", cfg.IsProduction(), true)

	utils.SendSuccess(ctx, http.StatusOK, services.MsgLoginSuccessful, gin.H{"token": token})
}
