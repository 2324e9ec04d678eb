package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saeedNW/go-divar/middleware"
	"github.com/saeedNW/go-divar/utils"
)

// UserController exposes the authenticated user's own data.
type UserController struct{}

// NewUserController creates a UserController.
func NewUserController() *UserController {
	return &UserController{}
}

// Profile returns the user resolved by the auth guard.
func (u *UserController) Profile(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.Error(utils.NewUnauthorized("Authorization failed, please retry"))
		return
	}
	utils.SendSuccess(ctx, http.StatusOK, "", gin.H{"user": user})
}
