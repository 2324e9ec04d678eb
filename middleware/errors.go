package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saeedNW/go-divar/config"
	"github.com/saeedNW/go-divar/utils"
)

// ErrorHandler turns errors attached by controllers into the response
// envelope and cleans up any temporary uploads registered for the request.
// It must run before the route handlers in the chain.
func ErrorHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 {
			return
		}

		err := ctx.Errors.Last().Err
		httpErr := utils.AsHTTPError(err)

		utils.RemoveFiles(utils.TempFilesFrom(ctx))

		if httpErr.Status >= http.StatusInternalServerError && utils.Logger != nil {
			fields := []zap.Field{
				zap.String("path", ctx.Request.URL.Path),
				zap.String("method", ctx.Request.Method),
				zap.Error(err),
			}
			if !config.Get().IsProduction() {
				fields = append(fields, zap.Stack("stack"))
			}
			utils.Logger.Error("request failed", fields...)
		}

		message := httpErr.Message
		if httpErr.Status >= http.StatusInternalServerError && config.Get().IsProduction() {
			message = "Internal server error"
		}

		utils.SendError(ctx, httpErr.Status, message, httpErr.Fields)
	}
}
