package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saeedNW/go-divar/models"
	"github.com/saeedNW/go-divar/utils"
)

// UserKey is the gin context key holding the authenticated *models.User.
const UserKey = "user"

// AuthGuard authenticates requests via the signed access_token cookie or a
// header of the same name. The stored value is "Bearer <jwt>"; the scheme is
// matched case-insensitively. Any failure aborts with 401.
func AuthGuard(db *mongo.Database) gin.HandlerFunc {
	users := db.Collection(models.UserCollection)

	return func(ctx *gin.Context) {
		token := extractToken(ctx)
		if token == "" {
			abortUnauthorized(ctx)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			abortUnauthorized(ctx)
			return
		}

		oid, err := primitive.ObjectIDFromHex(claims.ID)
		if err != nil {
			abortUnauthorized(ctx)
			return
		}

		var user models.User
		opts := options.FindOne().SetProjection(bson.M{
			"otp":            0,
			"accessToken":    0,
			"verifiedMobile": 0,
			"updatedAt":      0,
		})
		if err := users.FindOne(ctx.Request.Context(), bson.M{"_id": oid}, opts).Decode(&user); err != nil {
			abortUnauthorized(ctx)
			return
		}

		ctx.Set(UserKey, &user)
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthGuard.
func CurrentUser(ctx *gin.Context) (*models.User, bool) {
	value, exists := ctx.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func extractToken(ctx *gin.Context) string {
	raw := ""
	if cookie, err := ctx.Cookie(utils.AccessTokenCookie); err == nil && cookie != "" {
		if value, err := utils.VerifyCookieValue(cookie); err == nil {
			raw = value
		}
	}
	if raw == "" {
		raw = ctx.GetHeader(utils.AccessTokenCookie)
	}
	if raw == "" {
		return ""
	}

	parts := strings.SplitN(raw, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(strings.TrimSpace(parts[0]), "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(ctx *gin.Context) {
	utils.SendError(ctx, http.StatusUnauthorized, "Authorization failed, please retry", nil)
	ctx.Abort()
}
