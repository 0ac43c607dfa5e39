package middleware

import (
	"net/http"
	"strings"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/apierror"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const PrincipalKey = "principal"

// JWTAuth validates the Bearer token on every protected route and resolves
// it to a live user row. Fail-closed: any failure (missing header, bad
// signature, expired token, deleted account) aborts the request before the
// handler runs. Tokens carry the account email in the standard "sub" claim.
func JWTAuth(secret string, users repository.UserRepository) gin.HandlerFunc {
	unauthenticated := apierror.Unauthenticated("Could not validate credentials")
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.FromError(unauthenticated))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.FromError(unauthenticated))
			return
		}

		email := ""
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			email, _ = claims["sub"].(string)
		}
		if email == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.FromError(unauthenticated))
			return
		}

		// The token alone is not enough — the account must still exist.
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.FromError(unauthenticated))
			return
		}

		c.Set(PrincipalKey, user)
		c.Next()
	}
}

// GetPrincipal retrieves the authenticated user from the Gin context.
func GetPrincipal(c *gin.Context) *model.User {
	principal, _ := c.MustGet(PrincipalKey).(*model.User)
	return principal
}
